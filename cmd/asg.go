package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vietdv277/scalekit/internal/aws"
	"github.com/vietdv277/scalekit/internal/ui"
	"github.com/vietdv277/scalekit/pkg/provider"
	pkgtypes "github.com/vietdv277/scalekit/pkg/types"
)

var asgCmd = &cobra.Command{
	Use:   "asg",
	Short: "Inspect Auto Scaling Groups",
	Long:  `Inspect Auto Scaling Groups such as listing, describing, and showing their scaling policies.`,
}

var asgLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List Auto Scaling Groups",
	Long: `List all Auto Scaling Groups with capacity and health information.

Examples:
  skit asg ls              # List all ASGs
  skit asg ls --name web   # Filter by name pattern`,
	RunE: runASGList,
}

var asgDescribeCmd = &cobra.Command{
	Use:   "describe [name]",
	Short: "Describe an Auto Scaling Group",
	Long: `Show detailed information about an Auto Scaling Group including its instances.

If no name is provided, an interactive selector will be shown.

Examples:
  skit asg describe my-asg    # Describe specific ASG
  skit asg describe           # Interactive selector`,
	Args: cobra.MaximumNArgs(1),
	RunE: runASGDescribe,
}

var asgPoliciesCmd = &cobra.Command{
	Use:   "policies [name]",
	Short: "List scaling policies of an Auto Scaling Group",
	Long: `List the simple scaling policies attached to an Auto Scaling Group.

If no name is provided, an interactive selector will be shown.

Examples:
  skit asg policies my-asg
  skit asg policies`,
	Args: cobra.MaximumNArgs(1),
	RunE: runASGPolicies,
}

var (
	// asg ls flags
	asgNamePattern string
)

func init() {
	rootCmd.AddCommand(asgCmd)

	asgCmd.AddCommand(asgLsCmd)
	asgCmd.AddCommand(asgDescribeCmd)
	asgCmd.AddCommand(asgPoliciesCmd)

	asgLsCmd.Flags().StringVar(&asgNamePattern, "name", "", "Filter ASGs by name pattern")
}

func runASGList(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	groups, err := client.ListAutoScalingGroups(cmd.Context(), &provider.GroupFilter{
		NamePattern: asgNamePattern,
	})
	if err != nil {
		return fmt.Errorf("failed to list Auto Scaling Groups: %w", err)
	}

	if len(groups) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No Auto Scaling Groups found")
		return nil
	}

	return ui.PrintASGTable(cmd.OutOrStdout(), groups)
}

func runASGDescribe(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	asgName, err := groupArg(cmd, client, args)
	if err != nil || asgName == "" {
		return err
	}

	asg, err := client.DescribeAutoScalingGroup(cmd.Context(), asgName)
	if err != nil {
		return fmt.Errorf("failed to describe ASG: %w", err)
	}

	return ui.PrintASGDetails(cmd.OutOrStdout(), asg)
}

func runASGPolicies(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	asgName, err := groupArg(cmd, client, args)
	if err != nil || asgName == "" {
		return err
	}

	policies, err := client.ListScalingPolicies(cmd.Context(), asgName)
	if err != nil {
		return fmt.Errorf("failed to list scaling policies: %w", err)
	}

	if len(policies) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No scaling policies found for %s\n", asgName)
		return nil
	}

	return ui.PrintPolicyTable(cmd.OutOrStdout(), policies)
}

// groupArg returns the group named on the command line, or lets the user pick one.
// An empty name means there was nothing to pick or the picker was cancelled.
func groupArg(cmd *cobra.Command, client *aws.Client, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	groups, err := client.ListAutoScalingGroups(cmd.Context(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to list Auto Scaling Groups: %w", err)
	}

	if len(groups) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No Auto Scaling Groups found")
		return "", nil
	}

	selected, err := ui.SelectGroup(groups, func(group string) ([]pkgtypes.ScalingPolicy, error) {
		return client.ListScalingPolicies(cmd.Context(), group)
	})
	if errors.Is(err, ui.ErrSelectionCancelled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return selected.Name, nil
}
