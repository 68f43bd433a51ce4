package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vietdv277/scalekit/internal/ui"
	pkgtypes "github.com/vietdv277/scalekit/pkg/types"
)

var lbCmd = &cobra.Command{
	Use:   "lb",
	Short: "Inspect load balancers",
	Long:  `Inspect classic load balancers and the target groups an Auto Scaling Group can register with.`,
}

var lbLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List classic load balancers",
	Long: `List all classic load balancers with their listeners, health check and DNS name.

Examples:
  skit lb ls              # List all load balancers
  skit lb ls -r eu-west-1 # List LBs in another region`,
	RunE: runLBList,
}

var lbDescribeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show a classic load balancer",
	Args:  cobra.ExactArgs(1),
	RunE:  runLBDescribe,
}

var lbTargetGroupsCmd = &cobra.Command{
	Use:   "tg [name...]",
	Short: "List target groups",
	Long: `List target groups. With names, only those target groups are shown.

Examples:
  skit lb tg                # List all target groups
  skit lb tg web-tg api-tg  # Show specific target groups`,
	RunE: runLBTargetGroups,
}

func init() {
	rootCmd.AddCommand(lbCmd)

	lbCmd.AddCommand(lbLsCmd)
	lbCmd.AddCommand(lbDescribeCmd)
	lbCmd.AddCommand(lbTargetGroupsCmd)
}

func runLBList(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	lbs, err := client.ListLoadBalancers(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list load balancers: %w", err)
	}

	if len(lbs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No load balancers found")
		return nil
	}

	return ui.PrintLBTable(cmd.OutOrStdout(), lbs)
}

func runLBDescribe(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	lb, err := client.DescribeLoadBalancer(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to describe load balancer: %w", err)
	}

	return ui.PrintLBTable(cmd.OutOrStdout(), []pkgtypes.LoadBalancer{*lb})
}

func runLBTargetGroups(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	tgs, err := client.ListTargetGroups(cmd.Context(), args...)
	if err != nil {
		return fmt.Errorf("failed to list target groups: %w", err)
	}

	if len(tgs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No target groups found")
		return nil
	}

	return ui.PrintTargetGroupTable(cmd.OutOrStdout(), tgs)
}
