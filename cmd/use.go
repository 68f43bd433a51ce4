package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vietdv277/scalekit/internal/aws"
	"github.com/vietdv277/scalekit/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use <region>",
	Short: "Set the default region",
	Long: `Save the region used by subsequent commands when --region is not given.

The region is checked against the regions known to EC2 before it is saved.

Examples:
  skit use eu-west-1
  skit use us-east-1`,
	Args: cobra.ExactArgs(1),
	RunE: runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	name := args[0]

	if _, err := aws.NewClient(cmd.Context(), aws.WithRegion(name)); err != nil {
		return fmt.Errorf("cannot use region %s: %w", name, err)
	}

	if err := config.SetRegion(name); err != nil {
		return fmt.Errorf("failed to save region: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Default region set to: %s\n", name)
	return nil
}
