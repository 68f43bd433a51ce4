package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vietdv277/scalekit/internal/aws"
	"github.com/vietdv277/scalekit/internal/config"
	"github.com/vietdv277/scalekit/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current region and authentication status",
	Long: `Display the region commands will run against and verify the AWS credentials.

Examples:
  skit status
  skit status -r eu-west-1`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current Status")
	fmt.Fprintln(out, ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Region:   %s\n", ui.HeaderStyle.Render(GetRegion()))
	if saved := config.GetSavedRegion(); saved != "" {
		fmt.Fprintf(out, "Saved:    %s\n", ui.MutedStyle.Render(saved))
	}
	fmt.Fprintln(out)

	fmt.Fprint(out, "Auth:     ")
	client, err := newClient(cmd.Context())
	if err != nil {
		fmt.Fprintln(out, ui.StoppedStyle.Render("✗ Not authenticated"))
		fmt.Fprintf(out, "          %s\n", ui.MutedStyle.Render(err.Error()))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To authenticate:")
		fmt.Fprintf(out, "  export %s=<key id> %s=<secret>\n", aws.AccessKeyEnv, aws.SecretKeyEnv)
		return nil
	}

	identity, err := client.GetCallerIdentity(cmd.Context())
	if err != nil {
		fmt.Fprintln(out, ui.StoppedStyle.Render("✗ Not authenticated"))
		fmt.Fprintf(out, "          %s\n", ui.MutedStyle.Render(err.Error()))
		return nil
	}

	fmt.Fprintln(out, ui.RunningStyle.Render("✓ Authenticated"))
	fmt.Fprintf(out, "Account:  %s\n", identity.Account)
	fmt.Fprintf(out, "User:     %s\n", identity.UserID)
	if identity.Arn != "" {
		fmt.Fprintf(out, "ARN:      %s\n", ui.MutedStyle.Render(identity.Arn))
	}

	return nil
}
