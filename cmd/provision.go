package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vietdv277/scalekit/internal/config"
	"github.com/vietdv277/scalekit/internal/provision"
	"github.com/vietdv277/scalekit/internal/ui"
)

var provisionCmd = &cobra.Command{
	Use:   "provision <file>",
	Short: "Provision an Auto Scaling Group from a definition file",
	Long: `Apply an action to the Auto Scaling Group described by a YAML definition file.

Actions:
  create_if_missing      Create the load balancer, launch configuration and group (default)
  create_with_overwrite  Delete the existing resources, then create them again
  delete                 Delete the group, its launch configuration and load balancer
  nothing                Only validate the definition

Examples:
  skit provision web.yaml
  skit provision web.yaml --action delete --yes
  skit provision web.yaml -a create_with_overwrite -r eu-west-1`,
	Args: cobra.ExactArgs(1),
	RunE: runProvision,
}

var (
	provisionAction string
	provisionYes    bool
	provisionForce  bool
)

func init() {
	rootCmd.AddCommand(provisionCmd)

	provisionCmd.Flags().StringVarP(&provisionAction, "action", "a", "", "Override the action of the definition")
	provisionCmd.Flags().BoolVarP(&provisionYes, "yes", "y", false, "Do not ask before deleting resources")
	provisionCmd.Flags().BoolVar(&provisionForce, "force", false, "Delete the group even when it still has instances")
}

func runProvision(cmd *cobra.Command, args []string) error {
	def, err := config.LoadDefinition(args[0])
	if err != nil {
		return err
	}

	action, err := def.ParsedAction(provision.CreateIfMissing)
	if err != nil {
		return err
	}
	if provisionAction != "" {
		if action, err = provision.ParseAction(provisionAction); err != nil {
			return err
		}
	}

	target := provisionRegion(def.Region)

	if (action == provision.Delete || action == provision.CreateWithOverwrite) && !provisionYes {
		question := fmt.Sprintf("This will delete %s and its resources in %s. Proceed?", def.Name, target)
		if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), question) {
			fmt.Fprintln(cmd.OutOrStdout(), "Provisioning cancelled")
			return nil
		}
	}

	res, err := provision.Provision(cmd.Context(), def.Name, target, action, func(g *provision.Group) error {
		if err := def.Configure(g); err != nil {
			return err
		}
		if provisionForce {
			g.Config().ForceDelete = true
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to provision %s: %w", def.Name, err)
	}

	return ui.PrintResult(cmd.OutOrStdout(), res)
}

// provisionRegion picks the region for a definition:
// --region > definition > settings or environment > default
func provisionRegion(defRegion string) string {
	switch {
	case regionExplicit:
		return region
	case defRegion != "":
		return defRegion
	}
	return GetRegion()
}
