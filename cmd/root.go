package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vietdv277/scalekit/internal/aws"
	"github.com/vietdv277/scalekit/internal/config"
	"github.com/vietdv277/scalekit/internal/provision"
)

var (
	// Global flags
	region   string
	logLevel string

	// set when the region came from --region or SKIT_REGION
	regionExplicit bool
)

var rootCmd = &cobra.Command{
	Use:   "skit",
	Short: "Scalekit - provision AWS Auto Scaling Groups from a definition file",
	Long: `Scalekit is a command-line tool that provisions an AWS Auto Scaling Group
together with its launch configuration, classic load balancer and scaling policies.

Provisioning:
  skit provision web.yaml                       # Create what is missing
  skit provision web.yaml --action delete       # Tear everything down
  skit provision web.yaml --action create_with_overwrite

Inspection:
  skit asg ls                # List Auto Scaling Groups
  skit asg describe web      # Show a group and its instances
  skit asg policies web      # Show scaling policies of a group
  skit lb ls                 # List classic load balancers
  skit status                # Show region and AWS identity

Credentials are read from AWS_ACCESS_KEY and AWS_SECRET_KEY.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	viper.SetEnvPrefix("SKIT")
	viper.AutomaticEnv()

	saved, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Warn("ignoring unreadable settings")
		saved = &config.Config{}
	}

	// Priority for log level: --log-level > SKIT_LOG_LEVEL > ~/.skit/config.yaml > info
	level := viper.GetString("log_level")
	if level == "" {
		level = saved.LogLevel
	}
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			log.Warnf("unknown log level %q, using info", level)
			lvl = log.InfoLevel
		}
		log.SetLevel(lvl)
	}

	// Priority for region: --region > SKIT_REGION > ~/.skit/config.yaml > AWS_REGION
	region = viper.GetString("region")
	regionExplicit = region != ""
	if region == "" {
		region = saved.Region
	}
	if region == "" {
		region = os.Getenv("AWS_REGION")
		if region == "" {
			region = os.Getenv("AWS_DEFAULT_REGION")
		}
	}
}

// GetRegion returns the AWS region, falling back to the provisioning default
func GetRegion() string {
	if region == "" {
		return provision.DefaultRegion
	}
	return region
}

func newClient(ctx context.Context) (*aws.Client, error) {
	client, err := aws.NewClient(ctx, aws.WithRegion(GetRegion()))
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}
	return client, nil
}

// confirm asks a yes/no question and reports whether the answer was yes
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	reader := bufio.NewReader(in)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes"
}
