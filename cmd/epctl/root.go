package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"epctl/internal/config"
	"epctl/pkg/logging"
)

var (
	// Version represents the current version of epctl
	// Override at build time with -ldflags "-X main.Version=X.Y.Z"
	Version    = "1.2.0"
	configFile string
	debug      bool
	logger     *logging.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "epctl",
	Short: "Offline AWS endpoint resolution and partition lookup tool",
	Long: `epctl resolves a (service, region) pair or a resource identifier (ARN) into
concrete endpoint metadata without touching the network: hostname, supported
protocols, signature versions and the DNS suffix of the owning partition.
The catalog is compiled in, so every command works offline and answers are
deterministic.

Features:
- Endpoint resolution by service and region, with region shortcodes (use1)
- ARN parsing; the owning partition is re-derived from the embedded region
- DNS suffix lookup that always answers, even for uncatalogued services
- Partition and service catalog listings
- Catalog export as JSON, YAML or a reproducible zip bundle`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.epctl.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	// Bind flags to viper
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	logger = logging.NewLogger(debug)

	if err := config.Load(configFile); err != nil {
		logger.Warn("Failed to load configuration, using defaults", "error", err)
	}
}
