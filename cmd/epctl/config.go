package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"epctl/internal/config"
	"epctl/internal/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
	Long: `Manage epctl configuration including initialization and display.

Examples:
  epctl config init                     # Create a default config file
  epctl config show                     # Show current config`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a default epctl configuration file at $HOME/.epctl.yaml.
Edit it afterwards to change the default region or output format.`,
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		u := ui.NewWithStreams(cmd.OutOrStdout(), cmd.ErrOrStderr(), os.Stdin, nil)

		if err := initializeConfigFile(u, force); err != nil {
			logger.Error("Configuration initialization failed", "error", err)
			os.Exit(1)
		}
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long:  `Display the current epctl configuration settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\n=== Current Configuration ===")
		fmt.Fprintf(out, "\nDefaults:\n")
		fmt.Fprintf(out, "  Default Region: %s\n", cfg.DefaultRegion)
		if cfg.DefaultPartition != "" {
			fmt.Fprintf(out, "  Default Partition: %s\n", cfg.DefaultPartition)
		}

		fmt.Fprintf(out, "\nOutput:\n")
		fmt.Fprintf(out, "  Format: %s\n", cfg.Output.Format)

		fmt.Fprintf(out, "\nLogging:\n")
		fmt.Fprintf(out, "  Directory: %s\n", cfg.Logging.Directory)
		fmt.Fprintf(out, "  File Logging: %v\n", cfg.Logging.FileLogging)
		fmt.Fprintf(out, "  Level: %s\n", cfg.Logging.Level)

		if path, err := config.DefaultPath(); err == nil {
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(out, "\nConfig File: %s\n", path)
			} else {
				fmt.Fprintf(out, "\nConfig File: Not found (using defaults)\n")
				fmt.Fprintf(out, "Run 'epctl config init' to create a configuration file\n")
			}
		}
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func initializeConfigFile(u *ui.UI, force bool) error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		ok, err := u.Confirm(fmt.Sprintf("Config file %s exists. Overwrite?", path))
		if err != nil || !ok {
			u.Write("Configuration unchanged\n")
			return nil
		}
	}

	if err := config.Save(config.New(), path); err != nil {
		return err
	}
	u.Writef("Created %s\n", path)
	return nil
}
