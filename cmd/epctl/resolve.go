package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"epctl/internal/config"
	"epctl/internal/interactive"
	"epctl/pkg/colors"
	"epctl/pkg/endpoints"
	"epctl/pkg/errors"
)

var (
	resolveInteractive bool
	resolveOutputFlag  string
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve [service] [region]",
	Short: "Resolve a service endpoint in a region",
	Long: `Resolve a service endpoint in a region using the compiled-in catalog.

The region may be a full region name (us-east-1) or a shortcode (use1); when
omitted the configured default region is used. A service with no endpoint in
the region's partition is a normal outcome, reported as a message rather than
an error.

Examples:
  epctl resolve sns us-east-1           # Resolve with explicit region
  epctl resolve sqs cnn1                # Region shortcode
  epctl resolve dynamodb                # Configured default region
  epctl resolve -i                      # Pick service and region interactively`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		service, region, err := resolveArgs(args)
		if err != nil {
			logger.Error("Endpoint resolution failed", "error", err)
			os.Exit(1)
		}

		if err := runResolve(cmd.OutOrStdout(), service, region, outputFormat(resolveOutputFlag)); err != nil {
			logger.Error("Endpoint resolution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	resolveCmd.Flags().BoolVarP(&resolveInteractive, "interactive", "i", false, "pick the service and region with a fuzzy finder")
	resolveCmd.Flags().StringVarP(&resolveOutputFlag, "output", "o", "", "output format: json or table (default from config)")
	rootCmd.AddCommand(resolveCmd)
}

// resolveArgs determines the (service, region) pair from positional args, the
// interactive selectors and the configured default region.
func resolveArgs(args []string) (service, region string, err error) {
	if len(args) > 0 {
		service = args[0]
	}
	if len(args) > 1 {
		region = args[1]
	}

	table := endpoints.Default()

	if service == "" {
		if !resolveInteractive {
			return "", "", errors.NewValidationError("service is required (or use --interactive)")
		}
		choice, err := interactive.SelectService(interactive.ServiceChoices(table, defaultPartition(table)), "Select Service")
		if err != nil {
			return "", "", errors.NewValidationError(err.Error())
		}
		service = choice.Name
	}

	if region == "" && resolveInteractive {
		choice, err := interactive.SelectRegion(interactive.RegionChoices(), "Select Region")
		if err != nil {
			return "", "", errors.NewValidationError(err.Error())
		}
		region = choice.Region
	}
	if region == "" {
		region = config.Get().DefaultRegion
	}

	return service, region, nil
}

// runResolve resolves one (service, region) pair and writes the result.
func runResolve(w io.Writer, service, region, format string) error {
	region = endpoints.NormalizeRegion(region)

	ep, ok := endpoints.Resolve(service, region)
	if !ok {
		// Not an error: the service simply has no endpoint in this realm.
		// The DNS suffix fallback still answers, so report it as a hint.
		fmt.Fprintf(w, "No endpoint defined for service %q in region %q (realm DNS suffix: %s)\n",
			service, region, endpoints.DNSSuffixFor(service, region))
		return nil
	}

	if err := writeEndpoint(w, ep, format); err != nil {
		return err
	}
	if format == "table" {
		colors.PrintSuccess("Resolved %s in %s\n", service, region)
	}
	return nil
}
