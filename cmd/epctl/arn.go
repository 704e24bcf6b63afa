package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"epctl/internal/ui"
	"epctl/pkg/endpoints"
	"epctl/pkg/errors"
)

var (
	arnParseOnly  bool
	arnOutputFlag string
)

// arnCmd represents the arn command
var arnCmd = &cobra.Command{
	Use:   "arn <identifier>",
	Short: "Parse a resource identifier and resolve its endpoint",
	Long: `Parse an arn:<partition>:<service>:<region>:<account>:<resource> identifier
and resolve the endpoint for its embedded (service, region) pair.

The partition tag inside the identifier is informational only; the owning
partition is re-derived from the region against the catalog's match rules.
Use - as the identifier to read one identifier per line from a pipe.

Examples:
  epctl arn arn:aws:sns:us-east-1:123456:MyTopic
  epctl arn --parse arn:aws:dynamodb:us-west-2:123456:table/Users
  cat arns.txt | epctl arn -`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runARN(cmd.OutOrStdout(), args[0], outputFormat(arnOutputFlag), arnParseOnly); err != nil {
			logger.Error("Identifier resolution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	arnCmd.Flags().BoolVar(&arnParseOnly, "parse", false, "only show the parsed identifier fields")
	arnCmd.Flags().StringVarP(&arnOutputFlag, "output", "o", "", "output format: json or table (default from config)")
	rootCmd.AddCommand(arnCmd)
}

func runARN(w io.Writer, identifier, format string, parseOnly bool) error {
	if identifier == "-" {
		input, ok, err := ui.NewPipeReader(os.Stdin).Read()
		if err != nil {
			return err
		}
		if !ok {
			return errors.NewValidationError("reading identifiers from - requires piped input")
		}
		for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if err := resolveOneARN(w, line, format, parseOnly); err != nil {
				return err
			}
		}
		return nil
	}

	return resolveOneARN(w, identifier, format, parseOnly)
}

func resolveOneARN(w io.Writer, identifier, format string, parseOnly bool) error {
	if parseOnly {
		parsed, err := endpoints.ParseARN(identifier)
		if err != nil {
			return err
		}
		fmt.Fprint(w, formatParsedARN(parsed))
		return nil
	}

	ep, ok, err := endpoints.ResolveARN(identifier)
	if err != nil {
		return err
	}
	if !ok {
		parsed, _ := endpoints.ParseARN(identifier)
		fmt.Fprintf(w, "No endpoint defined for service %q in region %q (realm DNS suffix: %s)\n",
			parsed.Service, parsed.Region, endpoints.DNSSuffixFor(parsed.Service, parsed.Region))
		return nil
	}

	return writeEndpoint(w, ep, format)
}

func formatParsedARN(a endpoints.ARN) string {
	tf := NewTableFormatter(2)
	tf.AddColumn("FIELD", []string{"Partition", "Service", "Region", "Account", "Resource"}, 5)
	tf.AddColumn("VALUE", []string{a.Partition, a.Service, a.Region, a.AccountID, a.Resource}, 5)
	return tf.Format()
}
