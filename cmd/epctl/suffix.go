package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"epctl/internal/config"
	"epctl/internal/ui"
	"epctl/pkg/endpoints"
	"epctl/pkg/errors"
)

var suffixARN string

// suffixCmd represents the suffix command
var suffixCmd = &cobra.Command{
	Use:   "suffix [service] [region]",
	Short: "Look up the DNS suffix for a region's partition",
	Long: `Look up the DNS suffix of the partition a region's traffic lives in.

Unlike resolve, this always answers: the suffix depends only on which
partition's region rule matches, falling back to the default partition, and
it does not matter whether the service has a catalogued endpoint there.

Examples:
  epctl suffix dynamodb us-east-1                         # amazonaws.com
  epctl suffix sqs cn-north-1                             # amazonaws.com.cn
  epctl suffix --arn arn:aws:sns:us-east-1:123456:Topic   # From an identifier
  cat arns.txt | epctl suffix --arn -                     # One suffix per line`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSuffix(cmd.OutOrStdout(), args); err != nil {
			logger.Error("DNS suffix lookup failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	suffixCmd.Flags().StringVar(&suffixARN, "arn", "", "resource identifier to look up; use - to read identifiers from a pipe")
	rootCmd.AddCommand(suffixCmd)
}

func runSuffix(w io.Writer, args []string) error {
	if suffixARN != "" {
		return suffixFromARNs(w, suffixARN)
	}

	if len(args) == 0 {
		return errors.NewValidationError("service is required unless --arn is given")
	}
	service := args[0]
	region := config.Get().DefaultRegion
	if len(args) > 1 {
		region = args[1]
	}

	fmt.Fprintln(w, endpoints.DNSSuffixFor(service, endpoints.NormalizeRegion(region)))
	return nil
}

// suffixFromARNs prints the DNS suffix for one identifier, or for each line
// of piped input when the identifier is "-".
func suffixFromARNs(w io.Writer, identifier string) error {
	if identifier != "-" {
		suffix, err := endpoints.DNSSuffixForARN(identifier)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, suffix)
		return nil
	}

	input, ok, err := ui.NewPipeReader(os.Stdin).Read()
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewValidationError("--arn - requires piped input")
	}

	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		suffix, err := endpoints.DNSSuffixForARN(line)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, suffix)
	}
	return nil
}
