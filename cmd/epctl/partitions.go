package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"epctl/pkg/endpoints"
	"epctl/pkg/errors"
)

// partitionsCmd represents the partitions command
var partitionsCmd = &cobra.Command{
	Use:   "partitions",
	Short: "List the partitions in the endpoint catalog",
	Long: `List the partitions in the endpoint catalog in match order.

The first partition is the default partition: regions matching no rule fall
back to it, both for resolution probes and DNS suffix lookups.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writePartitionsTable(cmd.OutOrStdout(), endpoints.Default())
	},
}

// servicesCmd represents the services command
var servicesCmd = &cobra.Command{
	Use:   "services [partition]",
	Short: "List the services catalogued in a partition",
	Long: `List the services catalogued in a partition (default: the default partition).

Regional services resolve in any region the partition rule recognizes;
override-only services resolve solely in their explicitly listed regions.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table := endpoints.Default()
		partition := defaultPartition(table)
		if len(args) > 0 {
			partition = args[0]
		}
		if err := writeServicesTable(cmd.OutOrStdout(), table, partition); err != nil {
			logger.Error("Service listing failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(partitionsCmd)
	rootCmd.AddCommand(servicesCmd)
}

func writePartitionsTable(w io.Writer, table *endpoints.Table) {
	var names, suffixes, patterns, counts []string
	for _, p := range table.Snapshot() {
		names = append(names, p.Name)
		suffixes = append(suffixes, p.DNSSuffix)
		patterns = append(patterns, p.RegionRegex)
		counts = append(counts, strconv.Itoa(len(p.Services)))
	}

	tf := NewTableFormatter(2)
	tf.AddColumn("PARTITION", names, 9)
	tf.AddColumn("DNS SUFFIX", suffixes, 10)
	tf.AddColumn("REGION PATTERN", patterns, 14)
	tf.AddColumn("SERVICES", counts, 8)
	fmt.Fprint(w, tf.Format())
}

func writeServicesTable(w io.Writer, table *endpoints.Table, partition string) error {
	names := table.ServiceNames(partition)
	if names == nil {
		return errors.NewValidationError(fmt.Sprintf("unknown partition: %s", partition))
	}

	var snapshot endpoints.Partition
	for _, p := range table.Snapshot() {
		if p.Name == partition {
			snapshot = p
			break
		}
	}

	var scopes, overrides []string
	for _, name := range names {
		svc := snapshot.Services[name]
		if svc.Defaults != nil {
			scopes = append(scopes, "regional")
		} else {
			scopes = append(scopes, "override-only")
		}
		overrides = append(overrides, strconv.Itoa(len(svc.Endpoints)))
	}

	tf := NewTableFormatter(2)
	tf.AddColumn("SERVICE", names, 7)
	tf.AddColumn("SCOPE", scopes, 5)
	tf.AddColumn("OVERRIDES", overrides, 9)
	fmt.Fprint(w, tf.Format())
	return nil
}
