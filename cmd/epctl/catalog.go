package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"epctl/internal/archive"
	"epctl/internal/ui"
	"epctl/pkg/endpoints"
	"epctl/pkg/errors"
	"epctl/pkg/naming"
	"epctl/pkg/security"
)

var (
	catalogFormat string
	catalogOutput string
	catalogForce  bool
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Endpoint catalog operations",
	Long: `Inspect and export the compiled-in endpoint catalog.

Examples:
  epctl catalog export                               # JSON to stdout
  epctl catalog export --format yaml                 # YAML to stdout
  epctl catalog export --format bundle -O cat.zip    # Reproducible zip bundle`,
}

// catalogExportCmd represents the catalog export command
var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the endpoint catalog",
	Long: `Export the endpoint catalog as JSON, YAML or a zip bundle.

The bundle format writes one JSON file per partition into a reproducible
archive: member timestamps are pinned and permissions preserved, so the same
catalog always produces byte-identical output.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewWithStreams(cmd.OutOrStdout(), cmd.ErrOrStderr(), os.Stdin, nil)
		if err := runCatalogExport(u, endpoints.Default(), catalogFormat, catalogOutput, catalogForce); err != nil {
			logger.Error("Catalog export failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	catalogExportCmd.Flags().StringVarP(&catalogFormat, "format", "f", "json", "export format: json, yaml or bundle")
	catalogExportCmd.Flags().StringVarP(&catalogOutput, "output", "O", "", "output file (default stdout; required for bundle)")
	catalogExportCmd.Flags().BoolVar(&catalogForce, "force", false, "overwrite an existing output file without confirmation")
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogExport(u *ui.UI, table *endpoints.Table, format, output string, force bool) error {
	if output != "" {
		if security.ContainsUnsafePath(output) {
			return errors.NewValidationError(fmt.Sprintf("unsafe output path: %s", output))
		}
		if _, err := os.Stat(output); err == nil && !force {
			ok, err := u.Confirm(fmt.Sprintf("Overwrite %s?", output))
			if err != nil {
				return errors.NewIOError("export cancelled", err)
			}
			if !ok {
				u.Write("Export cancelled\n")
				return nil
			}
		}
	}

	snapshot := table.Snapshot()

	switch format {
	case "json":
		out, err := serializeJSON(snapshot)
		if err != nil {
			return err
		}
		return writeExport(u, output, []byte(out))
	case "yaml":
		out, err := yaml.Marshal(snapshot)
		if err != nil {
			return errors.NewIOError("failed to serialize catalog to YAML", err)
		}
		return writeExport(u, output, out)
	case "bundle":
		if output == "" {
			return errors.NewValidationError("--output is required for bundle export")
		}
		return writeBundle(snapshot, output)
	default:
		return errors.NewValidationError(fmt.Sprintf("unsupported export format: %s", format))
	}
}

func writeExport(u *ui.UI, output string, data []byte) error {
	if output == "" {
		u.Write(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0644); err != nil { // #nosec G306 - exports are not secrets
		return errors.NewIOError("failed to write "+output, err)
	}
	return nil
}

// writeBundle exports one JSON member per partition into a reproducible zip.
// Member names are the canonical PascalCase form of the partition name.
func writeBundle(snapshot []endpoints.Partition, output string) error {
	file, err := os.Create(output) // #nosec G304 - output path is validated by the caller
	if err != nil {
		return errors.NewIOError("failed to create "+output, err)
	}
	defer file.Close()

	w := archive.NewWriter(file)
	for _, p := range snapshot {
		member, err := naming.ToResourceName(p.Name)
		if err != nil {
			return err
		}
		data, err := serializeJSON(p)
		if err != nil {
			return err
		}
		if err := w.Add(member+".json", []byte(data), 0644); err != nil {
			return err
		}
	}
	return w.Close()
}
