package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"epctl/internal/config"
	"epctl/pkg/endpoints"
	"epctl/pkg/errors"
)

// serializeJSON renders a value as indented JSON with a trailing newline,
// the shape downstream tooling diffs against.
func serializeJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.NewIOError("failed to serialize to JSON", err)
	}
	return string(data) + "\n", nil
}

// outputFormat picks the effective output format: the flag wins, then the
// configured default, then json.
func outputFormat(flag string) string {
	if flag != "" {
		return flag
	}
	if f := config.Get().Output.Format; f != "" {
		return f
	}
	return "json"
}

// defaultPartition picks the partition commands operate on when none is named:
// the configured one, else the catalog's default.
func defaultPartition(table *endpoints.Table) string {
	if p := config.Get().DefaultPartition; p != "" {
		return p
	}
	return table.DefaultPartition()
}

// writeEndpoint renders a resolved endpoint in the requested format.
func writeEndpoint(w io.Writer, ep endpoints.Endpoint, format string) error {
	switch format {
	case "json":
		out, err := serializeJSON(ep)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
		return nil
	case "table":
		fmt.Fprint(w, formatEndpointTable(ep))
		return nil
	default:
		return errors.NewValidationError(fmt.Sprintf("unsupported output format: %s", format))
	}
}

// formatEndpointTable renders a resolved endpoint as a two-column table.
func formatEndpointTable(ep endpoints.Endpoint) string {
	fields := []string{"Partition", "Endpoint Name", "Protocols", "Hostname", "Signature Versions", "DNS Suffix"}
	values := []string{
		ep.Partition,
		ep.EndpointName,
		strings.Join(ep.Protocols, ", "),
		ep.Hostname,
		strings.Join(ep.SignatureVersions, ", "),
		ep.DNSSuffix,
	}
	if ep.SSLCommonName != "" {
		fields = append(fields, "SSL Common Name")
		values = append(values, ep.SSLCommonName)
	}

	tf := NewTableFormatter(2)
	tf.AddColumn("FIELD", fields, 5)
	tf.AddColumn("VALUE", values, 5)
	return tf.Format()
}
