package main

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"epctl/internal/ui"
	"epctl/pkg/endpoints"
)

func testUI(in io.Reader) (*ui.UI, *bytes.Buffer) {
	var out bytes.Buffer
	if in == nil {
		in = strings.NewReader("")
	}
	return ui.NewWithStreams(&out, io.Discard, in, nil), &out
}

func TestRunCatalogExportJSON(t *testing.T) {
	u, out := testUI(nil)
	if err := runCatalogExport(u, endpoints.Default(), "json", "", false); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{`"partition": "aws"`, `"partition": "aws-cn"`, `"partition": "aws-us-gov"`, `"dnsSuffix": "amazonaws.com.cn"`} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON export missing %q", want)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("export should end with a newline")
	}
}

func TestRunCatalogExportYAML(t *testing.T) {
	u, out := testUI(nil)
	if err := runCatalogExport(u, endpoints.Default(), "yaml", "", false); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"partition: aws", "partition: aws-cn", "dnsSuffix: amazonaws.com.cn"} {
		if !strings.Contains(got, want) {
			t.Errorf("YAML export missing %q:\n%s", want, got)
		}
	}
}

func TestRunCatalogExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	u, out := testUI(nil)
	if err := runCatalogExport(u, endpoints.Default(), "json", path, false); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("file export should not write to stdout: %q", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	if !strings.Contains(string(data), `"partition": "aws"`) {
		t.Error("export file missing catalog content")
	}
}

func TestRunCatalogExportBundle(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.zip")
	second := filepath.Join(dir, "second.zip")

	u, _ := testUI(nil)
	if err := runCatalogExport(u, endpoints.Default(), "bundle", first, false); err != nil {
		t.Fatalf("bundle export failed: %v", err)
	}
	if err := runCatalogExport(u, endpoints.Default(), "bundle", second, false); err != nil {
		t.Fatalf("second bundle export failed: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("bundle missing: %v", err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("second bundle missing: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("bundle export is not reproducible")
	}

	zr, err := zip.NewReader(bytes.NewReader(a), int64(len(a)))
	if err != nil {
		t.Fatalf("bundle is not a readable archive: %v", err)
	}

	members := make(map[string]bool)
	for _, f := range zr.File {
		members[f.Name] = true
	}
	for _, want := range []string{"Aws.json", "AwsCn.json", "AwsUsGov.json"} {
		if !members[want] {
			t.Errorf("bundle missing member %q, have %v", want, members)
		}
	}
}

func TestRunCatalogExportBundleRequiresOutput(t *testing.T) {
	u, _ := testUI(nil)
	if err := runCatalogExport(u, endpoints.Default(), "bundle", "", false); err == nil {
		t.Error("bundle export without output should fail")
	}
}

func TestRunCatalogExportUnsupportedFormat(t *testing.T) {
	u, _ := testUI(nil)
	if err := runCatalogExport(u, endpoints.Default(), "toml", "", false); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRunCatalogExportRejectsUnsafePath(t *testing.T) {
	u, _ := testUI(nil)
	err := runCatalogExport(u, endpoints.Default(), "json", "../escape.json", false)
	if err == nil {
		t.Error("expected error for unsafe output path")
	}
}

func TestRunCatalogExportOverwriteDeclined(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.json")
	if err := os.WriteFile(path, []byte("keep me"), 0600); err != nil {
		t.Fatalf("failed to seed existing file: %v", err)
	}

	u, out := testUI(strings.NewReader("n\n"))
	if err := runCatalogExport(u, endpoints.Default(), "json", path, false); err != nil {
		t.Fatalf("declined overwrite should not error: %v", err)
	}
	if !strings.Contains(out.String(), "Export cancelled") {
		t.Errorf("expected cancellation notice, got %q", out.String())
	}

	data, _ := os.ReadFile(path)
	if string(data) != "keep me" {
		t.Error("declined overwrite must leave the file untouched")
	}
}

func TestRunCatalogExportOverwriteAccepted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.json")
	if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
		t.Fatalf("failed to seed existing file: %v", err)
	}

	u, _ := testUI(strings.NewReader("y\n"))
	if err := runCatalogExport(u, endpoints.Default(), "json", path, false); err != nil {
		t.Fatalf("accepted overwrite failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"partition": "aws"`) {
		t.Error("accepted overwrite should replace the file")
	}
}

func TestRunCatalogExportForceSkipsPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.json")
	if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
		t.Fatalf("failed to seed existing file: %v", err)
	}

	// Empty input would abort a prompt; --force must never reach one
	u, _ := testUI(strings.NewReader(""))
	if err := runCatalogExport(u, endpoints.Default(), "json", path, true); err != nil {
		t.Fatalf("forced overwrite failed: %v", err)
	}
}
