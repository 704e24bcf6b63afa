package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg := Get()
	if cfg.DefaultRegion != "us-east-1" {
		t.Errorf("default region = %q, want us-east-1", cfg.DefaultRegion)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("default output format = %q, want json", cfg.Output.Format)
	}
	if !cfg.Logging.FileLogging {
		t.Error("file logging should default to enabled")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "epctl.yaml")
	content := `default_region: cac1
output:
  format: table
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := Get()
	if cfg.DefaultRegion != "cac1" {
		t.Errorf("default region = %q, want cac1", cfg.DefaultRegion)
	}
	if cfg.Output.Format != "table" {
		t.Errorf("output format = %q, want table", cfg.Output.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "unknown default region",
			content: "default_region: mars-west\n",
			errPart: "not a known region",
		},
		{
			name:    "unknown output format",
			content: "output:\n  format: xml\n",
			errPart: "not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			path := filepath.Join(t.TempDir(), "epctl.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("failed to write config fixture: %v", err)
			}

			err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q should mention %q", err.Error(), tt.errPart)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config", Config{}, false},
		{"full region name", Config{DefaultRegion: "eu-west-2"}, false},
		{"region shortcode", Config{DefaultRegion: "use1"}, false},
		{"json format", Config{Output: OutputConfig{Format: "json"}}, false},
		{"table format", Config{Output: OutputConfig{Format: "table"}}, false},
		{"known partition", Config{DefaultPartition: "aws-cn"}, false},
		{"bogus region", Config{DefaultRegion: "nowhere"}, true},
		{"bogus format", Config{Output: OutputConfig{Format: "yaml"}}, true},
		{"bogus partition", Config{DefaultPartition: "aws-iso"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "saved.yaml")
	if err := Save(New(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file mode = %o, want 0600", perm)
	}

	Reset()
	if err := Load(path); err != nil {
		t.Fatalf("Load of saved config failed: %v", err)
	}
	cfg := Get()
	if cfg.DefaultRegion != "us-east-1" {
		t.Errorf("round-tripped region = %q, want us-east-1", cfg.DefaultRegion)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("round-tripped format = %q, want json", cfg.Output.Format)
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath failed: %v", err)
	}
	if filepath.Base(path) != ".epctl.yaml" {
		t.Errorf("unexpected default config name: %q", path)
	}
}
