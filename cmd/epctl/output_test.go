package main

import (
	"bytes"
	"strings"
	"testing"

	"epctl/internal/config"
	"epctl/pkg/endpoints"
)

func TestSerializeJSON(t *testing.T) {
	out, err := serializeJSON(map[string]string{"key": "value"})
	if err != nil {
		t.Fatalf("serializeJSON failed: %v", err)
	}
	if out != "{\n  \"key\": \"value\"\n}\n" {
		t.Errorf("unexpected serialization: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("serialized JSON must end with a newline")
	}
}

func TestSerializeJSONUnsupportedValue(t *testing.T) {
	if _, err := serializeJSON(func() {}); err == nil {
		t.Error("expected error for unserializable value")
	}
}

func TestOutputFormat(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	if got := outputFormat("table"); got != "table" {
		t.Errorf("flag should win, got %q", got)
	}
	// Unloaded config falls back to its json default
	if got := outputFormat(""); got != "json" {
		t.Errorf("expected json default, got %q", got)
	}
}

func TestWriteEndpointJSON(t *testing.T) {
	ep, ok := endpoints.Resolve("sns", "us-east-1")
	if !ok {
		t.Fatal("sns/us-east-1 should resolve")
	}

	var buf bytes.Buffer
	if err := writeEndpoint(&buf, ep, "json"); err != nil {
		t.Fatalf("writeEndpoint failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`"partition": "aws"`,
		`"endpointName": "us-east-1"`,
		`"hostname": "sns.us-east-1.amazonaws.com"`,
		`"dnsSuffix": "amazonaws.com"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "sslCommonName") {
		t.Error("empty sslCommonName should be omitted from JSON")
	}
}

func TestWriteEndpointTable(t *testing.T) {
	ep, ok := endpoints.Resolve("sqs", "cn-north-1")
	if !ok {
		t.Fatal("sqs/cn-north-1 should resolve")
	}

	var buf bytes.Buffer
	if err := writeEndpoint(&buf, ep, "table"); err != nil {
		t.Fatalf("writeEndpoint failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"FIELD", "VALUE",
		"Partition", "aws-cn",
		"Hostname", "sqs.cn-north-1.amazonaws.com.cn",
		"SSL Common Name", "cn-north-1.queue.amazonaws.com.cn",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteEndpointUnsupportedFormat(t *testing.T) {
	ep, _ := endpoints.Resolve("sns", "us-east-1")
	if err := writeEndpoint(&bytes.Buffer{}, ep, "xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormatEndpointTableOmitsEmptyCommonName(t *testing.T) {
	ep, _ := endpoints.Resolve("sns", "us-east-1")
	out := formatEndpointTable(ep)
	if strings.Contains(out, "SSL Common Name") {
		t.Errorf("table should omit SSL Common Name when empty:\n%s", out)
	}
}
