package interactive

import (
	"sort"
	"strings"
	"testing"

	"epctl/pkg/endpoints"
)

func TestServiceChoices(t *testing.T) {
	choices := ServiceChoices(endpoints.Default(), "aws")
	if len(choices) == 0 {
		t.Fatal("expected catalogued services for the aws partition")
	}

	names := make([]string, 0, len(choices))
	var iam, sns *ServiceChoice
	for i := range choices {
		names = append(names, choices[i].Name)
		switch choices[i].Name {
		case "iam":
			iam = &choices[i]
		case "sns":
			sns = &choices[i]
		}
	}

	if !sort.StringsAreSorted(names) {
		t.Errorf("choices not sorted by name: %v", names)
	}
	if iam == nil || sns == nil {
		t.Fatal("expected iam and sns among the choices")
	}
	if iam.Regional {
		t.Error("iam carries no regional defaults, scope should be override-only")
	}
	if iam.Overrides == 0 {
		t.Error("iam should list its global endpoint override")
	}
	if !sns.Regional {
		t.Error("sns should be regional")
	}
	if iam.Partition != "aws" {
		t.Errorf("iam partition = %q, want aws", iam.Partition)
	}
}

func TestServiceChoicesUnknownPartition(t *testing.T) {
	choices := ServiceChoices(endpoints.Default(), "aws-iso")
	if len(choices) != 0 {
		t.Errorf("expected no choices for uncatalogued partition, got %d", len(choices))
	}
}

func TestRegionChoices(t *testing.T) {
	choices := RegionChoices()
	if len(choices) != len(endpoints.RegionMapping) {
		t.Fatalf("expected %d choices, got %d", len(endpoints.RegionMapping), len(choices))
	}

	codes := make([]string, 0, len(choices))
	for _, c := range choices {
		codes = append(codes, c.Code)
		if c.Region != endpoints.RegionMapping[c.Code] {
			t.Errorf("choice %q maps to %q, want %q", c.Code, c.Region, endpoints.RegionMapping[c.Code])
		}
		if c.Description == "" {
			t.Errorf("choice %q has no description", c.Code)
		}
	}
	if !sort.StringsAreSorted(codes) {
		t.Errorf("choices not sorted by code: %v", codes)
	}
}

func TestServiceChoicePreview(t *testing.T) {
	preview := serviceChoicePreview(ServiceChoice{
		Name:      "sqs",
		Partition: "aws",
		Regional:  true,
		Overrides: 1,
	})

	for _, want := range []string{"sqs", "aws", "regional", "Overrides:  1"} {
		if !strings.Contains(preview, want) {
			t.Errorf("preview missing %q:\n%s", want, preview)
		}
	}

	preview = serviceChoicePreview(ServiceChoice{Name: "iam", Partition: "aws"})
	if !strings.Contains(preview, "override-only") {
		t.Errorf("preview should mark override-only scope:\n%s", preview)
	}
}

func TestRegionChoicePreview(t *testing.T) {
	preview := regionChoicePreview(RegionChoice{
		Code:        "cnn1",
		Region:      "cn-north-1",
		Description: "China (Beijing)",
	})

	for _, want := range []string{"cn-north-1", "cnn1", "China (Beijing)", "amazonaws.com.cn"} {
		if !strings.Contains(preview, want) {
			t.Errorf("preview missing %q:\n%s", want, preview)
		}
	}
}
