package interactive

import (
	"fmt"
	"sort"

	"epctl/pkg/colors"
	"epctl/pkg/endpoints"
)

// ServiceChoice is one selectable service from the endpoint catalog.
type ServiceChoice struct {
	Name      string
	Partition string
	Regional  bool // has defaults applying to any matched region
	Overrides int  // explicit per-region entries
}

// RegionChoice is one selectable region shortcode.
type RegionChoice struct {
	Code        string
	Region      string
	Description string
}

// ServiceChoices lists the catalogued services of a partition, sorted by name.
func ServiceChoices(table *endpoints.Table, partition string) []ServiceChoice {
	choices := make([]ServiceChoice, 0)
	for _, p := range table.Snapshot() {
		if p.Name != partition {
			continue
		}
		for _, name := range table.ServiceNames(partition) {
			svc := p.Services[name]
			choices = append(choices, ServiceChoice{
				Name:      name,
				Partition: partition,
				Regional:  svc.Defaults != nil,
				Overrides: len(svc.Endpoints),
			})
		}
	}
	return choices
}

// RegionChoices lists the known region shortcodes with their descriptions.
func RegionChoices() []RegionChoice {
	choices := make([]RegionChoice, 0, len(endpoints.RegionMapping))
	for _, code := range sortedCodes() {
		choices = append(choices, RegionChoice{
			Code:        code,
			Region:      endpoints.RegionMapping[code],
			Description: endpoints.GetRegionDescription(code),
		})
	}
	return choices
}

// SelectService uses a fuzzy finder to pick a service from the catalog.
func SelectService(choices []ServiceChoice, title string) (*ServiceChoice, error) {
	if len(choices) == 0 {
		return nil, fmt.Errorf("no services available")
	}

	idx, err := FuzzyFind(choices,
		func(i int) string {
			return choices[i].Name
		},
		fmt.Sprintf("%s (%d available)", title, len(choices)),
		func(i, w, h int) string {
			if i < 0 || i >= len(choices) {
				return ""
			}
			return serviceChoicePreview(choices[i])
		},
	)
	if err != nil {
		return nil, fmt.Errorf("service selection cancelled")
	}
	return &choices[idx], nil
}

// SelectRegion uses a fuzzy finder to pick a region shortcode.
func SelectRegion(choices []RegionChoice, title string) (*RegionChoice, error) {
	if len(choices) == 0 {
		return nil, fmt.Errorf("no regions available")
	}

	idx, err := FuzzyFind(choices,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", choices[i].Region, choices[i].Code)
		},
		fmt.Sprintf("%s (%d available)", title, len(choices)),
		func(i, w, h int) string {
			if i < 0 || i >= len(choices) {
				return ""
			}
			return regionChoicePreview(choices[i])
		},
	)
	if err != nil {
		return nil, fmt.Errorf("region selection cancelled")
	}
	return &choices[idx], nil
}

func serviceChoicePreview(c ServiceChoice) string {
	scope := colors.ColorWarning("override-only")
	if c.Regional {
		scope = colors.ColorSuccess("regional")
	}
	return fmt.Sprintf("Service:    %s\n"+
		"Partition:  %s\n"+
		"Scope:      %s\n"+
		"Overrides:  %d",
		c.Name, c.Partition, scope, c.Overrides)
}

func regionChoicePreview(c RegionChoice) string {
	return fmt.Sprintf("Region:       %s\n"+
		"Shortcode:    %s\n"+
		"Description:  %s\n"+
		"DNS Suffix:   %s",
		c.Region, c.Code, c.Description, endpoints.DNSSuffixFor("", c.Region))
}

func sortedCodes() []string {
	codes := make([]string, 0, len(endpoints.RegionMapping))
	for code := range endpoints.RegionMapping {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
