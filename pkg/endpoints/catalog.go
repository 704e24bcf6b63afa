package endpoints

import (
	"fmt"
	"regexp"
	"sort"
	"sync"

	"epctl/pkg/errors"
)

// Attributes holds the resolvable facts about one endpoint. Catalog entries
// are sparse: an empty field inherits from the service defaults and then the
// partition defaults during resolution. Hostname and SSLCommonName values may
// carry {service}, {region} and {dnsSuffix} placeholders that are expanded
// when an endpoint is resolved.
type Attributes struct {
	Hostname          string   `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Protocols         []string `json:"protocols,omitempty" yaml:"protocols,omitempty"`
	SignatureVersions []string `json:"signatureVersions,omitempty" yaml:"signatureVersions,omitempty"`
	SSLCommonName     string   `json:"sslCommonName,omitempty" yaml:"sslCommonName,omitempty"`
	DNSSuffix         string   `json:"dnsSuffix,omitempty" yaml:"dnsSuffix,omitempty"`
}

// Service describes one service's endpoint shape within a partition.
// Defaults, when present, apply to any region the partition's match rule
// recognizes. Endpoints lists explicit per-region overrides; these apply even
// to region strings the match rule does not recognize.
type Service struct {
	Defaults  *Attributes           `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Endpoints map[string]Attributes `json:"endpoints,omitempty" yaml:"endpoints,omitempty"`
}

// Partition represents one independent network realm with its own DNS suffix
// and endpoint catalog.
type Partition struct {
	Name        string             `json:"partition" yaml:"partition"`
	RegionRegex string             `json:"regionRegex" yaml:"regionRegex"`
	DNSSuffix   string             `json:"dnsSuffix" yaml:"dnsSuffix"`
	Defaults    Attributes         `json:"defaults" yaml:"defaults"`
	Services    map[string]Service `json:"services" yaml:"services"`
}

type compiledPartition struct {
	Partition
	regionRegex *regexp.Regexp
}

// Table is a read-only endpoint catalog. Partitions keep their declaration
// order because region matching is first-match-wins; the first partition is
// the default partition, used when a region matches no rule at all. A Table
// is immutable after construction and safe for concurrent use.
type Table struct {
	partitions []compiledPartition
}

// NewTable validates and compiles a partition catalog. The catalog is trusted
// data, so a validation failure is a fatal configuration error, not something
// callers are expected to recover from.
func NewTable(partitions []Partition) (*Table, error) {
	if len(partitions) == 0 {
		return nil, errors.NewCatalogError("catalog must define at least one partition", nil)
	}

	seen := make(map[string]bool, len(partitions))
	compiled := make([]compiledPartition, 0, len(partitions))
	for _, p := range partitions {
		if p.Name == "" {
			return nil, errors.NewCatalogError("partition with empty name", nil)
		}
		if seen[p.Name] {
			return nil, errors.NewCatalogError(fmt.Sprintf("duplicate partition %q", p.Name), nil)
		}
		seen[p.Name] = true

		if p.DNSSuffix == "" {
			return nil, errors.NewCatalogError(fmt.Sprintf("partition %q has no DNS suffix", p.Name), nil)
		}

		re, err := regexp.Compile(p.RegionRegex)
		if err != nil {
			return nil, errors.NewCatalogError(fmt.Sprintf("partition %q has an invalid region pattern", p.Name), err)
		}

		// Partition defaults must be complete: they are the base every merged
		// endpoint inherits from, which is what guarantees resolved endpoints
		// always carry a hostname, protocols and signature versions.
		if p.Defaults.Hostname == "" {
			return nil, errors.NewCatalogError(fmt.Sprintf("partition %q defaults have no hostname", p.Name), nil)
		}
		if len(p.Defaults.Protocols) == 0 {
			return nil, errors.NewCatalogError(fmt.Sprintf("partition %q defaults have no protocols", p.Name), nil)
		}
		if len(p.Defaults.SignatureVersions) == 0 {
			return nil, errors.NewCatalogError(fmt.Sprintf("partition %q defaults have no signature versions", p.Name), nil)
		}

		compiled = append(compiled, compiledPartition{Partition: p, regionRegex: re})
	}

	return &Table{partitions: compiled}, nil
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := NewTable(awsPartitions)
	if err != nil {
		panic(fmt.Sprintf("built-in endpoint catalog is invalid: %v", err))
	}
	return t
})

// Default returns the shared table built from the compiled-in AWS catalog.
// The table is constructed once and never mutated.
func Default() *Table {
	return defaultTable()
}

// DefaultPartition returns the name of the partition used as the fallback
// target when a region matches no partition rule.
func (t *Table) DefaultPartition() string {
	return t.partitions[0].Name
}

// Snapshot returns a copy of the catalog data in declaration order, suitable
// for serialization. Mutating the copy does not affect the table.
func (t *Table) Snapshot() []Partition {
	out := make([]Partition, 0, len(t.partitions))
	for _, cp := range t.partitions {
		p := cp.Partition
		services := make(map[string]Service, len(p.Services))
		for name, svc := range p.Services {
			copied := Service{}
			if svc.Defaults != nil {
				d := *svc.Defaults
				copied.Defaults = &d
			}
			if len(svc.Endpoints) > 0 {
				copied.Endpoints = make(map[string]Attributes, len(svc.Endpoints))
				for region, attrs := range svc.Endpoints {
					copied.Endpoints[region] = attrs
				}
			}
			services[name] = copied
		}
		p.Services = services
		out = append(out, p)
	}
	return out
}

// ServiceNames returns the sorted service names catalogued for a partition,
// or nil when the partition is unknown.
func (t *Table) ServiceNames(partition string) []string {
	for i := range t.partitions {
		if t.partitions[i].Name == partition {
			names := make([]string, 0, len(t.partitions[i].Services))
			for name := range t.partitions[i].Services {
				names = append(names, name)
			}
			sort.Strings(names)
			return names
		}
	}
	return nil
}

// partitionFor derives the owning partition for a region by testing each
// partition's match rule in catalog order. When nothing matches it falls back
// to the default partition and reports matched=false; callers use that flag
// to restrict resolution to explicit per-region overrides.
func (t *Table) partitionFor(region string) (*compiledPartition, bool) {
	for i := range t.partitions {
		if t.partitions[i].regionRegex.MatchString(region) {
			return &t.partitions[i], true
		}
	}
	return &t.partitions[0], false
}
