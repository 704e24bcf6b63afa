package endpoints

import (
	"strings"
)

// Endpoint is a fully resolved endpoint descriptor. Field order is
// significant: JSON encoding follows declaration order and existing consumers
// expect exactly this key order, with sslCommonName omitted when absent.
type Endpoint struct {
	Partition         string   `json:"partition" yaml:"partition"`
	EndpointName      string   `json:"endpointName" yaml:"endpointName"`
	Protocols         []string `json:"protocols" yaml:"protocols"`
	SSLCommonName     string   `json:"sslCommonName,omitempty" yaml:"sslCommonName,omitempty"`
	Hostname          string   `json:"hostname" yaml:"hostname"`
	SignatureVersions []string `json:"signatureVersions" yaml:"signatureVersions"`
	DNSSuffix         string   `json:"dnsSuffix" yaml:"dnsSuffix"`
}

// Resolve looks up the endpoint for a service in a region.
//
// The owning partition is the first one whose match rule recognizes the
// region; when none does, the default partition is still probed so that
// explicit per-region overrides for unlisted region strings (e.g. "local",
// "aws-global") keep resolving. A service that is not catalogued in the
// chosen partition has no endpoint there, which is a normal outcome reported
// as ok=false, not an error.
func (t *Table) Resolve(service, region string) (Endpoint, bool) {
	part, matched := t.partitionFor(region)

	svc, known := part.Services[service]
	if !known {
		return Endpoint{}, false
	}

	attrs := part.Defaults
	if svc.Defaults != nil {
		attrs = mergeAttributes(attrs, *svc.Defaults)
	}

	override, hasOverride := svc.Endpoints[region]
	if hasOverride {
		attrs = mergeAttributes(attrs, override)
	} else if !matched || svc.Defaults == nil {
		// Service defaults only apply to regions the partition rule
		// recognizes; an unmatched region resolves solely via overrides.
		return Endpoint{}, false
	}

	return buildEndpoint(part, service, region, attrs), true
}

// mergeAttributes overlays the set fields of over onto base.
func mergeAttributes(base, over Attributes) Attributes {
	if over.Hostname != "" {
		base.Hostname = over.Hostname
	}
	if len(over.Protocols) > 0 {
		base.Protocols = over.Protocols
	}
	if len(over.SignatureVersions) > 0 {
		base.SignatureVersions = over.SignatureVersions
	}
	if over.SSLCommonName != "" {
		base.SSLCommonName = over.SSLCommonName
	}
	if over.DNSSuffix != "" {
		base.DNSSuffix = over.DNSSuffix
	}
	return base
}

func buildEndpoint(part *compiledPartition, service, region string, attrs Attributes) Endpoint {
	suffix := attrs.DNSSuffix
	if suffix == "" {
		suffix = part.DNSSuffix
	}

	expand := strings.NewReplacer(
		"{service}", service,
		"{region}", region,
		"{dnsSuffix}", suffix,
	)

	hostname := expand.Replace(attrs.Hostname)
	commonName := expand.Replace(attrs.SSLCommonName)
	if commonName == hostname {
		// sslCommonName is only reported when it differs from the hostname.
		commonName = ""
	}

	return Endpoint{
		Partition:         part.Name,
		EndpointName:      region,
		Protocols:         append([]string(nil), attrs.Protocols...),
		SSLCommonName:     commonName,
		Hostname:          hostname,
		SignatureVersions: append([]string(nil), attrs.SignatureVersions...),
		DNSSuffix:         suffix,
	}
}

// Resolve resolves against the compiled-in catalog.
func Resolve(service, region string) (Endpoint, bool) {
	return Default().Resolve(service, region)
}
