package endpoints

// DNSSuffixFor reports the DNS suffix of the realm a region's traffic lives
// in. It is total: the owning partition is derived from the region with the
// same first-match rule Resolve uses, falling back to the default partition,
// and the partition's suffix is returned whether or not the service is
// catalogued there. A (service, region) pair with no endpoint can therefore
// still yield a concrete suffix.
func (t *Table) DNSSuffixFor(service, region string) string {
	part, _ := t.partitionFor(region)
	return part.DNSSuffix
}

// DNSSuffixForARN parses a resource identifier and reports the DNS suffix for
// its embedded region. The error is non-nil only for malformed identifiers.
func (t *Table) DNSSuffixForARN(s string) (string, error) {
	a, err := ParseARN(s)
	if err != nil {
		return "", err
	}
	return t.DNSSuffixFor(a.Service, a.Region), nil
}

// DNSSuffixFor resolves against the compiled-in catalog.
func DNSSuffixFor(service, region string) string {
	return Default().DNSSuffixFor(service, region)
}

// DNSSuffixForARN resolves against the compiled-in catalog.
func DNSSuffixForARN(s string) (string, error) {
	return Default().DNSSuffixForARN(s)
}
