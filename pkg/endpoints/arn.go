package endpoints

import (
	"fmt"

	awsarn "github.com/aws/aws-sdk-go-v2/aws/arn"

	"epctl/pkg/errors"
)

// ARN is a parsed resource identifier of the form
// arn:<partition>:<service>:<region>:<account>:<resource>, where the resource
// portion may itself contain colons. The embedded partition tag is kept for
// display, but resolution derives the owning partition from the region: the
// catalog's match rules are the source of truth, not the caller-supplied tag.
type ARN struct {
	Partition string
	Service   string
	Region    string
	AccountID string
	Resource  string
}

// ParseARN splits a resource identifier into its five leading fields.
// Identifiers without the arn: prefix or with fewer than five colon-delimited
// fields are rejected with a typed ErrTypeARN error.
func ParseARN(s string) (ARN, error) {
	parsed, err := awsarn.Parse(s)
	if err != nil {
		return ARN{}, errors.NewARNError(fmt.Sprintf("malformed resource identifier %q", s), err)
	}
	return ARN{
		Partition: parsed.Partition,
		Service:   parsed.Service,
		Region:    parsed.Region,
		AccountID: parsed.AccountID,
		Resource:  parsed.Resource,
	}, nil
}

// ResolveARN parses a resource identifier and resolves its embedded
// (service, region) pair. The returned bool mirrors Resolve; the error is
// non-nil only for malformed identifiers.
func (t *Table) ResolveARN(s string) (Endpoint, bool, error) {
	a, err := ParseARN(s)
	if err != nil {
		return Endpoint{}, false, err
	}
	ep, ok := t.Resolve(a.Service, a.Region)
	return ep, ok, nil
}

// ResolveARN resolves against the compiled-in catalog.
func ResolveARN(s string) (Endpoint, bool, error) {
	return Default().ResolveARN(s)
}
