package naming

import (
	"strings"
	"unicode"

	"epctl/pkg/errors"
)

// ToResourceName normalizes an identifier in snake, kebab or camel case into a
// single PascalCase token containing only ASCII letters and digits. It is used
// wherever a generated artifact needs a canonical member name, e.g. the files
// inside an exported catalog bundle.
//
//	foo_bar     -> FooBar
//	foo-bar_baz -> FooBarBaz
//	s3Bucket    -> S3Bucket
//	123         -> 123
//
// An identifier with no alphanumeric characters at all cannot be normalized
// and yields a validation error.
func ToResourceName(name string) (string, error) {
	var b strings.Builder
	startOfRun := true
	for _, r := range name {
		if !isAlphanumeric(r) {
			startOfRun = true
			continue
		}
		if startOfRun {
			b.WriteRune(unicode.ToUpper(r))
			startOfRun = false
		} else {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", errors.NewValidationError("identifier has no alphanumeric characters: " + name)
	}
	return b.String(), nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
