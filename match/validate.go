package match

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/net/idna"
)

// Validator reports whether a captured value is acceptable for a variable.
// For wildcard variables the validator is applied to every segment of the
// captured group.
type Validator func(string) bool

// Validators maps variable names to validators for a single pattern.
type Validators map[string]Validator

// DefaultValidator is applied to every variable that has no validator of
// its own. It accepts values made of Unicode letters, digits, spaces,
// dots, dashes and underscores.
func DefaultValidator(value string) bool {
	for _, r := range value {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
		case r == ' ', r == '.', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// builtinValidators maps validator names to pre-compiled implementations.
// Usable directly in route variable validation: {name: validator}.
var builtinValidators = func() map[string]Validator {
	raw := map[string]string{
		"int":      `[0-9]+`,
		"float":    `[0-9]*\.?[0-9]+`,
		"slug":     `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`,
		"alpha":    `[a-zA-Z]+`,
		"alphanum": `[a-zA-Z0-9]+`,
		"date":     `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
		"hex":      `[0-9a-fA-F]+`,
	}

	m := make(map[string]Validator, len(raw)+2)
	for name, pattern := range raw {
		re := regexp.MustCompile(fmt.Sprintf("^%s$", pattern))
		m[name] = re.MatchString
	}

	m["uuid"] = func(value string) bool {
		return uuid.Validate(value) == nil
	}

	// RFC 1035/1123: labels 1-63 chars, total up to 253 chars.
	m["domain"] = func(value string) bool {
		if value == "" || len(value) > 253 {
			return false
		}
		_, err := idna.Lookup.ToASCII(value)
		return err == nil
	}

	return m
}()

// BuiltinValidator returns a named pre-compiled validator.
//
// Available names:
//
//	uuid     - RFC 4122 UUID (e.g. 550e8400-e29b-41d4-a716-446655440000)
//	int      - unsigned integer (e.g. 42)
//	float    - decimal number (e.g. 3.14, 42, .5)
//	slug     - URL-safe slug (e.g. my-post-title)
//	alpha    - alphabetic characters (e.g. hello)
//	alphanum - alphanumeric characters (e.g. abc123)
//	date     - ISO 8601 date (e.g. 2024-01-15)
//	hex      - hexadecimal string (e.g. deadBEEF)
//	domain   - domain name per RFC 1123 (e.g. example.com)
func BuiltinValidator(name string) (Validator, bool) {
	v, ok := builtinValidators[name]
	return v, ok
}
