// Package language is the registry of target languages the service
// translates into. Codes outside the registry are a client error, never a
// silent default: a request for an unknown code must not come back labeled
// as some other language.
package language

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupported marks a target language code outside the registry.
var ErrUnsupported = errors.New("unsupported target language")

// names maps upper-cased language codes to the display name embedded in the
// inference prompt.
var names = map[string]string{
	"NL": "Dutch (The Netherlands)",
	"BG": "Bulgarian",
}

// Normalize upper-cases and trims a client-supplied code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Name resolves a code (any casing) to its display name.
func Name(code string) (string, error) {
	name, ok := names[Normalize(code)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, Normalize(code))
	}
	return name, nil
}

// Codes returns the supported codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
