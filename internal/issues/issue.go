// Package issues provides the issue type reported by identifier conformance checks.
package issues

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/namecase/internal/severity"
)

// Issue represents a single problem found while checking an identifier.
type Issue struct {
	// Identifier is the identifier as it appeared in the input
	Identifier string `json:"identifier" yaml:"identifier"`
	// Line is the 1-based position of the identifier in the input (0 if unknown)
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Expected is the canonical name of the required style
	Expected string `json:"expected" yaml:"expected"`
	// Detected lists the canonical names of the styles the identifier matches
	Detected []string `json:"detected,omitempty" yaml:"detected,omitempty"`
	// Suggestion is the identifier converted to the required style (optional)
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// String returns a formatted string representation of the issue:
//
//	✗ 3: fooBar: written in camelCase, expected snake_case (suggest: foo_bar)
func (i Issue) String() string {
	var b strings.Builder
	b.WriteString(i.Severity.Symbol())
	b.WriteByte(' ')
	if i.HasLocation() {
		fmt.Fprintf(&b, "%s: ", i.Location())
	}
	fmt.Fprintf(&b, "%s: %s", i.Identifier, i.Message)
	if i.Suggestion != "" && i.Suggestion != i.Identifier {
		fmt.Fprintf(&b, " (suggest: %s)", i.Suggestion)
	}
	return b.String()
}

// Location returns the line of the identifier as printed in text output,
// or "" when the line is unknown.
func (i Issue) Location() string {
	if !i.HasLocation() {
		return ""
	}
	return strconv.Itoa(i.Line)
}

// HasLocation returns true if this issue has position information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}
