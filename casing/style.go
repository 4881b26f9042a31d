package casing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/namecase/caseerrors"
)

// Style identifies a naming convention for identifiers.
// The set of styles is closed; see Styles for the full list.
type Style uint8

const (
	// CamelCase joins words without a separator, the first word lowercase and
	// every following word capitalized.
	// Example: fooBarBaz
	CamelCase Style = iota

	// PascalCase joins capitalized words without a separator.
	// Example: FooBarBaz
	PascalCase

	// SnakeCase joins lowercase words with underscores.
	// Example: foo_bar_baz
	SnakeCase

	// ScreamingSnakeCase joins uppercase words with underscores.
	// Example: FOO_BAR_BAZ
	ScreamingSnakeCase

	// KebabCase joins lowercase words with hyphens.
	// Example: foo-bar-baz
	KebabCase

	// TrainCase joins capitalized words with hyphens.
	// Example: Foo-Bar-Baz
	TrainCase

	// FlatCase joins lowercase words without a separator.
	// Example: foobarbaz
	FlatCase

	// UpperFlatCase joins uppercase words without a separator.
	// Example: FOOBARBAZ
	UpperFlatCase

	styleCount int = iota
)

// WordCase is the capitalization applied to a single word.
type WordCase uint8

const (
	// Lower renders every letter of the word in lowercase: "word".
	Lower WordCase = iota
	// Capitalized renders the first letter uppercase, the rest lowercase: "Word".
	Capitalized
	// Upper renders every letter of the word in uppercase: "WORD".
	Upper
)

// String returns the name of the word case.
func (c WordCase) String() string {
	switch c {
	case Lower:
		return "lower"
	case Capitalized:
		return "capitalized"
	case Upper:
		return "upper"
	default:
		return "unknown"
	}
}

// Rule describes how a Style composes words into an identifier.
type Rule struct {
	// Separator is placed between adjacent words ("" for none).
	Separator string
	// Case is applied to every word.
	Case WordCase
	// FirstWordCase overrides Case for the first word when HasFirstWordRule is set.
	FirstWordCase WordCase
	// HasFirstWordRule reports whether the first word follows FirstWordCase.
	HasFirstWordRule bool
}

// caseFor returns the capitalization for the word at position i.
func (r Rule) caseFor(i int) WordCase {
	if i == 0 && r.HasFirstWordRule {
		return r.FirstWordCase
	}
	return r.Case
}

type styleDef struct {
	name    string
	goName  string
	aliases []string
	rule    Rule
}

// registry is indexed by Style and never modified after initialization.
var registry = [styleCount]styleDef{
	CamelCase: {
		name:    "camelCase",
		goName:  "CamelCase",
		aliases: []string{"camel", "lowercamel"},
		rule:    Rule{Case: Capitalized, FirstWordCase: Lower, HasFirstWordRule: true},
	},
	PascalCase: {
		name:    "PascalCase",
		goName:  "PascalCase",
		aliases: []string{"pascal", "uppercamel"},
		rule:    Rule{Case: Capitalized},
	},
	SnakeCase: {
		name:    "snake_case",
		goName:  "SnakeCase",
		aliases: []string{"snake"},
		rule:    Rule{Separator: "_", Case: Lower},
	},
	ScreamingSnakeCase: {
		name:    "SCREAMING_SNAKE_CASE",
		goName:  "ScreamingSnakeCase",
		aliases: []string{"screamingsnake", "uppersnake", "constant", "constantcase"},
		rule:    Rule{Separator: "_", Case: Upper},
	},
	KebabCase: {
		name:    "kebab-case",
		goName:  "KebabCase",
		aliases: []string{"kebab", "dash", "dashcase"},
		rule:    Rule{Separator: "-", Case: Lower},
	},
	TrainCase: {
		name:    "Train-Case",
		goName:  "TrainCase",
		aliases: []string{"train", "httpheader", "headercase"},
		rule:    Rule{Separator: "-", Case: Capitalized},
	},
	FlatCase: {
		name:    "flatcase",
		goName:  "FlatCase",
		aliases: []string{"flat", "lower", "lowercase"},
		rule:    Rule{Case: Lower},
	},
	UpperFlatCase: {
		name:    "UPPERFLATCASE",
		goName:  "UpperFlatCase",
		aliases: []string{"upperflat", "upper", "uppercase"},
		rule:    Rule{Case: Upper},
	},
}

// styleIndex maps normalized names and aliases to styles.
var styleIndex = buildStyleIndex()

func buildStyleIndex() map[string]Style {
	idx := make(map[string]Style, styleCount*4)
	for i := range registry {
		s := Style(i)
		def := registry[i]
		idx[normalizeStyleName(def.name)] = s
		idx[normalizeStyleName(def.goName)] = s
		for _, alias := range def.aliases {
			idx[normalizeStyleName(alias)] = s
		}
	}
	return idx
}

// Styles returns every supported style in declaration order.
// The returned slice is a fresh copy and may be modified by the caller.
func Styles() []Style {
	styles := make([]Style, styleCount)
	for i := range styles {
		styles[i] = Style(i)
	}
	return styles
}

// IsValid reports whether s is a member of the closed set of styles.
func (s Style) IsValid() bool {
	return int(s) < styleCount
}

// String returns the canonical name of the style, which is itself written
// in that style (e.g. "snake_case").
func (s Style) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
	return registry[s].name
}

// GoName returns the Go constant name of the style (e.g. "SnakeCase").
func (s Style) GoName() string {
	if !s.IsValid() {
		return s.String()
	}
	return registry[s].goName
}

// Aliases returns the additional names ParseStyle accepts for the style.
func (s Style) Aliases() []string {
	if !s.IsValid() {
		return nil
	}
	return slices.Clone(registry[s].aliases)
}

// Rule returns the composition rule of the style.
// The zero Rule is returned for styles outside the closed set.
func (s Style) Rule() Rule {
	if !s.IsValid() {
		return Rule{}
	}
	return registry[s].rule
}

// Example returns a two-word sample identifier rendered in the style.
func (s Style) Example() string {
	return Compose([]string{"example", "name"}, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, &caseerrors.StyleError{Name: s.String(), Message: "style out of range"}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStyle resolves a style from its canonical name ("snake_case"), its Go
// constant name ("SnakeCase") or a short alias ("snake", "constant", "train").
// Matching ignores letter case and the separators '_', '-' and ' '.
func ParseStyle(name string) (Style, error) {
	key := normalizeStyleName(name)
	if key != "" {
		if s, ok := styleIndex[key]; ok {
			return s, nil
		}
	}
	return 0, &caseerrors.StyleError{Name: name, Known: styleNames()}
}

// MustParseStyle is like ParseStyle but panics on unknown names.
// It is intended for package-level variables and tests.
func MustParseStyle(name string) Style {
	s, err := ParseStyle(name)
	if err != nil {
		panic(err)
	}
	return s
}

func normalizeStyleName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if isSeparator(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func styleNames() []string {
	names := make([]string, styleCount)
	for i := range registry {
		names[i] = registry[i].name
	}
	return names
}
