package casing

import "strings"

// StyleSet is a set of styles. The zero value is the empty set.
type StyleSet uint16

// NewStyleSet returns a set holding the given styles.
// Styles outside the closed set are ignored.
func NewStyleSet(styles ...Style) StyleSet {
	var set StyleSet
	for _, s := range styles {
		set = set.With(s)
	}
	return set
}

// AllStyles returns the set of every supported style.
func AllStyles() StyleSet {
	return StyleSet(1<<styleCount - 1)
}

// With returns a copy of the set with s added.
func (set StyleSet) With(s Style) StyleSet {
	if !s.IsValid() {
		return set
	}
	return set | 1<<s
}

// Contains reports whether s is in the set.
func (set StyleSet) Contains(s Style) bool {
	return s.IsValid() && set&(1<<s) != 0
}

// Len returns the number of styles in the set.
func (set StyleSet) Len() int {
	n := 0
	for i := range styleCount {
		if set&(1<<i) != 0 {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the set holds no style.
// For a Detect result this means the identifier is in no recognized style.
func (set StyleSet) IsEmpty() bool {
	return set&AllStyles() == 0
}

// Styles returns the members of the set in declaration order.
func (set StyleSet) Styles() []Style {
	styles := make([]Style, 0, set.Len())
	for i := range styleCount {
		if set&(1<<i) != 0 {
			styles = append(styles, Style(i))
		}
	}
	return styles
}

// Names returns the canonical names of the members in declaration order.
func (set StyleSet) Names() []string {
	styles := set.Styles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.String()
	}
	return names
}

// String formats the set as "{camelCase, flatcase}".
func (set StyleSet) String() string {
	return "{" + strings.Join(set.Names(), ", ") + "}"
}

// Detect returns every style the identifier conforms to. An identifier
// conforms to a style when tokenizing it and composing the words in that
// style reproduces the identifier exactly.
//
// More than one style may match: a single lowercase word such as "foo" is
// valid camelCase, snake_case, kebab-case and flatcase at once. Detect never
// picks a winner. An empty result means the identifier is in no recognized
// style (e.g. "foo_Bar-baz").
//
// The empty string conforms to no style: Detect("") is the empty set.
func Detect(identifier string) StyleSet {
	words := Tokenize(identifier)
	if len(words) == 0 {
		return 0
	}

	c := newWordCaser()
	var set StyleSet
	for i := range registry {
		if compose(c, words, registry[i].rule) == identifier {
			set = set.With(Style(i))
		}
	}
	return set
}

// IsStyle reports whether the identifier conforms to style.
// It is equivalent to Detect(identifier).Contains(style).
func IsStyle(identifier string, style Style) bool {
	return Detect(identifier).Contains(style)
}
