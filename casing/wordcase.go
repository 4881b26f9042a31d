package casing

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordCaser applies WordCase rules to single words.
// cases.Caser values are stateful, so a wordCaser must not be shared
// between goroutines; every Compose call builds its own.
type wordCaser struct {
	lower cases.Caser
	upper cases.Caser
	title cases.Caser
}

func newWordCaser() *wordCaser {
	return &wordCaser{
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
		title: cases.Title(language.Und),
	}
}

// apply renders word with the given capitalization.
func (c *wordCaser) apply(word string, wc WordCase) string {
	if word == "" {
		return ""
	}
	switch wc {
	case Upper:
		return c.upper.String(word)
	case Capitalized:
		return c.capitalize(word)
	default:
		return c.lower.String(word)
	}
}

// capitalize title-cases the first rune and lower-cases the remainder.
// The title mapping keeps "ß" readable as one word ("Ss", not "SS").
// Digit-only words are returned unchanged.
func (c *wordCaser) capitalize(word string) string {
	_, size := utf8.DecodeRuneInString(word)
	var b strings.Builder
	b.Grow(len(word) + 1)
	b.WriteString(c.title.String(word[:size]))
	b.WriteString(c.lower.String(word[size:]))
	return b.String()
}
