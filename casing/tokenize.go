package casing

import "unicode"

// runeClass is the lexical category of a rune inside an identifier.
type runeClass uint8

const (
	classNone runeClass = iota
	classSeparator
	classLower
	classUpper
	classDigit
	classOther
)

func classify(r rune) runeClass {
	switch {
	case isSeparator(r):
		return classSeparator
	case unicode.IsLower(r):
		return classLower
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsDigit(r):
		return classDigit
	default:
		return classOther
	}
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

func isLetter(c runeClass) bool {
	return c == classLower || c == classUpper
}

// startsWord reports whether a rune of class cur begins a new word when it
// follows a rune of class prev inside the same run.
func startsWord(prev, cur runeClass) bool {
	switch {
	case cur == classUpper && (prev == classLower || prev == classDigit):
		// fooBar, v2Beta
		return true
	case cur == classDigit && isLetter(prev):
		// v2, HTTP2
		return true
	case isLetter(cur) && prev == classDigit:
		// 2fa
		return true
	default:
		return false
	}
}

// Tokenize splits an identifier into its words, independent of the style it
// is written in. Words are returned in order and in lowercase.
//
// Boundaries are placed at separators ('_', '-', ' '), at lowercase or digit
// to uppercase transitions, between letters and digits in either direction,
// and before the last letter of an uppercase run that is followed by a
// lowercase letter (HTTPServer -> http, server). An uppercase run that is not
// followed by a lowercase letter stays a single word (parseURL -> parse, url;
// ABC -> abc). Runes that are neither letters, digits nor separators are kept
// inside the current word without creating a boundary.
//
// Tokenize never fails; an input without letters or digits yields no words.
func Tokenize(identifier string) []string {
	var (
		words []string
		word  []rune
		// classes of the last two runes of word; classNone when absent
		prev, prev2 runeClass
	)

	for _, r := range identifier {
		cur := classify(r)
		if cur == classSeparator {
			if len(word) > 0 {
				words = append(words, string(word))
				word = word[:0]
			}
			prev, prev2 = classNone, classNone
			continue
		}

		if len(word) > 0 {
			switch {
			case startsWord(prev, cur):
				words = append(words, string(word))
				word = word[:0]
				prev, prev2 = classNone, classNone
			case cur == classLower && prev == classUpper && prev2 == classUpper:
				// The last letter of the acronym opens the next word.
				last := word[len(word)-1]
				words = append(words, string(word[:len(word)-1]))
				word = append(word[:0], last)
				prev2 = classNone
			}
		}

		word = append(word, unicode.ToLower(r))
		prev2, prev = prev, cur
	}

	if len(word) > 0 {
		words = append(words, string(word))
	}
	return words
}
