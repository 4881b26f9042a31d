package casing

import "strings"

// Compose renders words as an identifier in the given style.
//
// The word at position 0 takes the style's first-word capitalization when the
// style defines one (camelCase); every other word takes the style's regular
// capitalization. Words are joined with the style's separator. Words are used
// as given, so an empty word still contributes its separators.
//
// An empty word sequence, or a style outside the closed set, yields "".
func Compose(words []string, style Style) string {
	if len(words) == 0 || !style.IsValid() {
		return ""
	}
	return compose(newWordCaser(), words, registry[style].rule)
}

func compose(c *wordCaser, words []string, rule Rule) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString(rule.Separator)
		}
		b.WriteString(c.apply(w, rule.caseFor(i)))
	}
	return b.String()
}
