package casing

// Convert rewrites an identifier in the target style.
// It is equivalent to Compose(Tokenize(identifier), target).
//
// Example: Convert("HTTPServerError", SnakeCase) -> "http_server_error"
func Convert(identifier string, target Style) string {
	return Compose(Tokenize(identifier), target)
}

// StripHungarian removes the type prefix of a Hungarian-notation identifier
// and returns the remaining words, which are already in PascalCase.
//
// The identifier must have the camelCase shape [a-z]+[0-9]*([A-Z][a-z]*[0-9]*)+
// over ASCII letters and digits. The type prefix is the leading lowercase
// word together with any digits that follow it.
//
// Example: StripHungarian("iPageSize") -> "PageSize", true
// Example: StripHungarian("i32Count") -> "Count", true
//
// Identifiers in any other form, including PascalCase ones such as
// "NotACamelCase", report false.
func StripHungarian(identifier string) (string, bool) {
	prefix := hungarianPrefixLen(identifier)
	if prefix == 0 || prefix == len(identifier) {
		return "", false
	}
	rest := identifier[prefix:]
	if !isPascalHumps(rest) {
		return "", false
	}
	return rest, true
}

// hungarianPrefixLen returns the byte length of the leading [a-z]+[0-9]* run,
// or 0 when identifier does not start with a lowercase letter.
func hungarianPrefixLen(identifier string) int {
	i := 0
	for i < len(identifier) && isASCIILower(identifier[i]) {
		i++
	}
	if i == 0 {
		return 0
	}
	for i < len(identifier) && isASCIIDigit(identifier[i]) {
		i++
	}
	return i
}

// isPascalHumps reports whether s matches ([A-Z][a-z]*[0-9]*)+.
func isPascalHumps(s string) bool {
	if s == "" || !isASCIIUpper(s[0]) {
		return false
	}
	afterDigit := false
	for i := 1; i < len(s); i++ {
		switch b := s[i]; {
		case isASCIIUpper(b):
			afterDigit = false
		case isASCIILower(b):
			if afterDigit {
				return false
			}
		case isASCIIDigit(b):
			afterDigit = true
		default:
			return false
		}
	}
	return true
}

func isASCIILower(b byte) bool { return 'a' <= b && b <= 'z' }
func isASCIIUpper(b byte) bool { return 'A' <= b && b <= 'Z' }
func isASCIIDigit(b byte) bool { return '0' <= b && b <= '9' }
