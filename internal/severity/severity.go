// Package severity provides severity level constants for issues reported by
// the checker package.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

// Severity indicates how serious a reported issue is.
type Severity int

const (
	// SeverityInfo indicates an informational note, such as an identifier
	// that matches the required style among several others.
	SeverityInfo Severity = iota

	// SeverityWarning indicates an identifier that could not be classified
	// in any style. Promoted to SeverityError in strict mode.
	SeverityWarning

	// SeverityError indicates an identifier written in a style other than
	// the required one.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Symbol returns the marker printed in front of an issue of this severity.
func (s Severity) Symbol() string {
	switch s {
	case SeverityError:
		return "✗"
	case SeverityWarning:
		return "⚠"
	case SeverityInfo:
		return "ℹ"
	default:
		return "?"
	}
}

// MarshalText implements encoding.TextMarshaler so severities serialize by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
