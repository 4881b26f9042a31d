package checker

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/namecase/caseerrors"
	"github.com/erraggy/namecase/casing"
	"github.com/erraggy/namecase/internal/issues"
	"github.com/erraggy/namecase/internal/severity"
)

// Severity indicates the severity level of a conformance issue
type Severity = severity.Severity

const (
	// SeverityError indicates an identifier written in another style
	SeverityError = severity.SeverityError
	// SeverityWarning indicates an identifier in no recognized style
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational notes about ambiguous matches
	SeverityInfo = severity.SeverityInfo
)

const (
	// defaultIssueCapacity is the initial capacity for issue slices
	defaultIssueCapacity = 10

	// commentPrefix marks lines that are skipped when reading identifiers
	commentPrefix = "#"
)

// Issue represents a single conformance problem
type Issue = issues.Issue

// Result contains the results of checking identifiers against a style
type Result struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool `json:"valid" yaml:"valid"`
	// Style is the style identifiers were checked against
	Style casing.Style `json:"style" yaml:"style"`
	// Checked is the number of identifiers examined
	Checked int `json:"checked" yaml:"checked"`
	// Conforming is the number of identifiers written in Style
	Conforming int `json:"conforming" yaml:"conforming"`
	// Errors contains identifiers written in another style
	Errors []Issue `json:"errors,omitempty" yaml:"errors,omitempty"`
	// Warnings contains identifiers in no recognized style
	Warnings []Issue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	// Infos contains notes about conforming identifiers that match other styles too
	Infos []Issue `json:"infos,omitempty" yaml:"infos,omitempty"`
	// ErrorCount is the total number of errors
	ErrorCount int `json:"error_count" yaml:"error_count"`
	// WarningCount is the total number of warnings
	WarningCount int `json:"warning_count" yaml:"warning_count"`
}

// Err returns a *caseerrors.ConformanceError listing the identifiers reported
// as errors, or nil when the result is valid.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	ids := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		ids[i] = e.Identifier
	}
	return &caseerrors.ConformanceError{Style: r.Style.String(), Identifiers: ids}
}

// Checker checks identifiers against a required naming style
type Checker struct {
	// Style is the required style
	Style casing.Style
	// StrictMode reports identifiers in no recognized style as errors
	// instead of warnings
	StrictMode bool
	// IncludeWarnings determines whether warnings are reported
	IncludeWarnings bool
	// IncludeSuggestions fills Issue.Suggestion with the identifier
	// converted to Style
	IncludeSuggestions bool
	// IncludeInfo reports conforming identifiers that also match other styles
	IncludeInfo bool
}

// New creates a new Checker for style with default settings
func New(style casing.Style) *Checker {
	return &Checker{
		Style:              style,
		IncludeWarnings:    true,
		IncludeSuggestions: true,
	}
}

// CheckWithOptions checks identifiers using functional options.
// Exactly one input source (WithIdentifiers or WithReader) and a style
// (WithStyle or WithStyleName) are required.
//
// Example:
//
//	result, err := checker.CheckWithOptions(
//	    checker.WithIdentifiers([]string{"fooBar", "foo_bar"}),
//	    checker.WithStyle(casing.SnakeCase),
//	)
func CheckWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("checker: invalid options: %w", err)
	}

	c := &Checker{
		Style:              *cfg.style,
		StrictMode:         cfg.strictMode,
		IncludeWarnings:    cfg.includeWarnings,
		IncludeSuggestions: cfg.includeSuggestions,
		IncludeInfo:        cfg.includeInfo,
	}

	if cfg.reader != nil {
		return c.CheckReader(cfg.reader)
	}
	return c.Check(cfg.identifiers)
}

// Check checks every identifier in order. Issue lines are 1-based indexes
// into identifiers.
func (c *Checker) Check(identifiers []string) (*Result, error) {
	result, err := c.newResult()
	if err != nil {
		return nil, err
	}
	for i, id := range identifiers {
		c.checkOne(result, id, i+1)
	}
	c.finish(result)
	return result, nil
}

// CheckReader checks identifiers read from r, one per line. Surrounding
// whitespace is trimmed; blank lines and lines starting with '#' are skipped.
// Issue lines are physical line numbers in r.
func (c *Checker) CheckReader(r io.Reader) (*Result, error) {
	result, err := c.newResult()
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		id := strings.TrimSpace(scanner.Text())
		if id == "" || strings.HasPrefix(id, commentPrefix) {
			continue
		}
		c.checkOne(result, id, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("checker: reading identifiers: %w", err)
	}

	c.finish(result)
	return result, nil
}

func (c *Checker) newResult() (*Result, error) {
	if !c.Style.IsValid() {
		return nil, &caseerrors.ConfigError{
			Option:  "style",
			Value:   c.Style.String(),
			Message: "style out of range",
		}
	}
	return &Result{
		Style:    c.Style,
		Errors:   make([]Issue, 0, defaultIssueCapacity),
		Warnings: make([]Issue, 0, defaultIssueCapacity),
	}, nil
}

func (c *Checker) checkOne(result *Result, identifier string, line int) {
	result.Checked++
	detected := casing.Detect(identifier)

	switch {
	case detected.Contains(c.Style):
		result.Conforming++
		if c.IncludeInfo && detected.Len() > 1 {
			c.addIssue(result, SeverityInfo, identifier, line, detected,
				"ambiguous, also matches "+strings.Join(otherNames(detected, c.Style), ", "))
		}

	case detected.IsEmpty():
		sev := SeverityWarning
		if c.StrictMode {
			sev = SeverityError
		}
		c.addIssue(result, sev, identifier, line, detected,
			fmt.Sprintf("no recognized style, expected %s", c.Style))

	default:
		c.addIssue(result, SeverityError, identifier, line, detected,
			fmt.Sprintf("written in %s, expected %s", strings.Join(detected.Names(), " or "), c.Style))
	}
}

// addIssue appends an issue to the slice matching its severity.
// Warnings are dropped unless IncludeWarnings is set.
func (c *Checker) addIssue(result *Result, sev Severity, identifier string, line int, detected casing.StyleSet, message string) {
	issue := Issue{
		Identifier: identifier,
		Line:       line,
		Message:    message,
		Severity:   sev,
		Expected:   c.Style.String(),
		Detected:   detected.Names(),
	}
	if c.IncludeSuggestions && sev != SeverityInfo {
		issue.Suggestion = casing.Convert(identifier, c.Style)
	}

	switch sev {
	case SeverityError:
		result.Errors = append(result.Errors, issue)
	case SeverityWarning:
		if c.IncludeWarnings {
			result.Warnings = append(result.Warnings, issue)
		}
	default:
		result.Infos = append(result.Infos, issue)
	}
}

// otherNames returns the names of the styles in set other than s.
func otherNames(set casing.StyleSet, s casing.Style) []string {
	names := make([]string, 0, set.Len())
	for _, other := range set.Styles() {
		if other != s {
			names = append(names, other.String())
		}
	}
	return names
}

func (c *Checker) finish(result *Result) {
	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0
}
