package checker

import (
	"io"

	"github.com/erraggy/namecase/caseerrors"
	"github.com/erraggy/namecase/casing"
	"github.com/erraggy/namecase/internal/options"
)

// Option is a function that configures a check operation
type Option func(*checkConfig) error

// checkConfig holds configuration for a check operation
type checkConfig struct {
	// Input source (exactly one must be set)
	identifiers []string
	hasIDs      bool
	reader      io.Reader

	style *casing.Style

	// Configuration options
	strictMode         bool
	includeWarnings    bool
	includeSuggestions bool
	includeInfo        bool
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*checkConfig, error) {
	cfg := &checkConfig{
		includeWarnings:    true,
		includeSuggestions: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"input source",
		"use WithIdentifiers or WithReader",
		cfg.hasIDs, cfg.reader != nil,
	); err != nil {
		return nil, err
	}

	if cfg.style == nil {
		return nil, &caseerrors.ConfigError{
			Option:  "style",
			Message: "must specify a style (use WithStyle or WithStyleName)",
		}
	}

	return cfg, nil
}

// WithIdentifiers specifies the identifiers to check as the input source
func WithIdentifiers(identifiers []string) Option {
	return func(cfg *checkConfig) error {
		cfg.identifiers = identifiers
		cfg.hasIDs = true
		return nil
	}
}

// WithReader specifies a reader yielding one identifier per line as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *checkConfig) error {
		if r == nil {
			return &caseerrors.ConfigError{Option: "reader", Message: "reader must not be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithStyle sets the required style
func WithStyle(style casing.Style) Option {
	return func(cfg *checkConfig) error {
		if !style.IsValid() {
			return &caseerrors.ConfigError{Option: "style", Value: style.String(), Message: "style out of range"}
		}
		cfg.style = &style
		return nil
	}
}

// WithStyleName sets the required style by name (see casing.ParseStyle)
func WithStyleName(name string) Option {
	return func(cfg *checkConfig) error {
		style, err := casing.ParseStyle(name)
		if err != nil {
			return &caseerrors.ConfigError{Option: "style", Value: name, Cause: err}
		}
		cfg.style = &style
		return nil
	}
}

// WithStrictMode reports identifiers in no recognized style as errors
func WithStrictMode(enabled bool) Option {
	return func(cfg *checkConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeWarnings enables or disables warnings
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *checkConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithIncludeSuggestions enables or disables converted-name suggestions
func WithIncludeSuggestions(enabled bool) Option {
	return func(cfg *checkConfig) error {
		cfg.includeSuggestions = enabled
		return nil
	}
}

// WithIncludeInfo enables notes for conforming identifiers that match other styles too
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *checkConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}
