// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/namecase/caseerrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// option names the input in the returned error (e.g. "input source"),
// hint suggests the options that set one, and sources reports for each
// candidate source whether it is set.
func ValidateSingleInputSource(option, hint string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &caseerrors.ConfigError{Option: option, Message: "must specify an input source (" + hint + ")"}
	case sourceCount > 1:
		return &caseerrors.ConfigError{Option: option, Value: sourceCount, Message: "must specify exactly one input source"}
	}
	return nil
}
