// Package caseerrors provides structured error types for namecase.
//
// The casing core never fails; errors only appear at the edges, when a style
// name cannot be resolved, when options are invalid, or when a conformance
// check finds identifiers written in the wrong style.
//
// # Error Categories
//
//   - StyleError: an unknown or out-of-range style name
//   - ConfigError: invalid options or input
//   - ConformanceError: identifiers that do not follow the required style
//
// # Usage with errors.Is
//
//	style, err := casing.ParseStyle(name)
//	if errors.Is(err, caseerrors.ErrUnknownStyle) {
//	    // report the list of known styles
//	}
//
// # Usage with errors.As
//
//	if err := result.Err(); err != nil {
//	    var confErr *caseerrors.ConformanceError
//	    if errors.As(err, &confErr) {
//	        fmt.Println(confErr.Identifiers)
//	    }
//	}
package caseerrors
