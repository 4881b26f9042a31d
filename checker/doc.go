// Package checker checks that identifiers follow a required naming style.
//
// It is the building block for linters: feed it identifiers, either as a
// slice or as a reader with one identifier per line, and it reports every
// identifier that is not written in the required style together with the
// styles it was detected in and a suggested replacement.
//
// # Issue Levels
//
//   - SeverityError: the identifier is written in another style
//   - SeverityWarning: the identifier matches no recognized style
//     (e.g. "foo_Bar-baz"); promoted to an error in strict mode
//   - SeverityInfo: the identifier conforms but also matches other styles
//     (e.g. "foo" is both snake_case and camelCase); only with IncludeInfo
//
// # Usage
//
//	c := checker.New(casing.SnakeCase)
//	result, err := c.Check([]string{"user_id", "userName"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, issue := range result.Errors {
//	    fmt.Println(issue)
//	}
//
// Or with functional options:
//
//	result, err := checker.CheckWithOptions(
//	    checker.WithReader(os.Stdin),
//	    checker.WithStyleName("kebab"),
//	    checker.WithStrictMode(true),
//	)
//
// # Options
//
//	| Option                 | Default | Effect                                              |
//	|------------------------|---------|-----------------------------------------------------|
//	| WithIdentifiers        |         | check a slice of identifiers (input source)         |
//	| WithReader             |         | check one identifier per line from a reader         |
//	| WithStyle              |         | required style                                      |
//	| WithStyleName          |         | required style by name or alias                     |
//	| WithStrictMode         | false   | unrecognized identifiers are errors                 |
//	| WithIncludeWarnings    | true    | report unrecognized identifiers as warnings         |
//	| WithIncludeSuggestions | true    | fill Issue.Suggestion with the converted identifier |
//	| WithIncludeInfo        | false   | report conforming identifiers matching other styles |
//
// Result.Err converts an invalid result into a *caseerrors.ConformanceError.
package checker
