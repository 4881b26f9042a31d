// Package casing identifies the naming style of programming identifiers and
// converts identifiers between styles.
//
// # Overview
//
// Every operation is built on two inverse functions:
//
//   - Tokenize splits an identifier into lowercase words, whatever style it
//     is written in.
//   - Compose joins words into an identifier of a given Style.
//
// Detect, IsStyle and Convert are defined in terms of those two:
//
//	Convert(s, t)     == Compose(Tokenize(s), t)
//	Detect(s)         == { st | Compose(Tokenize(s), st) == s }
//	IsStyle(s, st)    == Detect(s).Contains(st)
//
// # Styles
//
// The set of styles is closed:
//
//	CamelCase           fooBarBaz
//	PascalCase          FooBarBaz
//	SnakeCase           foo_bar_baz
//	ScreamingSnakeCase  FOO_BAR_BAZ
//	KebabCase           foo-bar-baz
//	TrainCase           Foo-Bar-Baz
//	FlatCase            foobarbaz
//	UpperFlatCase       FOOBARBAZ
//
// Use ParseStyle to resolve a style from a user-supplied name.
//
// # Word boundaries
//
// Tokenize places a boundary
//
//   - at every separator ('_', '-', ' '), which is dropped;
//   - before an uppercase letter that follows a lowercase letter or a digit;
//   - between a letter and a digit, in either direction;
//   - before the last letter of an uppercase run that is followed by a
//     lowercase letter, so "HTTPServer" yields "http", "server".
//
// An uppercase run with no lowercase letter after it is one word:
// "ABC" is ["abc"], never ["a", "b", "c"].
//
// # Ambiguity
//
// Detect reports every matching style. A single lowercase word matches
// camelCase, snake_case, kebab-case and flatcase at the same time, and the
// caller decides what that means. The empty string matches no style.
//
// Separator-free capitalized styles cannot represent adjacent single-letter
// words: Convert("a_b", PascalCase) is "AB", which tokenizes back to the
// single word "ab".
//
// # Concurrency
//
// All functions are pure and safe for concurrent use.
//
// # Example
//
//	casing.Convert("HTTPServerError", casing.SnakeCase) // "http_server_error"
//	casing.Detect("foo_bar")                            // {snake_case}
//	casing.IsStyle("fooBar", casing.CamelCase)          // true
package casing
