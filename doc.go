// Package namecase provides tools for detecting and converting the naming
// style of identifiers.
//
// # Overview
//
// The library consists of three packages:
//
//   - casing: Split identifiers into words, detect their styles, and convert between styles
//   - checker: Check a list of identifiers against a required style
//   - caseerrors: Structured error types shared by the other packages
//
// Supported styles:
//
//	camelCase  PascalCase  snake_case  SCREAMING_SNAKE_CASE
//	kebab-case  Train-Case  flatcase    UPPERFLATCASE
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/namecase
//
// Install the command-line tool:
//
//	go install github.com/erraggy/namecase/cmd/namecase@latest
//
// # Quick Start
//
// Convert an identifier:
//
//	import "github.com/erraggy/namecase/casing"
//
//	fmt.Println(casing.Convert("HTTPServerError", casing.SnakeCase)) // http_server_error
//
// Detect the styles an identifier is written in:
//
//	fmt.Println(casing.Detect("foo_bar")) // {snake_case}
//
// Check identifiers against a style:
//
//	import "github.com/erraggy/namecase/checker"
//
//	result, err := checker.CheckWithOptions(
//		checker.WithIdentifiers([]string{"user_id", "userName"}),
//		checker.WithStyle(casing.SnakeCase),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range result.Errors {
//		fmt.Println(issue)
//	}
//
// # Command-Line Tool
//
// The namecase command exposes the same operations:
//
//	namecase convert -t kebab fooBarBaz
//	namecase check -s snake - < identifiers.txt
//	namecase mcp
//
// The mcp subcommand serves the operations as Model Context Protocol tools over stdio.
//
// # Build Details
//
// Version, Commit, BuildTime, GoVersion and BuildInfo report how the binary
// was built. Release builds set them via ldflags.
package namecase
