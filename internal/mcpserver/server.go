// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes namecase capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"sort"

	"github.com/erraggy/namecase"
	"github.com/erraggy/namecase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `namecase MCP server: splits identifiers into words, detects their naming style, converts between styles, and checks identifiers against a required style.

Styles: camelCase, PascalCase, snake_case, SCREAMING_SNAKE_CASE, kebab-case, Train-Case, flatcase, UPPERFLATCASE. Style arguments accept canonical names, Go names (SnakeCase) and aliases (snake, constant, headercase); call the styles tool for the full list.

Configuration: All defaults are configurable via NAMECASE_* environment variables set in your MCP client config.

Key settings:
- NAMECASE_DEFAULT_STYLE (default: none) - style used by convert and check when the call names none
- NAMECASE_MAX_IDENTIFIERS (default: 1000) - identifiers accepted per call
- NAMECASE_CHECK_STRICT (default: false) - report identifiers in no recognized style as errors
- NAMECASE_CHECK_LIMIT (default: 100) - default number of issues returned by check
- NAMECASE_MAX_LIMIT (default: 1000) - upper bound for any limit argument`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "namecase", Version: namecase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Split identifiers into lowercase words. Boundaries are separators (_ - space), lower-to-upper transitions, acronym ends (HTTPServer -> http, server) and letter/digit transitions. Words are returned in order; an identifier made only of separators yields no words.",
	}, handleTokenize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Detect every naming style each identifier is already written in. An identifier may match several styles (\"foo\" is camelCase, snake_case, kebab-case and flatcase) or none (\"foo_Bar-baz\"). style_counts summarizes how many identifiers match each style, most common first.",
	}, handleDetect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert identifiers to a target naming style. Acronyms are normalized (HTTPServer -> http_server in snake_case). If target is omitted, NAMECASE_DEFAULT_STYLE is used. Use strip_hungarian to drop a leading type prefix (iPageSize -> PageSize) from camelCase identifiers before converting.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Check identifiers against a required naming style and report the ones that do not conform, with the styles they were detected as and a converted suggestion. Identifiers in no recognized style are warnings unless strict is set. Use offset/limit to paginate through issues. Defaults are configurable via NAMECASE_DEFAULT_STYLE, NAMECASE_CHECK_STRICT and NAMECASE_CHECK_LIMIT.",
	}, handleCheck)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "styles",
		Description: "List the supported naming styles with their Go names, accepted aliases, separator, word case and an example identifier.",
	}, handleStyles)
}

// resolveStyle parses a style argument, falling back to cfg.DefaultStyle
// when name is empty.
func resolveStyle(name string) (casing.Style, error) {
	if name == "" {
		if cfg.HasDefaultStyle {
			return cfg.DefaultStyle, nil
		}
		return 0, fmt.Errorf("style is required (or set NAMECASE_DEFAULT_STYLE)")
	}
	return casing.ParseStyle(name)
}

// validateIdentifiers checks the identifier count against cfg.MaxIdentifiers.
func validateIdentifiers(ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("at least one identifier is required")
	}
	if len(ids) > cfg.MaxIdentifiers {
		return fmt.Errorf("too many identifiers: %d exceeds the limit of %d (NAMECASE_MAX_IDENTIFIERS)", len(ids), cfg.MaxIdentifiers)
	}
	return nil
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.CheckLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.CheckLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// groupCount represents a single group in grouped results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) []string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, key := range keyFn(item) {
			counts[key]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}
