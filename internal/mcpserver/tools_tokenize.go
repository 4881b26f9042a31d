package mcpserver

import (
	"context"

	"github.com/erraggy/namecase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type tokenizeInput struct {
	Identifiers []string `json:"identifiers" jsonschema:"Identifiers to split into words"`
}

type tokenizeResult struct {
	Identifier string   `json:"identifier"`
	Words      []string `json:"words"`
}

type tokenizeOutput struct {
	Results []tokenizeResult `json:"results"`
}

func handleTokenize(_ context.Context, _ *mcp.CallToolRequest, input tokenizeInput) (*mcp.CallToolResult, tokenizeOutput, error) {
	if err := validateIdentifiers(input.Identifiers); err != nil {
		return errResult(err), tokenizeOutput{}, nil
	}

	output := tokenizeOutput{Results: make([]tokenizeResult, 0, len(input.Identifiers))}
	for _, id := range input.Identifiers {
		words := casing.Tokenize(id)
		if words == nil {
			words = []string{}
		}
		output.Results = append(output.Results, tokenizeResult{Identifier: id, Words: words})
	}
	return nil, output, nil
}
