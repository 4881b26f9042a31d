package mcpserver

import (
	"context"

	"github.com/erraggy/namecase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type detectInput struct {
	Identifiers []string `json:"identifiers" jsonschema:"Identifiers whose naming style should be detected"`
}

type detectResult struct {
	Identifier string   `json:"identifier"`
	Styles     []string `json:"styles"`
}

type detectOutput struct {
	Results      []detectResult `json:"results"`
	StyleCounts  []groupCount   `json:"style_counts,omitempty"`
	Unrecognized int            `json:"unrecognized"`
}

func handleDetect(_ context.Context, _ *mcp.CallToolRequest, input detectInput) (*mcp.CallToolResult, detectOutput, error) {
	if err := validateIdentifiers(input.Identifiers); err != nil {
		return errResult(err), detectOutput{}, nil
	}

	output := detectOutput{Results: make([]detectResult, 0, len(input.Identifiers))}
	for _, id := range input.Identifiers {
		set := casing.Detect(id)
		if set.IsEmpty() {
			output.Unrecognized++
		}
		names := set.Names()
		if names == nil {
			names = []string{}
		}
		output.Results = append(output.Results, detectResult{Identifier: id, Styles: names})
	}

	output.StyleCounts = groupAndSort(output.Results, func(r detectResult) []string {
		return r.Styles
	})
	if len(output.StyleCounts) == 0 {
		output.StyleCounts = nil
	}
	return nil, output, nil
}
