package mcpserver

import (
	"context"

	"github.com/erraggy/namecase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Identifiers    []string `json:"identifiers"               jsonschema:"Identifiers to convert"`
	Target         string   `json:"target,omitempty"          jsonschema:"Target style name or alias (e.g. snake_case\\, kebab\\, PascalCase). Defaults to NAMECASE_DEFAULT_STYLE."`
	StripHungarian bool     `json:"strip_hungarian,omitempty" jsonschema:"Drop a leading type-prefix word from camelCase identifiers before converting"`
}

type convertResult struct {
	Identifier        string `json:"identifier"`
	Converted         string `json:"converted"`
	Changed           bool   `json:"changed"`
	HungarianStripped bool   `json:"hungarian_stripped,omitempty"`
}

type convertOutput struct {
	Target       string          `json:"target"`
	ChangedCount int             `json:"changed_count"`
	Results      []convertResult `json:"results"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if err := validateIdentifiers(input.Identifiers); err != nil {
		return errResult(err), convertOutput{}, nil
	}
	target, err := resolveStyle(input.Target)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Target:  target.String(),
		Results: make([]convertResult, 0, len(input.Identifiers)),
	}
	for _, id := range input.Identifiers {
		r := convertResult{Identifier: id}
		source := id
		if input.StripHungarian {
			if stripped, ok := casing.StripHungarian(id); ok {
				source = stripped
				r.HungarianStripped = true
			}
		}
		r.Converted = casing.Convert(source, target)
		r.Changed = r.Converted != id
		if r.Changed {
			output.ChangedCount++
		}
		output.Results = append(output.Results, r)
	}
	return nil, output, nil
}
