package mcpserver

import (
	"context"

	"github.com/erraggy/namecase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type stylesInput struct{}

type styleInfo struct {
	Name          string   `json:"name"`
	GoName        string   `json:"go_name"`
	Aliases       []string `json:"aliases,omitempty"`
	Separator     string   `json:"separator,omitempty"`
	WordCase      string   `json:"word_case"`
	FirstWordCase string   `json:"first_word_case,omitempty"`
	Example       string   `json:"example"`
}

type stylesOutput struct {
	Count  int         `json:"count"`
	Styles []styleInfo `json:"styles"`
}

func handleStyles(_ context.Context, _ *mcp.CallToolRequest, _ stylesInput) (*mcp.CallToolResult, stylesOutput, error) {
	styles := casing.Styles()
	output := stylesOutput{
		Count:  len(styles),
		Styles: make([]styleInfo, 0, len(styles)),
	}
	for _, s := range styles {
		rule := s.Rule()
		info := styleInfo{
			Name:      s.String(),
			GoName:    s.GoName(),
			Aliases:   s.Aliases(),
			Separator: rule.Separator,
			WordCase:  rule.Case.String(),
			Example:   s.Example(),
		}
		if rule.HasFirstWordRule {
			info.FirstWordCase = rule.FirstWordCase.String()
		}
		output.Styles = append(output.Styles, info)
	}
	return nil, output, nil
}
