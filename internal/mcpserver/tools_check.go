package mcpserver

import (
	"context"

	"github.com/erraggy/namecase/checker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type checkInput struct {
	Identifiers []string `json:"identifiers"            jsonschema:"Identifiers to check. Issue lines are 1-based positions in this list."`
	Style       string   `json:"style,omitempty"        jsonschema:"Required style name or alias. Defaults to NAMECASE_DEFAULT_STYLE."`
	Strict      *bool    `json:"strict,omitempty"       jsonschema:"Report identifiers in no recognized style as errors instead of warnings. Defaults to NAMECASE_CHECK_STRICT."`
	NoWarnings  bool     `json:"no_warnings,omitempty"  jsonschema:"Suppress warnings and report only errors"`
	IncludeInfo bool     `json:"include_info,omitempty" jsonschema:"Also report conforming identifiers that match other styles too"`
	Offset      int      `json:"offset,omitempty"       jsonschema:"Number of issues to skip"`
	Limit       int      `json:"limit,omitempty"        jsonschema:"Maximum number of issues to return (default NAMECASE_CHECK_LIMIT)"`
}

type checkIssue struct {
	Identifier string   `json:"identifier"`
	Line       int      `json:"line"`
	Severity   string   `json:"severity"`
	Message    string   `json:"message"`
	Expected   string   `json:"expected"`
	Detected   []string `json:"detected,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

type checkOutput struct {
	Valid        bool         `json:"valid"`
	Style        string       `json:"style"`
	Checked      int          `json:"checked"`
	Conforming   int          `json:"conforming"`
	ErrorCount   int          `json:"error_count"`
	WarningCount int          `json:"warning_count"`
	InfoCount    int          `json:"info_count"`
	Returned     int          `json:"returned"`
	Issues       []checkIssue `json:"issues,omitempty"`
}

func handleCheck(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	if err := validateIdentifiers(input.Identifiers); err != nil {
		return errResult(err), checkOutput{}, nil
	}
	style, err := resolveStyle(input.Style)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	strict := cfg.CheckStrict
	if input.Strict != nil {
		strict = *input.Strict
	}

	result, err := checker.CheckWithOptions(
		checker.WithIdentifiers(input.Identifiers),
		checker.WithStyle(style),
		checker.WithStrictMode(strict),
		checker.WithIncludeWarnings(!input.NoWarnings),
		checker.WithIncludeInfo(input.IncludeInfo),
	)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	all := make([]checker.Issue, 0, len(result.Errors)+len(result.Warnings)+len(result.Infos))
	all = append(all, result.Errors...)
	all = append(all, result.Warnings...)
	all = append(all, result.Infos...)
	page := paginate(all, input.Offset, input.Limit)

	output := checkOutput{
		Valid:        result.Valid,
		Style:        result.Style.String(),
		Checked:      result.Checked,
		Conforming:   result.Conforming,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
		InfoCount:    len(result.Infos),
		Returned:     len(page),
		Issues:       makeSlice[checkIssue](len(page)),
	}
	for _, issue := range page {
		output.Issues = append(output.Issues, checkIssue{
			Identifier: issue.Identifier,
			Line:       issue.Line,
			Severity:   issue.Severity.String(),
			Message:    issue.Message,
			Expected:   issue.Expected,
			Detected:   issue.Detected,
			Suggestion: issue.Suggestion,
		})
	}
	return nil, output, nil
}
