package mcpserver

import (
	"context"
	"testing"

	"github.com/erraggy/namecase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeTool(t *testing.T) {
	withConfig(t, defaultTestConfig())

	input := tokenizeInput{Identifiers: []string{"HTTPServerError", "__", "v2Format"}}
	result, output, err := handleTokenize(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, []tokenizeResult{
		{Identifier: "HTTPServerError", Words: []string{"http", "server", "error"}},
		{Identifier: "__", Words: []string{}},
		{Identifier: "v2Format", Words: []string{"v", "2", "format"}},
	}, output.Results)
}

func TestTokenizeTool_NoIdentifiers(t *testing.T) {
	withConfig(t, defaultTestConfig())

	result, _, err := handleTokenize(context.Background(), &mcp.CallToolRequest{}, tokenizeInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestDetectTool(t *testing.T) {
	withConfig(t, defaultTestConfig())

	input := detectInput{Identifiers: []string{"foo", "fooBar", "foo_Bar-baz"}}
	result, output, err := handleDetect(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	require.Len(t, output.Results, 3)
	assert.Equal(t, []string{"camelCase", "snake_case", "kebab-case", "flatcase"}, output.Results[0].Styles)
	assert.Equal(t, []string{"camelCase"}, output.Results[1].Styles)
	assert.Equal(t, []string{}, output.Results[2].Styles)
	assert.Equal(t, 1, output.Unrecognized)

	assert.Equal(t, []groupCount{
		{Key: "camelCase", Count: 2},
		{Key: "flatcase", Count: 1},
		{Key: "kebab-case", Count: 1},
		{Key: "snake_case", Count: 1},
	}, output.StyleCounts)
}

func TestDetectTool_NothingRecognized(t *testing.T) {
	withConfig(t, defaultTestConfig())

	_, output, err := handleDetect(context.Background(), &mcp.CallToolRequest{}, detectInput{Identifiers: []string{"a_B"}})
	require.NoError(t, err)
	assert.Nil(t, output.StyleCounts)
	assert.Equal(t, 1, output.Unrecognized)
}

func TestDetectTool_TooManyIdentifiers(t *testing.T) {
	withConfig(t, &serverConfig{MaxIdentifiers: 1})

	result, _, err := handleDetect(context.Background(), &mcp.CallToolRequest{}, detectInput{Identifiers: []string{"a", "b"}})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool(t *testing.T) {
	withConfig(t, defaultTestConfig())

	input := convertInput{
		Identifiers: []string{"fooBar", "foo_bar", "HTTPServer"},
		Target:      "snake",
	}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, "snake_case", output.Target)
	assert.Equal(t, 2, output.ChangedCount)
	assert.Equal(t, []convertResult{
		{Identifier: "fooBar", Converted: "foo_bar", Changed: true},
		{Identifier: "foo_bar", Converted: "foo_bar", Changed: false},
		{Identifier: "HTTPServer", Converted: "http_server", Changed: true},
	}, output.Results)
}

func TestConvertTool_StripHungarian(t *testing.T) {
	withConfig(t, defaultTestConfig())

	input := convertInput{
		Identifiers:    []string{"iPageSize", "count"},
		Target:         "kebab-case",
		StripHungarian: true,
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, []convertResult{
		{Identifier: "iPageSize", Converted: "page-size", Changed: true, HungarianStripped: true},
		{Identifier: "count", Converted: "count", Changed: false},
	}, output.Results)
}

func TestConvertTool_DefaultTarget(t *testing.T) {
	c := defaultTestConfig()
	c.DefaultStyle, c.HasDefaultStyle = casing.PascalCase, true
	withConfig(t, c)

	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, convertInput{Identifiers: []string{"foo_bar"}})
	require.NoError(t, err)
	assert.Equal(t, "PascalCase", output.Target)
	assert.Equal(t, "FooBar", output.Results[0].Converted)
}

func TestConvertTool_Errors(t *testing.T) {
	withConfig(t, defaultTestConfig())

	tests := []struct {
		name    string
		input   convertInput
		wantErr string
	}{
		{name: "missing target", input: convertInput{Identifiers: []string{"a"}}, wantErr: "style is required"},
		{name: "unknown target", input: convertInput{Identifiers: []string{"a"}, Target: "hungarian"}, wantErr: `unknown style "hungarian"`},
		{name: "no identifiers", input: convertInput{Target: "snake"}, wantErr: "at least one identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.wantErr)
		})
	}
}

var checkIdentifiers = []string{"user_id", "userName", "foo_Bar-baz", "foo"}

func TestCheckTool(t *testing.T) {
	withConfig(t, defaultTestConfig())

	input := checkInput{Identifiers: checkIdentifiers, Style: "snake_case", IncludeInfo: true}
	result, output, err := handleCheck(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.False(t, output.Valid)
	assert.Equal(t, "snake_case", output.Style)
	assert.Equal(t, 4, output.Checked)
	assert.Equal(t, 2, output.Conforming)
	assert.Equal(t, 1, output.ErrorCount)
	assert.Equal(t, 1, output.WarningCount)
	assert.Equal(t, 1, output.InfoCount)
	assert.Equal(t, 3, output.Returned)

	require.Len(t, output.Issues, 3)
	assert.Equal(t, checkIssue{
		Identifier: "userName",
		Line:       2,
		Severity:   "error",
		Message:    "written in camelCase, expected snake_case",
		Expected:   "snake_case",
		Detected:   []string{"camelCase"},
		Suggestion: "user_name",
	}, output.Issues[0])
	assert.Equal(t, "snake_case", output.Issues[1].Expected)
	assert.Equal(t, "warning", output.Issues[1].Severity)
	assert.Equal(t, 3, output.Issues[1].Line)
	assert.Equal(t, "info", output.Issues[2].Severity)
	assert.Equal(t, "foo", output.Issues[2].Identifier)
}

func TestCheckTool_Strict(t *testing.T) {
	strict := true
	tests := []struct {
		name         string
		configStrict bool
		inputStrict  *bool
		wantErrors   int
		wantWarnings int
	}{
		{name: "default lenient", wantErrors: 1, wantWarnings: 1},
		{name: "strict argument", inputStrict: &strict, wantErrors: 2, wantWarnings: 0},
		{name: "strict from config", configStrict: true, wantErrors: 2, wantWarnings: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultTestConfig()
			c.CheckStrict = tt.configStrict
			withConfig(t, c)

			input := checkInput{Identifiers: checkIdentifiers, Style: "snake", Strict: tt.inputStrict}
			_, output, err := handleCheck(context.Background(), &mcp.CallToolRequest{}, input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantErrors, output.ErrorCount)
			assert.Equal(t, tt.wantWarnings, output.WarningCount)
		})
	}
}

func TestCheckTool_NoWarnings(t *testing.T) {
	withConfig(t, defaultTestConfig())

	input := checkInput{Identifiers: checkIdentifiers, Style: "snake", NoWarnings: true}
	_, output, err := handleCheck(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Zero(t, output.WarningCount)
	assert.Equal(t, 1, output.Returned)
}

func TestCheckTool_Pagination(t *testing.T) {
	withConfig(t, defaultTestConfig())

	input := checkInput{Identifiers: checkIdentifiers, Style: "snake", IncludeInfo: true, Offset: 1, Limit: 1}
	_, output, err := handleCheck(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 1, output.Returned)
	require.Len(t, output.Issues, 1)
	assert.Equal(t, "foo_Bar-baz", output.Issues[0].Identifier)
	assert.Equal(t, 1, output.ErrorCount, "counts cover the full result, not the page")
}

func TestCheckTool_AllConforming(t *testing.T) {
	withConfig(t, defaultTestConfig())

	input := checkInput{Identifiers: []string{"Content-Type", "X-Request-Id"}, Style: "Train-Case"}
	_, output, err := handleCheck(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Valid)
	assert.Equal(t, 2, output.Conforming)
	assert.Zero(t, output.Returned)
	assert.Nil(t, output.Issues)
}

func TestCheckTool_UnknownStyle(t *testing.T) {
	withConfig(t, defaultTestConfig())

	result, _, err := handleCheck(context.Background(), &mcp.CallToolRequest{}, checkInput{Identifiers: []string{"a"}, Style: "nope"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestStylesTool(t *testing.T) {
	result, output, err := handleStyles(context.Background(), &mcp.CallToolRequest{}, stylesInput{})
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, 8, output.Count)
	require.Len(t, output.Styles, 8)

	assert.Equal(t, styleInfo{
		Name:          "camelCase",
		GoName:        "CamelCase",
		Aliases:       []string{"camel", "lowercamel"},
		WordCase:      "capitalized",
		FirstWordCase: "lower",
		Example:       "exampleName",
	}, output.Styles[0])

	assert.Equal(t, styleInfo{
		Name:      "snake_case",
		GoName:    "SnakeCase",
		Aliases:   []string{"snake"},
		Separator: "_",
		WordCase:  "lower",
		Example:   "example_name",
	}, output.Styles[2])

	for _, s := range output.Styles {
		parsed, err := casing.ParseStyle(s.Name)
		require.NoError(t, err)
		assert.True(t, casing.IsStyle(s.Example, parsed), "%s example %q", s.Name, s.Example)
	}
}
