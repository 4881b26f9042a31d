package mcpserver

import (
	"errors"
	"math"
	"testing"

	"github.com/erraggy/namecase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultTestConfig mirrors loadConfig with no environment overrides.
func defaultTestConfig() *serverConfig {
	return &serverConfig{
		MaxIdentifiers: 1000,
		CheckLimit:     100,
		MaxLimit:       1000,
	}
}

func TestPaginate(t *testing.T) {
	withConfig(t, defaultTestConfig())
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name   string
		items  []int
		offset int
		limit  int
		want   []int
	}{
		{name: "default limit returns all when under 100", items: items, offset: 0, limit: 0, want: []int{0, 1, 2, 3, 4}},
		{name: "explicit limit", items: items, offset: 0, limit: 2, want: []int{0, 1}},
		{name: "offset only", items: items, offset: 2, limit: 0, want: []int{2, 3, 4}},
		{name: "offset and limit", items: items, offset: 1, limit: 2, want: []int{1, 2}},
		{name: "offset at end", items: items, offset: 4, limit: 2, want: []int{4}},
		{name: "offset beyond end", items: items, offset: 5, limit: 2, want: nil},
		{name: "negative offset", items: items, offset: -1, limit: 2, want: nil},
		{name: "limit exceeds remaining", items: items, offset: 3, limit: 10, want: []int{3, 4}},
		{name: "nil slice", items: nil, offset: 0, limit: 2, want: nil},
		{name: "negative limit treated as default", items: items, offset: 0, limit: -1, want: []int{0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(tt.items, tt.offset, tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginate_OverflowLimit(t *testing.T) {
	withConfig(t, &serverConfig{CheckLimit: 100, MaxLimit: math.MaxInt})
	got := paginate([]int{0, 1, 2}, 1, math.MaxInt)
	assert.Equal(t, []int{1, 2}, got)
}

func TestPaginate_DefaultAndMaxLimit(t *testing.T) {
	withConfig(t, &serverConfig{CheckLimit: 10, MaxLimit: 50})
	items := make([]int, 150)
	for i := range items {
		items[i] = i
	}

	assert.Len(t, paginate(items, 0, 0), 10, "default limit comes from CheckLimit")
	assert.Len(t, paginate(items, 0, 120), 50, "limit should be capped at MaxLimit")
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestGroupAndSort(t *testing.T) {
	items := [][]string{
		{"snake_case", "kebab-case"},
		{"snake_case"},
		{"camelCase"},
		{},
	}
	got := groupAndSort(items, func(keys []string) []string { return keys })
	assert.Equal(t, []groupCount{
		{Key: "snake_case", Count: 2},
		{Key: "camelCase", Count: 1},
		{Key: "kebab-case", Count: 1},
	}, got)
}

func TestResolveStyle(t *testing.T) {
	t.Run("explicit name", func(t *testing.T) {
		withConfig(t, defaultTestConfig())
		s, err := resolveStyle("SCREAMING_SNAKE_CASE")
		require.NoError(t, err)
		assert.Equal(t, casing.ScreamingSnakeCase, s)
	})

	t.Run("alias", func(t *testing.T) {
		withConfig(t, defaultTestConfig())
		s, err := resolveStyle("header")
		require.Error(t, err, "header is not an alias; httpheader is")
		assert.Zero(t, s)

		s, err = resolveStyle("httpheader")
		require.NoError(t, err)
		assert.Equal(t, casing.TrainCase, s)
	})

	t.Run("empty without default", func(t *testing.T) {
		withConfig(t, defaultTestConfig())
		_, err := resolveStyle("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NAMECASE_DEFAULT_STYLE")
	})

	t.Run("empty with default", func(t *testing.T) {
		c := defaultTestConfig()
		c.DefaultStyle, c.HasDefaultStyle = casing.KebabCase, true
		withConfig(t, c)
		s, err := resolveStyle("")
		require.NoError(t, err)
		assert.Equal(t, casing.KebabCase, s)
	})
}

func TestValidateIdentifiers(t *testing.T) {
	withConfig(t, &serverConfig{MaxIdentifiers: 2})

	assert.NoError(t, validateIdentifiers([]string{"a", "b"}))
	assert.ErrorContains(t, validateIdentifiers(nil), "at least one identifier")
	assert.ErrorContains(t, validateIdentifiers([]string{"a", "b", "c"}), "3 exceeds the limit of 2")
}

func TestErrResult(t *testing.T) {
	r := errResult(errors.New("boom"))
	assert.True(t, r.IsError)
	require.Len(t, r.Content, 1)
	text, ok := r.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "boom", text.Text)
}
