package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/namecase/casing"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// DefaultStyle is used by convert and check when the call names no style.
	DefaultStyle    casing.Style
	HasDefaultStyle bool

	// MaxIdentifiers caps the identifiers accepted by a single tool call.
	MaxIdentifiers int

	// Check tool defaults.
	CheckStrict bool
	CheckLimit  int

	// MaxLimit caps any caller-supplied limit.
	MaxLimit int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from NAMECASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	c := &serverConfig{
		MaxIdentifiers: envInt("NAMECASE_MAX_IDENTIFIERS", 1000),
		CheckStrict:    envBool("NAMECASE_CHECK_STRICT", false),
		CheckLimit:     envInt("NAMECASE_CHECK_LIMIT", 100),
		MaxLimit:       envInt("NAMECASE_MAX_LIMIT", 1000),
	}
	c.DefaultStyle, c.HasDefaultStyle = envStyle("NAMECASE_DEFAULT_STYLE")
	return c
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

// envStyle resolves a style name or alias. Unknown names are ignored.
func envStyle(key string) (casing.Style, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	s, err := casing.ParseStyle(v)
	if err != nil {
		slog.Warn("invalid style env var, ignoring", "key", key, "value", v, "error", err) //nolint:gosec // G706: values are structured log fields, not format strings
		return 0, false
	}
	return s, true
}
