// Package commands provides CLI command handlers for namecase.
package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/namecase/internal/cliutil"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// LogLevelEnv names the environment variable that sets the log level
// (debug, info, warn, error). --verbose overrides it with debug.
const LogLevelEnv = "NAMECASE_LOG_LEVEL"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(os.Stdout, "%s\n", strings.TrimRight(string(bytes), "\n"))
	return nil
}

// commonFlags are shared by every identifier-processing command.
type commonFlags struct {
	Format  string
	Verbose bool
}

// bindCommonFlags registers --format/-f and --verbose on fs.
func bindCommonFlags(fs *flag.FlagSet, flags *commonFlags) {
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging on stderr")
}

// parseFlags parses args into fs and validates the common flags. At least
// one positional argument is required. help reports whether --help was requested.
func parseFlags(fs *flag.FlagSet, flags *commonFlags, args []string) (help bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return false, err
	}
	ConfigureLogging(flags.Verbose)

	if fs.NArg() == 0 {
		fs.Usage()
		return false, fmt.Errorf("%s command requires at least one identifier or '-' for stdin", fs.Name())
	}
	return false, nil
}

// parseArgs runs parseFlags and returns the identifiers named by the
// remaining arguments, or read from stdin for a single '-'.
func parseArgs(fs *flag.FlagSet, flags *commonFlags, args []string) (ids []string, help bool, err error) {
	if help, err = parseFlags(fs, flags, args); help || err != nil {
		return nil, help, err
	}

	ids, err = cliutil.ReadIdentifiers(fs.Args(), os.Stdin)
	if err != nil {
		return nil, false, err
	}
	slog.Debug("read identifiers", "command", fs.Name(), "count", len(ids), "stdin", readsStdin(fs))
	return ids, false, nil
}

// readsStdin reports whether the positional arguments select stdin.
func readsStdin(fs *flag.FlagSet) bool {
	return fs.NArg() == 1 && fs.Arg(0) == cliutil.StdinArg
}

// ConfigureLogging installs the default slog logger: a text handler on
// stderr at the level named by NAMECASE_LOG_LEVEL (warn if unset), or
// debug when verbose is set.
func ConfigureLogging(verbose bool) {
	level := LogLevel(os.Getenv(LogLevelEnv))
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// LogLevel maps a level name to a slog.Level. Unknown or empty names map
// to slog.LevelWarn.
func LogLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelWarn
	}
	return level
}
