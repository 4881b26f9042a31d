package commands

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/erraggy/namecase/checker"
	"github.com/erraggy/namecase/internal/cliutil"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	commonFlags
	Style         string
	Strict        bool
	NoWarnings    bool
	NoSuggestions bool
	Info          bool
	Quiet         bool
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
// Returns the FlagSet and a CheckFlags struct with bound flag variables.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}
	bindCommonFlags(fs, &flags.commonFlags)

	fs.StringVar(&flags.Style, "s", "", "required style name or alias (required)")
	fs.StringVar(&flags.Style, "style", "", "required style name or alias (required)")
	fs.BoolVar(&flags.Strict, "strict", false, "report identifiers in no recognized style as errors")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warnings")
	fs.BoolVar(&flags.NoSuggestions, "no-suggestions", false, "omit converted-name suggestions")
	fs.BoolVar(&flags.Info, "info", false, "report conforming identifiers that also match other styles")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output issues, no summary")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output issues, no summary")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namecase check -s <style> [flags] <identifier...|->\n\n")
		cliutil.Writef(fs.Output(), "Check that identifiers are written in a required naming style.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namecase check -s snake user_id userName\n")
		cliutil.Writef(fs.Output(), "  namecase check -s kebab --strict - < routes.txt\n")
		cliutil.Writef(fs.Output(), "  namecase check -s PascalCase -f json - < types.txt\n")
		cliutil.Writef(fs.Output(), "\nInput:\n")
		cliutil.Writef(fs.Output(), "  - With '-', identifiers are read from stdin one per line\n")
		cliutil.Writef(fs.Output(), "  - Blank lines and lines starting with '#' are skipped\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    All identifiers conform (warnings allowed)\n")
		cliutil.Writef(fs.Output(), "  1    Non-conforming identifiers found, or invalid input\n")
	}

	return fs, flags
}

// HandleCheck executes the check command. Non-conforming identifiers are
// reported and the returned error wraps caseerrors.ErrNonConforming.
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()
	help, err := parseFlags(fs, &flags.commonFlags, args)
	if help || err != nil {
		return err
	}

	if flags.Style == "" {
		fs.Usage()
		return fmt.Errorf("style is required (use -s or --style)")
	}

	opts := []checker.Option{
		checker.WithStyleName(flags.Style),
		checker.WithStrictMode(flags.Strict),
		checker.WithIncludeWarnings(!flags.NoWarnings),
		checker.WithIncludeSuggestions(!flags.NoSuggestions),
		checker.WithIncludeInfo(flags.Info),
	}
	if readsStdin(fs) {
		opts = append(opts, checker.WithReader(os.Stdin))
	} else {
		opts = append(opts, checker.WithIdentifiers(fs.Args()))
	}

	result, err := checker.CheckWithOptions(opts...)
	if err != nil {
		return err
	}
	slog.Debug("check finished", "style", result.Style, "checked", result.Checked,
		"errors", result.ErrorCount, "warnings", result.WarningCount)

	if flags.Format != FormatText {
		if err := OutputStructured(result, flags.Format); err != nil {
			return err
		}
		return result.Err()
	}

	printIssues(result.Errors)
	printIssues(result.Warnings)
	printIssues(result.Infos)

	if !flags.Quiet {
		if result.Valid {
			cliutil.Writef(os.Stdout, "✓ %d/%d identifiers conform to %s", result.Conforming, result.Checked, result.Style)
		} else {
			cliutil.Writef(os.Stdout, "✗ %d/%d identifiers conform to %s, %d error(s)",
				result.Conforming, result.Checked, result.Style, result.ErrorCount)
		}
		if result.WarningCount > 0 {
			cliutil.Writef(os.Stdout, ", %d warning(s)", result.WarningCount)
		}
		cliutil.Writef(os.Stdout, "\n")
	}

	return result.Err()
}

func printIssues(issues []checker.Issue) {
	for _, issue := range issues {
		cliutil.Writef(os.Stdout, "%s\n", issue.String())
	}
}
