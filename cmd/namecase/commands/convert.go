package commands

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/erraggy/namecase/casing"
	"github.com/erraggy/namecase/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	commonFlags
	Target         string
	StripHungarian bool
}

// ConvertEntry is one identifier and its conversion in structured output.
type ConvertEntry struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Converted  string `json:"converted"  yaml:"converted"`
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}
	bindCommonFlags(fs, &flags.commonFlags)

	fs.StringVar(&flags.Target, "t", "", "target style name or alias (required)")
	fs.StringVar(&flags.Target, "target", "", "target style name or alias (required)")
	fs.BoolVar(&flags.StripHungarian, "strip-hungarian", false, "drop a leading type prefix from camelCase identifiers first")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namecase convert -t <style> [flags] <identifier...|->\n\n")
		cliutil.Writef(fs.Output(), "Convert identifiers to another naming style.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namecase convert -t snake HTTPServerError\n")
		cliutil.Writef(fs.Output(), "  namecase convert --target Train-Case content_type x_request_id\n")
		cliutil.Writef(fs.Output(), "  namecase convert -t pascal --strip-hungarian iPageSize\n")
		cliutil.Writef(fs.Output(), "  cat fields.txt | namecase convert -t kebab - > fields-kebab.txt\n")
		cliutil.Writef(fs.Output(), "\nRun 'namecase styles' for the list of style names.\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()
	ids, help, err := parseArgs(fs, &flags.commonFlags, args)
	if help || err != nil {
		return err
	}

	if flags.Target == "" {
		fs.Usage()
		return fmt.Errorf("target style is required (use -t or --target)")
	}
	target, err := casing.ParseStyle(flags.Target)
	if err != nil {
		return err
	}
	slog.Debug("converting identifiers", "target", target, "count", len(ids), "strip_hungarian", flags.StripHungarian)

	entries := make([]ConvertEntry, 0, len(ids))
	for _, id := range ids {
		source := id
		if flags.StripHungarian {
			if stripped, ok := casing.StripHungarian(id); ok {
				slog.Debug("stripped type prefix", "identifier", id, "remainder", stripped)
				source = stripped
			}
		}
		entries = append(entries, ConvertEntry{Identifier: id, Converted: casing.Convert(source, target)})
	}

	if flags.Format != FormatText {
		return OutputStructured(entries, flags.Format)
	}
	for _, e := range entries {
		cliutil.Writef(os.Stdout, "%s\n", e.Converted)
	}
	return nil
}
