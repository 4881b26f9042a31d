package commands

import (
	"flag"
	"os"

	"github.com/erraggy/namecase/casing"
	"github.com/erraggy/namecase/internal/cliutil"
)

// HungarianFlags contains flags for the hungarian command
type HungarianFlags struct {
	commonFlags
}

// HungarianEntry is one identifier and its prefix-stripped form in structured output.
type HungarianEntry struct {
	Identifier string `json:"identifier"         yaml:"identifier"`
	Stripped   string `json:"stripped,omitempty" yaml:"stripped,omitempty"`
	OK         bool   `json:"ok"                 yaml:"ok"`
}

// SetupHungarianFlags creates and configures a FlagSet for the hungarian command.
func SetupHungarianFlags() (*flag.FlagSet, *HungarianFlags) {
	fs := flag.NewFlagSet("hungarian", flag.ContinueOnError)
	flags := &HungarianFlags{}
	bindCommonFlags(fs, &flags.commonFlags)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namecase hungarian [flags] <identifier...|->\n\n")
		cliutil.Writef(fs.Output(), "Strip a Hungarian-notation type prefix from camelCase identifiers.\n")
		cliutil.Writef(fs.Output(), "The remaining words are printed in PascalCase; identifiers that are not\n")
		cliutil.Writef(fs.Output(), "camelCase with at least two words are printed unchanged.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namecase hungarian iPageSize strName\n")
	}

	return fs, flags
}

// HandleHungarian executes the hungarian command
func HandleHungarian(args []string) error {
	fs, flags := SetupHungarianFlags()
	ids, help, err := parseArgs(fs, &flags.commonFlags, args)
	if help || err != nil {
		return err
	}

	entries := make([]HungarianEntry, 0, len(ids))
	for _, id := range ids {
		stripped, ok := casing.StripHungarian(id)
		entries = append(entries, HungarianEntry{Identifier: id, Stripped: stripped, OK: ok})
	}

	if flags.Format != FormatText {
		return OutputStructured(entries, flags.Format)
	}
	for _, e := range entries {
		out := e.Identifier
		if e.OK {
			out = e.Stripped
		}
		cliutil.Writef(os.Stdout, "%s\n", out)
	}
	return nil
}
