package commands

import (
	"flag"
	"os"
	"strings"

	"github.com/erraggy/namecase/casing"
	"github.com/erraggy/namecase/internal/cliutil"
)

// DetectFlags contains flags for the detect command
type DetectFlags struct {
	commonFlags
}

// DetectEntry is one identifier and the styles it matches in structured output.
type DetectEntry struct {
	Identifier string   `json:"identifier" yaml:"identifier"`
	Styles     []string `json:"styles"     yaml:"styles"`
}

// SetupDetectFlags creates and configures a FlagSet for the detect command.
func SetupDetectFlags() (*flag.FlagSet, *DetectFlags) {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	flags := &DetectFlags{}
	bindCommonFlags(fs, &flags.commonFlags)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namecase detect [flags] <identifier...|->\n\n")
		cliutil.Writef(fs.Output(), "Report every naming style each identifier is written in.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namecase detect fooBar FOO_BAR foo\n")
		cliutil.Writef(fs.Output(), "  namecase detect -f yaml - < identifiers.txt\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Single-word identifiers usually match several styles\n")
		cliutil.Writef(fs.Output(), "  - Mixed identifiers such as foo_Bar-baz match none\n")
	}

	return fs, flags
}

// HandleDetect executes the detect command
func HandleDetect(args []string) error {
	fs, flags := SetupDetectFlags()
	ids, help, err := parseArgs(fs, &flags.commonFlags, args)
	if help || err != nil {
		return err
	}

	entries := make([]DetectEntry, 0, len(ids))
	for _, id := range ids {
		names := casing.Detect(id).Names()
		if names == nil {
			names = []string{}
		}
		entries = append(entries, DetectEntry{Identifier: id, Styles: names})
	}

	if flags.Format != FormatText {
		return OutputStructured(entries, flags.Format)
	}
	for _, e := range entries {
		styles := "(none)"
		if len(e.Styles) > 0 {
			styles = strings.Join(e.Styles, ", ")
		}
		cliutil.Writef(os.Stdout, "%s: %s\n", e.Identifier, styles)
	}
	return nil
}
