package commands

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/erraggy/namecase/casing"
	"github.com/erraggy/namecase/internal/cliutil"
)

// StylesFlags contains flags for the styles command
type StylesFlags struct {
	Format string
	Quiet  bool
}

// StyleEntry describes one style in structured output.
type StyleEntry struct {
	Name    string   `json:"name"              yaml:"name"`
	GoName  string   `json:"go_name"           yaml:"go_name"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Example string   `json:"example"           yaml:"example"`
}

// SetupStylesFlags creates and configures a FlagSet for the styles command.
func SetupStylesFlags() (*flag.FlagSet, *StylesFlags) {
	fs := flag.NewFlagSet("styles", flag.ContinueOnError)
	flags := &StylesFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: tab-separated rows without a header")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: tab-separated rows without a header")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namecase styles [flags]\n\n")
		cliutil.Writef(fs.Output(), "List the supported naming styles and the names they accept.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// StyleEntries returns the structured description of every style.
func StyleEntries() []StyleEntry {
	styles := casing.Styles()
	entries := make([]StyleEntry, 0, len(styles))
	for _, s := range styles {
		entries = append(entries, StyleEntry{
			Name:    s.String(),
			GoName:  s.GoName(),
			Aliases: s.Aliases(),
			Example: s.Example(),
		})
	}
	return entries
}

// HandleStyles executes the styles command
func HandleStyles(args []string) error {
	fs, flags := SetupStylesFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	entries := StyleEntries()
	if flags.Format != FormatText {
		return OutputStructured(entries, flags.Format)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Name, e.GoName, e.Example, strings.Join(e.Aliases, ", ")})
	}
	RenderTable(os.Stdout, []string{"STYLE", "GO NAME", "EXAMPLE", "ALIASES"}, rows, flags.Quiet)
	return nil
}
