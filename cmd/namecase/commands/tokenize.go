package commands

import (
	"flag"
	"os"
	"strings"

	"github.com/erraggy/namecase/casing"
	"github.com/erraggy/namecase/internal/cliutil"
)

// TokenizeFlags contains flags for the tokenize command
type TokenizeFlags struct {
	commonFlags
}

// TokenizeEntry is one identifier and its words in structured output.
type TokenizeEntry struct {
	Identifier string   `json:"identifier" yaml:"identifier"`
	Words      []string `json:"words"      yaml:"words"`
}

// SetupTokenizeFlags creates and configures a FlagSet for the tokenize command.
func SetupTokenizeFlags() (*flag.FlagSet, *TokenizeFlags) {
	fs := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	flags := &TokenizeFlags{}
	bindCommonFlags(fs, &flags.commonFlags)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namecase tokenize [flags] <identifier...|->\n\n")
		cliutil.Writef(fs.Output(), "Split identifiers into lowercase words.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namecase tokenize HTTPServerError\n")
		cliutil.Writef(fs.Output(), "  namecase tokenize -f json fooBar foo_bar\n")
		cliutil.Writef(fs.Output(), "  cat identifiers.txt | namecase tokenize -\n")
	}

	return fs, flags
}

// HandleTokenize executes the tokenize command
func HandleTokenize(args []string) error {
	fs, flags := SetupTokenizeFlags()
	ids, help, err := parseArgs(fs, &flags.commonFlags, args)
	if help || err != nil {
		return err
	}

	entries := make([]TokenizeEntry, 0, len(ids))
	for _, id := range ids {
		words := casing.Tokenize(id)
		if words == nil {
			words = []string{}
		}
		entries = append(entries, TokenizeEntry{Identifier: id, Words: words})
	}

	if flags.Format != FormatText {
		return OutputStructured(entries, flags.Format)
	}
	for _, e := range entries {
		cliutil.Writef(os.Stdout, "%s: %s\n", e.Identifier, strings.Join(e.Words, " "))
	}
	return nil
}
