package commands

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/namecase/internal/cliutil"
	"github.com/erraggy/namecase/internal/mcpserver"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	Verbose bool
}

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() (*flag.FlagSet, *MCPFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &MCPFlags{}

	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging on stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namecase mcp [flags]\n\n")
		cliutil.Writef(fs.Output(), "Serve the namecase tools over the Model Context Protocol on stdio.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  NAMECASE_DEFAULT_STYLE     style used when a call names none\n")
		cliutil.Writef(fs.Output(), "  NAMECASE_MAX_IDENTIFIERS   identifiers accepted per call (default 1000)\n")
		cliutil.Writef(fs.Output(), "  NAMECASE_CHECK_STRICT      strict check mode by default (default false)\n")
		cliutil.Writef(fs.Output(), "  NAMECASE_CHECK_LIMIT       issues returned by check (default 100)\n")
		cliutil.Writef(fs.Output(), "  NAMECASE_MAX_LIMIT         upper bound for limit arguments (default 1000)\n")
	}

	return fs, flags
}

// HandleMCP executes the mcp command. It blocks until the client
// disconnects or the process receives SIGINT or SIGTERM.
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	ConfigureLogging(flags.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Debug("starting MCP server on stdio")
	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
