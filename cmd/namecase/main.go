package main

import (
	"os"

	"github.com/erraggy/namecase"
	"github.com/erraggy/namecase/cmd/namecase/commands"
	"github.com/erraggy/namecase/internal/cliutil"
)

// commandNames lists every top-level command for typo suggestions.
var commandNames = []string{
	"tokenize", "detect", "convert", "check", "styles", "hungarian", "mcp", "version", "help",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	commands.ConfigureLogging(false)

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		cliutil.Writef(os.Stdout, "%s\n", namecase.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "tokenize":
		err = commands.HandleTokenize(args)
	case "detect":
		err = commands.HandleDetect(args)
	case "convert":
		err = commands.HandleConvert(args)
	case "check":
		err = commands.HandleCheck(args)
	case "styles":
		err = commands.HandleStyles(args)
	case "hungarian":
		err = commands.HandleHungarian(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	const maxDistance = 2

	best, bestDist := "", maxDistance+1
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	usage := `namecase - Detect and convert identifier naming styles

Usage:
  namecase <command> [options]

Commands:
  tokenize    Split identifiers into words
  detect      Report the naming styles identifiers are written in
  convert     Convert identifiers to another naming style
  check       Check identifiers against a required naming style
  styles      List the supported naming styles
  hungarian   Strip Hungarian-notation type prefixes
  mcp         Serve the tools over the Model Context Protocol (stdio)
  version     Show version information
  help        Show this help message

Identifiers are given as arguments, or read from stdin (one per line) with '-'.

Examples:
  namecase convert -t snake HTTPServerError
  namecase detect fooBar FOO_BAR
  namecase check -s kebab - < routes.txt
  namecase styles

Environment:
  NAMECASE_LOG_LEVEL    log level on stderr: debug, info, warn (default), error

Run 'namecase <command> --help' for more information on a command.
`
	cliutil.Writef(os.Stdout, "%s", usage)
}
