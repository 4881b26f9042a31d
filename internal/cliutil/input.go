package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StdinArg is the argument that selects standard input as the identifier source.
const StdinArg = "-"

// CommentPrefix marks stdin lines that are skipped.
const CommentPrefix = "#"

// ReadIdentifiers returns the identifiers named on the command line. A single
// StdinArg argument reads identifiers from stdin instead, one per line, with
// surrounding whitespace trimmed. Blank lines and lines starting with
// CommentPrefix are skipped.
func ReadIdentifiers(args []string, stdin io.Reader) ([]string, error) {
	if len(args) != 1 || args[0] != StdinArg {
		return args, nil
	}

	var ids []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id == "" || strings.HasPrefix(id, CommentPrefix) {
			continue
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return ids, nil
}
