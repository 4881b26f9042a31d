package commands

import (
	"io"

	"github.com/erraggy/namecase/internal/cliutil"
)

// RenderTable renders rows under headers as a fixed-width table.
// In quiet mode, headers are omitted and rows are tab-separated for piping.
func RenderTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if !quiet {
		renderRow(w, headers, widths)
	}
	for _, row := range rows {
		if quiet {
			for i, cell := range row {
				if i > 0 {
					cliutil.Writef(w, "\t")
				}
				cliutil.Writef(w, "%s", cell)
			}
			cliutil.Writef(w, "\n")
			continue
		}
		renderRow(w, row, widths)
	}
}

// renderRow pads every cell but the last to its column width.
func renderRow(w io.Writer, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			cliutil.Writef(w, "  ")
		}
		if i == len(cells)-1 || i >= len(widths) {
			cliutil.Writef(w, "%s", cell)
		} else {
			cliutil.Writef(w, "%-*s", widths[i], cell)
		}
	}
	cliutil.Writef(w, "\n")
}
