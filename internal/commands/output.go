package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
)

// writeLine encodes v as one JSON line.
func writeLine(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// writeTable renders rows under header as an aligned table.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	table.Header(headerCells...)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

// clip shortens s to at most width terminal cells.
func clip(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}
