package answer

import (
	"strings"

	nethtml "golang.org/x/net/html"
)

// renderTable draws a pipe table. Cells are padded to the widest cell in
// their column; rows wider than the renderer wrap.
func (r blockRenderer) renderTable(table *nethtml.Node) []string {
	rows, header := tableRows(table, r.plain)
	if len(rows) == 0 {
		return nil
	}

	widths := make([]int, 0, 4)
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 3)
			}
			widths[i] = max(widths[i], visibleLen(cell))
		}
	}

	bar := r.style(tableBorder, "|")
	lines := make([]string, 0, len(rows)+1)
	for i, row := range rows {
		cells := make([]string, len(widths))
		for c := range widths {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			cell += strings.Repeat(" ", widths[c]-visibleLen(cell))
			if i == 0 && header {
				cell = r.style(tableHeaderCell, cell)
			}
			cells[c] = cell
		}
		lines = r.appendRow(lines, bar+" "+strings.Join(cells, " "+bar+" ")+" "+bar)
		if i == 0 && header {
			seps := make([]string, len(widths))
			for c, w := range widths {
				seps[c] = strings.Repeat("-", w)
			}
			lines = r.appendRow(lines, bar+" "+r.style(tableBorder, strings.Join(seps, " | "))+" "+bar)
		}
	}
	return lines
}

func tableRows(table *nethtml.Node, plain bool) ([][]string, bool) {
	var rows [][]string
	header := false
	inline := blockRenderer{width: 1 << 16, plain: plain}

	var walk func(*nethtml.Node)
	walk = func(node *nethtml.Node) {
		if node.Type == nethtml.ElementNode && strings.EqualFold(node.Data, "tr") {
			var row []string
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				if c.Type != nethtml.ElementNode {
					continue
				}
				tag := strings.ToLower(c.Data)
				if tag != "th" && tag != "td" {
					continue
				}
				if tag == "th" && len(rows) == 0 {
					header = true
				}
				row = append(row, normalizeInlineText(inline.renderInlineChildren(c)))
			}
			if len(row) > 0 {
				rows = append(rows, row)
			}
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(table)
	return rows, header
}

// appendRow keeps padding intact when the row fits; wider rows lose their
// alignment to wrapping.
func (r blockRenderer) appendRow(lines []string, row string) []string {
	if visibleLen(row) <= r.width {
		return append(lines, row)
	}
	return append(lines, Wrap(row, r.width)...)
}
