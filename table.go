// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

package msgdoc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RenderTable renders a reStructuredText grid table.
//
// Column width is the longest cell of the column, header included, counted in
// characters. The header is separated from the body by a "=" border and every
// body row is closed by a "-" border. Each row must have exactly as many cells
// as header.
func RenderTable(header []string, rows [][]string) (string, error) {
	if len(header) == 0 {
		return "", ErrTableNoColumns
	}

	for index, row := range rows {
		if len(row) != len(header) {
			return "", fmt.Errorf("%w: row %d has %d cells, header has %d", ErrTableRowArity, index, len(row), len(header))
		}
	}

	widths := columnWidths(header, rows)
	rowBorder := tableBorder(widths, '-')

	var out strings.Builder
	out.WriteString(rowBorder)
	writeTableLine(&out, header, widths)
	out.WriteString(tableBorder(widths, '='))

	for _, row := range rows {
		writeTableLine(&out, row, widths)
		out.WriteString(rowBorder)
	}

	return out.String(), nil
}

// columnWidths returns max character count per column over header and rows.
func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for index, label := range header {
		widths[index] = utf8.RuneCountInString(label)
	}

	for _, row := range rows {
		for index, cell := range row {
			widths[index] = max(widths[index], utf8.RuneCountInString(cell))
		}
	}

	return widths
}

// tableBorder renders one "+---+---+" style border line with the selected fill.
func tableBorder(widths []int, fill byte) string {
	var out strings.Builder
	out.WriteByte('+')
	for _, width := range widths {
		out.WriteString(strings.Repeat(string(fill), width+2))
		out.WriteByte('+')
	}

	out.WriteByte('\n')
	return out.String()
}

// writeTableLine renders one "| a | b |" line with left-justified cells.
func writeTableLine(out *strings.Builder, cells []string, widths []int) {
	out.WriteByte('|')
	for index, cell := range cells {
		out.WriteByte(' ')
		out.WriteString(cell)
		out.WriteString(strings.Repeat(" ", widths[index]-utf8.RuneCountInString(cell)))
		out.WriteString(" |")
	}

	out.WriteByte('\n')
}
