package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatTables reflows markdown tables so columns line up by display width.
// Tutorial pages on the legacy site carry tables that survive conversion with
// ragged cells.
func FormatTables(content string) string {
	lines := strings.Split(content, "\n")

	var formattedLines []string

	var tableBuffer []string

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmedLine := strings.TrimSpace(line)

		// A table row starts and ends with a pipe
		if strings.HasPrefix(trimmedLine, "|") && strings.HasSuffix(trimmedLine, "|") {
			tableBuffer = append(tableBuffer, line)

			continue
		}

		if len(tableBuffer) > 0 {
			formattedLines = append(formattedLines, reflowTable(tableBuffer)...)
			tableBuffer = nil
		}

		formattedLines = append(formattedLines, line)
	}

	if len(tableBuffer) > 0 {
		formattedLines = append(formattedLines, reflowTable(tableBuffer)...)
	}

	return strings.Join(formattedLines, "\n")
}

func reflowTable(rows []string) []string {
	// A lone pipe-delimited line is not a table
	if len(rows) < 2 {
		return rows
	}

	var table [][]string

	for _, row := range rows {
		parts := strings.Split(row, "|")

		if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
			parts = parts[1:]
		}

		if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
			parts = parts[:len(parts)-1]
		}

		var cells []string
		for _, p := range parts {
			cells = append(cells, strings.TrimSpace(p))
		}

		table = append(table, cells)
	}

	if len(table) == 0 {
		return rows
	}

	colCount := len(table[0])
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	separatorRowIdx := findSeparatorRow(table)

	// Column widths use display width so accented and wide runes line up
	colWidths := make([]int, colCount)

	for rIdx, row := range table {
		if rIdx == separatorRowIdx {
			continue
		}

		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var result []string

	for i, row := range table {
		var sb strings.Builder

		sb.WriteString("|")

		isSeparator := i == separatorRowIdx

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")

			content := ""
			if j < len(row) {
				content = row[j]
			}

			if isSeparator {
				sb.WriteString(strings.Repeat("-", colWidths[j]))
			} else {
				sb.WriteString(content)

				padding := colWidths[j] - runewidth.StringWidth(content)
				if padding > 0 {
					sb.WriteString(strings.Repeat(" ", padding))
				}
			}

			sb.WriteString(" |")
		}

		result = append(result, sb.String())
	}

	return result
}

// findSeparatorRow locates the header separator, normally row 1.
func findSeparatorRow(table [][]string) int {
	if len(table) < 2 {
		return -1
	}

	for _, cell := range table[1] {
		trim := strings.TrimSpace(cell)
		trim = strings.ReplaceAll(trim, "-", "")
		trim = strings.ReplaceAll(trim, ":", "")
		trim = strings.ReplaceAll(trim, " ", "")

		if trim != "" {
			return -1
		}
	}

	return 1
}
