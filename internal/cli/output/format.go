package output

import (
	"fmt"
	"strings"
)

// FormatHeader returns a markdown header of the given level.
func FormatHeader(level int, text string) string {
	level = max(1, min(level, 6))
	return strings.Repeat("#", level) + " " + text
}

// FormatCodeBlock returns a fenced markdown code block.
func FormatCodeBlock(lang, code string) string {
	return "```" + lang + "\n" + strings.TrimRight(code, "\n") + "\n```"
}

// FormatKeyValue returns a markdown list item with a bold key.
func FormatKeyValue(key string, value any) string {
	return fmt.Sprintf("- **%s:** %v", key, value)
}

// FormatTableRow returns a markdown table row.
func FormatTableRow(cells ...string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// FormatTableSeparator returns the markdown separator row for n columns.
func FormatTableSeparator(n int) string {
	seps := make([]string, n)
	for i := range seps {
		seps[i] = "---"
	}
	return FormatTableRow(seps...)
}
