// Package static renders non-interactive terminal output: borderless
// tables and the key/value listings used for track configs and drafts.
package static

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/watercooler-labs/toggl-cli/internal/ui/styles"
)

// columnGap separates table columns.
const columnGap = 2

// RenderTable lays rows out in aligned columns under bold headers. Cells
// may already be styled; widths are measured without ANSI sequences.
// Returns "" for no rows.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	last := len(headers) - 1
	cell := func(style lipgloss.Style, col int) lipgloss.Style {
		if col < last {
			return style.PaddingRight(columnGap)
		}
		return style
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell(styles.Bold, col)
			}
			return cell(lipgloss.NewStyle(), col)
		})

	return t.String() + "\n"
}
