// SPDX-License-Identifier: MIT
package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorCyan = lipgloss.Color("36")  // headers
	colorDim  = lipgloss.Color("240") // unset cells and borders
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	styleZero   = styleCell.Foreground(colorDim)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
)

// renderTable lays out grid as a bordered table with column and row indices.
// Cells equal to "0" are dimmed.
// Callers bound cols*len(grid) beforehand (see checkGridSize).
func renderTable(grid [][]string, cols uint) string {
	headers := []string{""}
	for c := uint(0); c < cols; c++ {
		headers = append(headers, strconv.FormatUint(uint64(c), 10))
	}

	rows := make([][]string, len(grid))
	for r, cells := range grid {
		rows[r] = append([]string{strconv.Itoa(r)}, cells...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow, col == 0:
				return styleHeader
			case row < len(rows) && col < len(rows[row]) && rows[row][col] == "0":
				return styleZero
			default:
				return styleCell
			}
		})

	return t.String() + "\n"
}
