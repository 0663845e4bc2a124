// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"github.com/invowk/measures/pkg/measures"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	valueStyle  = cellStyle.Align(lipgloss.Right)
)

// RenderTable lists the units of c grouped by dimension, one row per unit
// with its value relative to the dimension's root unit.
func RenderTable(c *Catalog) string {
	rows := make([][]string, 0, len(c.unitOrder))
	for _, t := range c.UnitTypes() {
		for _, u := range c.UnitsOf(t) {
			rows = append(rows, []string{t.Name(), u.LongName(), u.ShortName(), measures.FormatValue(u.Value())})
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TYPE", "UNIT", "SYMBOL", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 3:
				return valueStyle
			default:
				return cellStyle
			}
		}).
		String()
}
