package filter

import (
	"fmt"
	"strings"

	"xlfilter/domain/core"
	"xlfilter/domain/grid"
)

// FilterRows returns every row below the header row whose cell in the chosen
// column equals value, ignoring case and surrounding spaces of value. A cell
// matches on its stored value or on its display text, so a number shown as
// "50,000" matches both "50000" and "50,000". Blank cells never match. An
// empty result is not an error here.
func FilterRows(g *grid.Grid, header HeaderRow, sel Selection) ([]grid.Row, error) {
	if strings.TrimSpace(sel.Value) == "" {
		return nil, fmt.Errorf("%w: empty filter value", core.ErrNoSelection)
	}
	col := header.ColumnOf(sel.Column)
	if col == 0 {
		return nil, core.NewInvalidColumnError(sel.Column)
	}

	target := grid.Fold(strings.TrimSpace(sel.Value))
	var matched []grid.Row
	for _, row := range g.Rows {
		if row.Index <= header.Index {
			continue
		}
		cell := row.Cell(col)
		if cell.IsEmpty() {
			continue
		}
		if grid.Fold(cell.ValueText()) == target || grid.Fold(cell.Text) == target {
			matched = append(matched, row)
		}
	}
	return matched, nil
}
