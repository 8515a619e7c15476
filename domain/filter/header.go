package filter

import (
	"fmt"

	"xlfilter/domain/core"
	"xlfilter/domain/grid"
)

// LocateHeaders scans g top to bottom, left to right, and returns the first
// row where the number of cells matching the header set reaches
// det.MinMatches. How matches are counted depends on det.Mode.
func LocateHeaders(g *grid.Grid, hs HeaderSet, det Detection) (HeaderRow, error) {
	if hs.Len() == 0 {
		return HeaderRow{}, fmt.Errorf("%w: header set is empty", core.ErrUnsupportedLayout)
	}
	threshold := det.MinMatches
	if threshold < 1 {
		threshold = DefaultDetection().MinMatches
	}

	matches := 0
	for _, row := range g.Rows {
		if det.Mode != DetectCumulative {
			matches = 0
		}
		for _, cell := range row.Cells {
			if cell.IsEmpty() || !hs.Contains(cell.Text) {
				continue
			}
			matches++
			if matches >= threshold {
				return newHeaderRow(row)
			}
		}
	}

	return HeaderRow{}, fmt.Errorf("%w: fewer than %d of [%s] found in %d rows", core.ErrUnsupportedLayout, threshold, hs, g.MaxRow())
}

func newHeaderRow(row grid.Row) (HeaderRow, error) {
	h := HeaderRow{Index: row.Index, Headers: row.Texts(), Row: row}
	if len(h.Names()) == 0 {
		return HeaderRow{}, fmt.Errorf("%w: row %d", core.ErrEmptyHeaderSet, row.Index)
	}
	return h, nil
}
