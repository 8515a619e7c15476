package filter

import (
	"xlfilter/domain/grid"
)

// Column is one output column: the header text as found in the input and a
// value per matched row
type Column struct {
	Label  string
	Values []grid.Cell
}

// ResultData is the ordered projection of matched rows onto the header set
type ResultData struct {
	Columns []Column
	Count   int // matched rows
}

// Labels returns the column labels in output order
func (r *ResultData) Labels() []string {
	labels := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		labels[i] = c.Label
	}
	return labels
}

// Column returns the column with the given label, if present
func (r *ResultData) Column(label string) (Column, bool) {
	for _, c := range r.Columns {
		if c.Label == label {
			return c, true
		}
	}
	return Column{}, false
}

// Rows zips the column values by index into output rows
func (r *ResultData) Rows() [][]grid.Cell {
	rows := make([][]grid.Cell, r.Count)
	for i := range rows {
		row := make([]grid.Cell, len(r.Columns))
		for j, c := range r.Columns {
			row[j] = c.Values[i]
		}
		rows[i] = row
	}
	return rows
}

// IsEmpty reports whether no rows matched
func (r *ResultData) IsEmpty() bool {
	return r == nil || r.Count == 0
}

// Project keeps, in header-set order, the columns of headers that match a
// header-set label. Only the first matching input column is used for each
// label, so every column holds exactly len(matched) values.
func Project(matched []grid.Row, header HeaderRow, hs HeaderSet) *ResultData {
	result := &ResultData{Count: len(matched)}

	for _, label := range hs.Labels() {
		col := header.ColumnOf(label)
		if col == 0 {
			continue
		}
		values := make([]grid.Cell, len(matched))
		for i, row := range matched {
			values[i] = row.Cell(col)
		}
		result.Columns = append(result.Columns, Column{
			Label:  header.Headers[col-1],
			Values: values,
		})
	}

	return result
}
