// Package grid models a worksheet as rows of positioned cells.
package grid

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Kind classifies the value stored in a cell
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "empty"
	}
}

// Cell is a single worksheet value and its 1-based position
type Cell struct {
	Row   int
	Col   int
	Kind  Kind
	Text  string      // display text as the workbook renders it
	Value interface{} // string, float64, bool or nil

	// Number format of a numeric cell whose display differs from its value
	NumFmt    int // built-in format ID, 0 for General
	CustomFmt string
}

// NewTextCell builds a text cell, or an empty cell when text is blank
func NewTextCell(row, col int, text string) Cell {
	if text == "" {
		return Cell{Row: row, Col: col, Kind: KindEmpty}
	}
	return Cell{Row: row, Col: col, Kind: KindText, Text: text, Value: text}
}

// NewNumberCell builds a numeric cell
func NewNumberCell(row, col int, v float64) Cell {
	return Cell{
		Row:   row,
		Col:   col,
		Kind:  KindNumber,
		Text:  strconv.FormatFloat(v, 'f', -1, 64),
		Value: v,
	}
}

// NewBoolCell builds a boolean cell rendered the way spreadsheets show it
func NewBoolCell(row, col int, v bool) Cell {
	text := "FALSE"
	if v {
		text = "TRUE"
	}
	return Cell{Row: row, Col: col, Kind: KindBool, Text: text, Value: v}
}

// IsEmpty reports whether the cell carries no value
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty || (c.Kind == KindText && c.Text == "")
}

// ValueText renders the stored value without any number format applied
func (c Cell) ValueText() string {
	switch v := c.Value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case string:
		return v
	default:
		return c.Text
	}
}

// Formatted reports whether the cell carries a number format
func (c Cell) Formatted() bool {
	return c.NumFmt != 0 || c.CustomFmt != ""
}

// Ref returns the A1-style reference of the cell, or "" for an unpositioned cell
func (c Cell) Ref() string {
	if c.Row < 1 || c.Col < 1 {
		return ""
	}
	ref, err := excelize.CoordinatesToCellName(c.Col, c.Row)
	if err != nil {
		return ""
	}
	return ref
}

// Row is an ordered sequence of cells. Rows of one grid may differ in length.
type Row struct {
	Index int // 1-based row number in the source sheet
	Cells []Cell
}

// Cell returns the cell at 1-based column col, or an empty cell past the row end
func (r Row) Cell(col int) Cell {
	if col < 1 || col > len(r.Cells) {
		return Cell{Row: r.Index, Col: col, Kind: KindEmpty}
	}
	return r.Cells[col-1]
}

// Texts returns the display text of every cell in order
func (r Row) Texts() []string {
	out := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Text
	}
	return out
}

// Grid is the read-only content of one worksheet
type Grid struct {
	Source string // file the grid was read from
	Sheet  string
	Rows   []Row
}

// Len returns the number of rows
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Rows)
}

// MaxRow returns the highest 1-based row index present in the grid
func (g *Grid) MaxRow() int {
	if g.Len() == 0 {
		return 0
	}
	return g.Rows[len(g.Rows)-1].Index
}

// FromStrings builds a text-only grid from raw rows; row i becomes index i+1
func FromStrings(rows [][]string) *Grid {
	g := &Grid{Rows: make([]Row, 0, len(rows))}
	for i, raw := range rows {
		row := Row{Index: i + 1, Cells: make([]Cell, len(raw))}
		for j, text := range raw {
			row.Cells[j] = NewTextCell(i+1, j+1, text)
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}
