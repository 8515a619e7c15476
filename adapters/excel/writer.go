package excel

import (
	"fmt"
	"io"

	"xlfilter/domain/core"
	"xlfilter/domain/filter"
	"xlfilter/domain/grid"
	"xlfilter/internal"

	"github.com/xuri/excelize/v2"
)

// Writer serializes filter results into single-sheet workbooks
type Writer struct {
	config ExcelConfig
	logger *internal.Logger
}

// NewWriter creates a result writer
func NewWriter(config ExcelConfig, logger *internal.Logger) *Writer {
	return &Writer{config: config, logger: logger}
}

// Build creates the workbook in memory. The caller closes it.
func (w *Writer) Build(result *filter.ResultData) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := w.config.OutputSheetName
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to name sheet %q: %w", sheet, err)
		}
	}

	// Header row
	for i, label := range result.Labels() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			f.Close()
			return nil, err
		}
	}

	// Data rows
	styles := make(map[string]int)
	for r, row := range result.Rows() {
		rowIdx := r + 2
		for c, value := range row {
			if value.IsEmpty() {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, cellValue(value)); err != nil {
				f.Close()
				return nil, err
			}
			if value.Kind != grid.KindNumber || !value.Formatted() {
				continue
			}
			styleID, err := numberStyle(f, styles, value)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("number format of %s: %w", cell, err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}

// SaveAs writes the workbook to path, appending the output extension when
// missing, and returns the path actually written
func (w *Writer) SaveAs(result *filter.ResultData, path string) (string, error) {
	path = EnsureExtension(path, w.config.OutputExtension)

	f, err := w.Build(result)
	if err != nil {
		return "", core.NewFileWriteError(path, err)
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		w.logger.Warn("[Writer] saving %s failed: %v", path, err)
		return "", core.NewFileWriteError(path, err)
	}

	w.logger.Info("[Writer] saved %d rows x %d columns to %s", result.Count, len(result.Columns), path)
	return path, nil
}

// Write streams the workbook to out
func (w *Writer) Write(result *filter.ResultData, out io.Writer) error {
	f, err := w.Build(result)
	if err != nil {
		return core.NewFileWriteError("response", err)
	}
	defer f.Close()

	if _, err := f.WriteTo(out); err != nil {
		return core.NewFileWriteError("response", err)
	}
	return nil
}

// numberStyle returns a style carrying the cell's number format, creating it
// once per distinct format
func numberStyle(f *excelize.File, cache map[string]int, c grid.Cell) (int, error) {
	key := fmt.Sprintf("%d|%s", c.NumFmt, c.CustomFmt)
	if id, ok := cache[key]; ok {
		return id, nil
	}
	style := &excelize.Style{NumFmt: c.NumFmt}
	if c.CustomFmt != "" {
		custom := c.CustomFmt
		style.CustomNumFmt = &custom
	}
	id, err := f.NewStyle(style)
	if err != nil {
		return 0, err
	}
	cache[key] = id
	return id, nil
}

func cellValue(c grid.Cell) interface{} {
	switch v := c.Value.(type) {
	case float64, bool:
		return v
	case string:
		return v
	default:
		return c.Text
	}
}
