package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"xlfilter/domain/core"
	"xlfilter/domain/grid"
	"xlfilter/internal"

	"github.com/xuri/excelize/v2"
)

// DataReader loads one worksheet of an Excel or CSV file into a grid
type DataReader struct {
	config ExcelConfig
	logger *internal.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(config ExcelConfig, logger *internal.Logger) *DataReader {
	return &DataReader{config: config, logger: logger}
}

// ReadFile opens path, reads the configured sheet and closes the file
func (r *DataReader) ReadFile(path string) (*grid.Grid, error) {
	r.logger.Debug("[DataReader] Starting to read file: %s", path)

	if len(r.config.Extensions) > 0 && !AllowedExtension(path, r.config.Extensions) {
		return nil, core.NewFileOpenError(path, fmt.Errorf("unsupported extension %q", filepath.Ext(path)))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, core.NewFileOpenError(path, err)
	}
	defer file.Close()

	return r.Read(file, path)
}

// Read parses src as the format implied by name
func (r *DataReader) Read(src io.Reader, name string) (*grid.Grid, error) {
	switch DetectFileType(name) {
	case FileTypeXLSX:
		return r.readExcelData(src, name)
	case FileTypeCSV:
		return r.readCSVData(src, name)
	case FileTypeLegacyXLS:
		return nil, core.NewFileOpenError(name, fmt.Errorf("legacy .xls workbooks are not supported, save the file as .xlsx"))
	default:
		return nil, core.NewFileOpenError(name, fmt.Errorf("unsupported file type %q", filepath.Ext(name)))
	}
}

// readExcelData reads the configured (or active) sheet into a grid
func (r *DataReader) readExcelData(src io.Reader, name string) (*grid.Grid, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, core.NewFileOpenError(name, err)
	}
	defer f.Close()
	r.logger.Debug("[DataReader] Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	sheet := r.config.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, core.NewFileOpenError(name, fmt.Errorf("failed to read sheet %q: %w", sheet, err))
	}
	rawRows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, core.NewFileOpenError(name, fmt.Errorf("failed to read sheet %q: %w", sheet, err))
	}
	r.logger.Debug("[DataReader] %s read in %.2fms (%d rows)", sheet, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	g := &grid.Grid{Source: name, Sheet: sheet, Rows: make([]grid.Row, len(rows))}
	for i, values := range rows {
		rowIdx := i + 1
		row := grid.Row{Index: rowIdx, Cells: make([]grid.Cell, len(values))}
		for j, text := range values {
			raw := text
			if i < len(rawRows) && j < len(rawRows[i]) {
				raw = rawRows[i][j]
			}
			row.Cells[j] = r.excelCell(f, sheet, rowIdx, j+1, text, raw)
		}
		g.Rows[i] = row
	}

	r.logger.Info("[DataReader] %s loaded from %s (%d rows)", sheet, filepath.Base(name), g.Len())
	return g, nil
}

// excelCell keeps numbers and booleans typed. A number whose display differs
// from its raw value (thousands separators, dates, percentages) also keeps
// its number format so the writer can show it the same way.
func (r *DataReader) excelCell(f *excelize.File, sheet string, row, col int, text, raw string) grid.Cell {
	if text == "" {
		return grid.Cell{Row: row, Col: col, Kind: grid.KindEmpty}
	}

	ref := grid.Cell{Row: row, Col: col}.Ref()
	if ref == "" {
		return grid.NewTextCell(row, col, text)
	}
	cellType, err := f.GetCellType(sheet, ref)
	if err != nil {
		r.logger.Trace("[DataReader] cell type of %s unavailable: %v", ref, err)
		return grid.NewTextCell(row, col, text)
	}

	switch cellType {
	case excelize.CellTypeBool:
		c := grid.NewBoolCell(row, col, raw == "1" || raw == "TRUE" || raw == "true")
		c.Text = text
		return c
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			break
		}
		c := grid.NewNumberCell(row, col, v)
		c.Text = text
		if text != raw {
			c.NumFmt, c.CustomFmt = r.numberFormat(f, sheet, ref)
		}
		return c
	}
	return grid.NewTextCell(row, col, text)
}

// numberFormat returns the built-in and custom number format of a cell
func (r *DataReader) numberFormat(f *excelize.File, sheet, ref string) (int, string) {
	idx, err := f.GetCellStyle(sheet, ref)
	if err != nil || idx == 0 {
		return 0, ""
	}
	style, err := f.GetStyle(idx)
	if err != nil || style == nil {
		r.logger.Trace("[DataReader] style of %s unavailable: %v", ref, err)
		return 0, ""
	}
	custom := ""
	if style.CustomNumFmt != nil {
		custom = *style.CustomNumFmt
	}
	return style.NumFmt, custom
}

// readCSVData reads CSV data into a text-only grid
func (r *DataReader) readCSVData(src io.Reader, name string) (*grid.Grid, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewFileOpenError(name, fmt.Errorf("failed to read CSV file: %w", err))
	}
	r.logger.Debug("[DataReader] CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	g := grid.FromStrings(rows)
	g.Source = name
	return g, nil
}
