package excel

// ExcelConfig holds configuration for reading input sheets and writing results
type ExcelConfig struct {
	// SheetName selects the input sheet; empty means the workbook's active sheet
	SheetName       string   `json:"sheet_name" yaml:"sheet_name"`
	OutputSheetName string   `json:"output_sheet_name" yaml:"output_sheet_name"`
	Extensions      []string `json:"extensions" yaml:"extensions"`
	OutputExtension string   `json:"output_extension" yaml:"output_extension"`
}

// DefaultExcelConfig returns sensible defaults for Excel processing
func DefaultExcelConfig() ExcelConfig {
	return ExcelConfig{
		OutputSheetName: "Filtered Data",
		Extensions:      []string{".xlsx", ".xlsm", ".csv"},
		OutputExtension: ".xlsx",
	}
}
