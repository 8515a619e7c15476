package ports

import (
	"io"

	"xlfilter/domain/filter"
	"xlfilter/domain/grid"
)

// GridReaderPort loads a worksheet into a grid
type GridReaderPort interface {
	// ReadFile opens, reads and closes the file at path
	ReadFile(path string) (*grid.Grid, error)
	// Read parses src in the format implied by name
	Read(src io.Reader, name string) (*grid.Grid, error)
}

// ResultWriterPort serializes a filter result as a workbook
type ResultWriterPort interface {
	// SaveAs writes to path and returns the path actually written
	SaveAs(result *filter.ResultData, path string) (string, error)
	Write(result *filter.ResultData, out io.Writer) error
}
