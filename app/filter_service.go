package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"xlfilter/domain/core"
	"xlfilter/domain/filter"
	"xlfilter/domain/grid"
	"xlfilter/internal"
	"xlfilter/internal/config"
	"xlfilter/internal/profiling"
	"xlfilter/ports"
)

// FilterService runs the open → pick → filter → save sequence shared by the
// terminal and HTTP shells. It keeps no state between calls.
type FilterService struct {
	config   config.Config
	reader   ports.GridReaderPort
	writer   ports.ResultWriterPort
	profiler *profiling.DataProfiler
	logger   *internal.Logger
}

// Workbook is an opened input sheet with its detected header row
type Workbook struct {
	ID     core.OperationID
	Grid   *grid.Grid
	Header filter.HeaderRow
}

// Columns lists the header names a user can filter on
func (w *Workbook) Columns() []string {
	return w.Header.Names()
}

// FilterOutcome is the result of a completed non-interactive run
type FilterOutcome struct {
	Path    string
	Result  *filter.ResultData
	Summary []profiling.ColumnSummary
}

// NewFilterService creates a filter service
func NewFilterService(cfg config.Config, reader ports.GridReaderPort, writer ports.ResultWriterPort, logger *internal.Logger) *FilterService {
	return &FilterService{
		config:   cfg,
		reader:   reader,
		writer:   writer,
		profiler: profiling.NewDataProfiler(),
		logger:   logger,
	}
}

// Open reads the file at path and locates its header row
func (s *FilterService) Open(path string) (*Workbook, error) {
	startTime := time.Now()
	g, err := s.reader.ReadFile(path)
	if err != nil {
		s.logger.Warn("[FilterService] open %s failed: %v", path, err)
		return nil, err
	}
	wb, err := s.locate(g)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("[FilterService] %s opened in %dms", path, time.Since(startTime).Milliseconds())
	return wb, nil
}

// OpenReader is Open for content that is not on disk, such as an upload
func (s *FilterService) OpenReader(src io.Reader, name string) (*Workbook, error) {
	g, err := s.reader.Read(src, name)
	if err != nil {
		s.logger.Warn("[FilterService] read %s failed: %v", name, err)
		return nil, err
	}
	return s.locate(g)
}

func (s *FilterService) locate(g *grid.Grid) (*Workbook, error) {
	header, err := filter.LocateHeaders(g, s.config.Headers, s.config.Detection)
	if err != nil {
		s.logger.Warn("[FilterService] %s: %v", g.Source, err)
		return nil, err
	}

	wb := &Workbook{ID: core.NewOperationID(), Grid: g, Header: header}
	s.logger.Info("[FilterService] op=%s header row %d in %s: %s",
		wb.ID, header.Index, filepath.Base(g.Source), strings.Join(header.Names(), ", "))
	return wb, nil
}

// Filter selects the rows matching sel and projects them onto the header set.
// Zero matching rows is reported as ErrNoMatches.
func (s *FilterService) Filter(wb *Workbook, sel filter.Selection) (*filter.ResultData, error) {
	matched, err := filter.FilterRows(wb.Grid, wb.Header, sel)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		s.logger.Info("[FilterService] op=%s no rows where %s = %q", wb.ID, sel.Column, sel.Value)
		return nil, core.NewNoMatchesError(sel.Column, sel.Value)
	}

	result := filter.Project(matched, wb.Header, s.config.Headers)
	s.logger.Info("[FilterService] op=%s %d rows where %s = %q, %d output columns",
		wb.ID, result.Count, sel.Column, sel.Value, len(result.Columns))
	return result, nil
}

// Save writes result to path and returns the path actually written
func (s *FilterService) Save(result *filter.ResultData, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: no output path", core.ErrNoSelection)
	}
	if result.IsEmpty() {
		return "", fmt.Errorf("%w: nothing to save", core.ErrNoMatches)
	}
	return s.writer.SaveAs(result, path)
}

// Write streams result as a workbook
func (s *FilterService) Write(result *filter.ResultData, out io.Writer) error {
	return s.writer.Write(result, out)
}

// Summarize profiles each output column
func (s *FilterService) Summarize(result *filter.ResultData) []profiling.ColumnSummary {
	return s.profiler.ProfileResult(result)
}

// SuggestFileName fills the configured template with the column name
func (s *FilterService) SuggestFileName(column string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(column)
	return strings.ReplaceAll(s.config.Output.FileNameTemplate, config.ColumnPlaceholder, safe)
}

// SuggestPath places the suggested file name next to the workbook's source
func (s *FilterService) SuggestPath(wb *Workbook, column string) string {
	return filepath.Join(filepath.Dir(wb.Grid.Source), s.SuggestFileName(wb.CanonicalColumn(column)))
}

// Run performs the whole sequence without interaction. An empty outPath
// saves the suggested file name next to the input.
func (s *FilterService) Run(inPath string, sel filter.Selection, outPath string) (*FilterOutcome, error) {
	wb, err := s.Open(inPath)
	if err != nil {
		return nil, err
	}

	result, err := s.Filter(wb, sel)
	if err != nil {
		return nil, err
	}

	if outPath == "" {
		outPath = s.SuggestPath(wb, sel.Column)
	}
	saved, err := s.Save(result, outPath)
	if err != nil {
		return nil, err
	}

	return &FilterOutcome{Path: saved, Result: result, Summary: s.Summarize(result)}, nil
}

// CanonicalColumn returns the header text as written in the sheet, or name
// when the sheet has no such column
func (w *Workbook) CanonicalColumn(name string) string {
	if col := w.Header.ColumnOf(name); col > 0 {
		return w.Header.Headers[col-1]
	}
	return name
}
