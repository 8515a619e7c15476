// Package profiling summarizes the columns of a filter result.
package profiling

import (
	"strconv"
	"strings"

	"xlfilter/domain/filter"
	"xlfilter/domain/grid"
)

// DataProfiler builds per-column summaries
type DataProfiler struct {
	analyzer *DistributionAnalyzer
}

// NewDataProfiler creates a new data profiler
func NewDataProfiler() *DataProfiler {
	return &DataProfiler{analyzer: NewDistributionAnalyzer()}
}

// ProfileColumn summarizes one result column
func (dp *DataProfiler) ProfileColumn(column filter.Column) ColumnSummary {
	summary := ColumnSummary{Label: column.Label, Values: len(column.Values)}

	distinct := make(map[string]bool)
	numbers := make([]float64, 0, len(column.Values))
	for _, cell := range column.Values {
		if cell.IsEmpty() {
			continue
		}
		summary.NonEmpty++
		distinct[grid.Fold(cell.Text)] = true
		if v, ok := numericValue(cell); ok {
			summary.Numeric++
			numbers = append(numbers, v)
		}
	}
	summary.Distinct = len(distinct)

	if summary.Numeric > 0 && summary.Numeric == summary.NonEmpty {
		if ns, err := dp.analyzer.AnalyzeDistribution(numbers); err == nil {
			summary.Stats = &ns
		}
	}
	return summary
}

// ProfileResult summarizes every column of result, in output order
func (dp *DataProfiler) ProfileResult(result *filter.ResultData) []ColumnSummary {
	if result == nil {
		return nil
	}
	summaries := make([]ColumnSummary, 0, len(result.Columns))
	for _, column := range result.Columns {
		summaries = append(summaries, dp.ProfileColumn(column))
	}
	return summaries
}

// numericValue accepts typed numbers and text that parses as a plain number
func numericValue(cell grid.Cell) (float64, bool) {
	if v, ok := cell.Value.(float64); ok {
		return v, true
	}
	if cell.Kind != grid.KindText {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell.Text), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
