package filter

import (
	"errors"
	"testing"

	"xlfilter/domain/core"
	"xlfilter/domain/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employeeHeaders() HeaderSet {
	return NewHeaderSet("Name", "Position", "Department", "Hire Date", "Salary")
}

func TestLocateHeaders(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]string
		mode      DetectionMode
		wantIndex int
		wantErr   error
	}{
		{
			name: "header below title rows",
			rows: [][]string{
				{"Staff report"},
				{""},
				{"Name", "Position", "Department", "Hire Date", "Salary", "Extra"},
				{"Ann", "Clerk", "Sales", "2020-01-01", "1000", "x"},
			},
			mode:      DetectPerRow,
			wantIndex: 3,
		},
		{
			name:      "match ignores case",
			rows:      [][]string{{"NAME", "position"}, {"a", "b"}},
			mode:      DetectPerRow,
			wantIndex: 1,
		},
		{
			name:    "single matching cell is not enough",
			rows:    [][]string{{"Name", "Other"}, {"a", "b"}},
			mode:    DetectPerRow,
			wantErr: core.ErrUnsupportedLayout,
		},
		{
			name:    "empty grid",
			rows:    nil,
			mode:    DetectPerRow,
			wantErr: core.ErrUnsupportedLayout,
		},
		{
			name:    "per-row does not add matches across rows",
			rows:    [][]string{{"Name"}, {"Salary", "junk"}, {"x", "y"}},
			mode:    DetectPerRow,
			wantErr: core.ErrUnsupportedLayout,
		},
		{
			name:      "cumulative adds matches across rows",
			rows:      [][]string{{"Name"}, {"junk", "Salary"}, {"x", "y"}},
			mode:      DetectCumulative,
			wantIndex: 2,
		},
		{
			name:      "cumulative stops at first qualifying row",
			rows:      [][]string{{"Name", "Salary"}, {"Position", "Department"}},
			mode:      DetectCumulative,
			wantIndex: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := Detection{Mode: tt.mode, MinMatches: 2}
			header, err := LocateHeaders(grid.FromStrings(tt.rows), employeeHeaders(), det)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, header.Index)
			assert.Equal(t, tt.rows[tt.wantIndex-1], header.Headers)
		})
	}
}

func TestLocateHeadersFewerThanTwoMatchesAlwaysFails(t *testing.T) {
	grids := [][][]string{
		{{"Salary"}},
		{{"a", "b"}, {"c", "d"}},
		{{"Position", "Unknown"}, {"", ""}, {"foo"}},
	}
	for _, mode := range []DetectionMode{DetectPerRow, DetectCumulative} {
		for _, rows := range grids {
			_, err := LocateHeaders(grid.FromStrings(rows), employeeHeaders(), Detection{Mode: mode, MinMatches: 2})
			assert.ErrorIs(t, err, core.ErrUnsupportedLayout, "mode %s rows %v", mode, rows)
		}
	}

	_, err := LocateHeaders(grid.FromStrings(grids[2]), employeeHeaders(), DefaultDetection())
	assert.Contains(t, err.Error(), "in 3 rows")
}

func TestLocateHeadersMinMatches(t *testing.T) {
	rows := [][]string{
		{"Name", "Position"},
		{"Name", "Position", "Salary"},
	}
	header, err := LocateHeaders(grid.FromStrings(rows), employeeHeaders(), Detection{Mode: DetectPerRow, MinMatches: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, header.Index)
}

func TestLocateHeadersEmptySet(t *testing.T) {
	_, err := LocateHeaders(grid.FromStrings([][]string{{"a"}}), NewHeaderSet(), DefaultDetection())
	assert.ErrorIs(t, err, core.ErrUnsupportedLayout)
}

func TestLocateHeadersUnicodeCase(t *testing.T) {
	hs := NewHeaderSet("ФИО", "Должность", "Отдел")
	rows := [][]string{{"фио", "ДОЛЖНОСТЬ", "отдел"}, {"Иванов", "Инженер", "ИТ"}}

	header, err := LocateHeaders(grid.FromStrings(rows), hs, DefaultDetection())
	require.NoError(t, err)
	assert.Equal(t, 1, header.Index)
	assert.Equal(t, 3, header.ColumnOf("Отдел"))
}

func TestHeaderSet(t *testing.T) {
	hs := NewHeaderSet(" Name ", "name", "", "Salary")

	assert.Equal(t, []string{"Name", "Salary"}, hs.Labels())
	assert.True(t, hs.Contains("SALARY"))
	assert.False(t, hs.Contains(""))
	assert.Equal(t, 1, hs.IndexOf("salary"))
	assert.Equal(t, -1, hs.IndexOf("Position"))

	labels := hs.Labels()
	labels[0] = "mutated"
	assert.Equal(t, "Name", hs.Labels()[0])
}

func TestParseDetectionMode(t *testing.T) {
	mode, err := ParseDetectionMode("Cumulative")
	require.NoError(t, err)
	assert.Equal(t, DetectCumulative, mode)

	mode, err = ParseDetectionMode("")
	require.NoError(t, err)
	assert.Equal(t, DetectPerRow, mode)

	_, err = ParseDetectionMode("sometimes")
	assert.Error(t, err)
}

func TestHeaderRowNames(t *testing.T) {
	h := HeaderRow{Headers: []string{"Name", "", "Salary", "  "}}
	assert.Equal(t, []string{"Name", "Salary"}, h.Names())
	assert.Equal(t, 3, h.ColumnOf("salary"))
	assert.Equal(t, 0, h.ColumnOf(""))
}
