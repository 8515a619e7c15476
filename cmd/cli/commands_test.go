package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"xlfilter/adapters/excel"
	"xlfilter/app"
	"xlfilter/domain/core"
	"xlfilter/domain/filter"
	"xlfilter/internal"
	"xlfilter/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const staffCSV = "Name,Position,Department,Salary\nAnn,Clerk,Sales,1000\nBob,Engineer,R&D,2000\nCid,Manager,sales,3000\n"

func testService(t *testing.T) (*app.FilterService, string) {
	t.Helper()
	cfg := config.Default()
	cfg.Headers = filter.NewHeaderSet("Name", "Position", "Department", "Hire Date", "Salary")
	logger := internal.NewNopLogger()
	svc := app.NewFilterService(cfg, excel.NewDataReader(cfg.Excel, logger), excel.NewWriter(cfg.Excel, logger), logger)

	path := filepath.Join(t.TempDir(), "staff.csv")
	require.NoError(t, os.WriteFile(path, []byte(staffCSV), 0o644))
	return svc, path
}

// scriptedPrompter replays canned answers and records what was asked
type scriptedPrompter struct {
	column   string
	answers  []string
	initials []string
	problems []string
}

func (p *scriptedPrompter) PickColumn(columns []string) (string, error) {
	if p.column == "" {
		return "", core.ErrNoSelection
	}
	return p.column, nil
}

func (p *scriptedPrompter) Ask(title, initial, problem string) (string, error) {
	p.initials = append(p.initials, initial)
	p.problems = append(p.problems, problem)
	if len(p.answers) == 0 {
		return "", core.ErrNoSelection
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	if answer == "" {
		answer = initial
	}
	return answer, nil
}

func TestRunHeaders(t *testing.T) {
	svc, path := testService(t)
	var out bytes.Buffer

	require.NoError(t, runHeaders(&out, svc, path))
	assert.Contains(t, out.String(), "Header row 1")
	assert.Contains(t, out.String(), "3. Department")
}

func TestRunFilterDefaultPath(t *testing.T) {
	svc, path := testService(t)
	var out bytes.Buffer

	err := runFilter(&out, svc, path, filter.Selection{Column: "department", Value: "SALES"}, "")
	require.NoError(t, err)

	want := filepath.Join(filepath.Dir(path), "Filter_column_Department.xlsx")
	assert.FileExists(t, want)
	assert.Contains(t, out.String(), "Saved 2 rows to "+want)
	assert.Contains(t, out.String(), "sum=4000")
}

func TestRunFilterNoMatches(t *testing.T) {
	svc, path := testService(t)
	var out bytes.Buffer

	err := runFilter(&out, svc, path, filter.Selection{Column: "Department", Value: "Legal"}, "")
	require.NoError(t, err)
	assert.Equal(t, "No data found.\n", out.String())
	assert.NoFileExists(t, filepath.Join(filepath.Dir(path), "Filter_column_Department.xlsx"))
}

func TestRunPickRetriesFailedSave(t *testing.T) {
	svc, path := testService(t)
	dir := filepath.Dir(path)
	bad := filepath.Join(dir, "missing", "out.xlsx")
	good := filepath.Join(dir, "result")

	p := &scriptedPrompter{column: "Department", answers: []string{"sales", bad, good}}
	var out bytes.Buffer

	require.NoError(t, runPick(&out, svc, path, p))
	assert.FileExists(t, good+".xlsx")
	assert.Contains(t, out.String(), "2 matching rows")

	require.Len(t, p.initials, 3)
	assert.Equal(t, filepath.Join(dir, "Filter_column_Department.xlsx"), p.initials[1])
	assert.Empty(t, p.problems[1])
	assert.Equal(t, bad, p.initials[2])
	assert.Contains(t, p.problems[2], core.ErrFileWrite.Error())
}

func TestRunPickCancellation(t *testing.T) {
	svc, path := testService(t)

	err := runPick(&bytes.Buffer{}, svc, path, &scriptedPrompter{})
	assert.True(t, core.IsCancellation(err))

	err = runPick(&bytes.Buffer{}, svc, path, &scriptedPrompter{column: "Department", answers: []string{"sales"}})
	assert.True(t, core.IsCancellation(err))
}

func TestRunPickNoMatchesSkipsSavePrompt(t *testing.T) {
	svc, path := testService(t)
	p := &scriptedPrompter{column: "Department", answers: []string{"Legal"}}
	var out bytes.Buffer

	require.NoError(t, runPick(&out, svc, path, p))
	assert.Equal(t, "No data found.\n", out.String())
	assert.Len(t, p.initials, 1)
}
