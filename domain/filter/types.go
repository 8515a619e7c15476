// Package filter holds the header detection, row filtering and projection
// logic. It works on grid.Grid values only and knows nothing about files or
// user interaction.
package filter

import (
	"fmt"
	"strings"

	"xlfilter/domain/grid"
)

// HeaderSet is the fixed, ordered list of recognized output column labels.
// It is immutable once built.
type HeaderSet struct {
	labels []string
	keys   []string
}

// NewHeaderSet builds a header set, dropping blank and duplicate labels
func NewHeaderSet(labels ...string) HeaderSet {
	hs := HeaderSet{}
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		key := grid.Fold(label)
		if seen[key] {
			continue
		}
		seen[key] = true
		hs.labels = append(hs.labels, label)
		hs.keys = append(hs.keys, key)
	}
	return hs
}

// DefaultHeaderSet returns the stock employee-sheet labels
func DefaultHeaderSet() HeaderSet {
	return NewHeaderSet("Full Name", "Position", "Department", "Hire Date", "Salary")
}

// Labels returns a copy of the labels in their fixed order
func (hs HeaderSet) Labels() []string {
	out := make([]string, len(hs.labels))
	copy(out, hs.labels)
	return out
}

// Len returns the number of labels
func (hs HeaderSet) Len() int {
	return len(hs.labels)
}

// Contains reports whether text matches a label case-insensitively
func (hs HeaderSet) Contains(text string) bool {
	return hs.IndexOf(text) >= 0
}

// IndexOf returns the position of the label matching text, or -1
func (hs HeaderSet) IndexOf(text string) int {
	if text == "" {
		return -1
	}
	key := grid.Fold(text)
	for i, k := range hs.keys {
		if k == key {
			return i
		}
	}
	return -1
}

func (hs HeaderSet) String() string {
	return strings.Join(hs.labels, ", ")
}

// DetectionMode selects how header matches are counted while scanning
type DetectionMode string

const (
	// DetectPerRow counts matches for each row separately
	DetectPerRow DetectionMode = "per-row"
	// DetectCumulative keeps one counter across the whole scan, as the
	// legacy tool did
	DetectCumulative DetectionMode = "cumulative"
)

// ParseDetectionMode accepts "per-row" or "cumulative" in any case
func ParseDetectionMode(s string) (DetectionMode, error) {
	switch DetectionMode(strings.ToLower(strings.TrimSpace(s))) {
	case DetectPerRow, "":
		return DetectPerRow, nil
	case DetectCumulative:
		return DetectCumulative, nil
	default:
		return "", fmt.Errorf("unknown detection mode %q (want %s or %s)", s, DetectPerRow, DetectCumulative)
	}
}

// Detection configures the header locator
type Detection struct {
	Mode       DetectionMode
	MinMatches int
}

// DefaultDetection counts per row and needs two matching cells
func DefaultDetection() Detection {
	return Detection{Mode: DetectPerRow, MinMatches: 2}
}

// HeaderRow is the detected header row of a grid
type HeaderRow struct {
	Index   int      // 1-based row number
	Headers []string // display text of every cell, empty strings kept
	Row     grid.Row
}

// Names returns the non-empty headers, in column order
func (h HeaderRow) Names() []string {
	names := make([]string, 0, len(h.Headers))
	for _, name := range h.Headers {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	return names
}

// ColumnOf returns the 1-based column whose header equals name
// case-insensitively, or 0
func (h HeaderRow) ColumnOf(name string) int {
	if name == "" {
		return 0
	}
	for i, header := range h.Headers {
		if header != "" && grid.EqualFold(header, name) {
			return i + 1
		}
	}
	return 0
}

// Selection is the user's fully resolved filter request
type Selection struct {
	Column string
	Value  string
}
