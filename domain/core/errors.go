package core

import (
	"errors"
	"fmt"
)

// Domain errors - one per failure the shells report to the user
var (
	ErrFileOpen          = errors.New("input file cannot be opened")
	ErrUnsupportedLayout = errors.New("header row not found")
	ErrEmptyHeaderSet    = errors.New("header row has no usable column names")
	ErrNoSelection       = errors.New("no selection made")
	ErrNoMatches         = errors.New("no data found")
	ErrFileWrite         = errors.New("output file cannot be saved")
	ErrInvalidColumn     = errors.New("column not present in header row")
)

// Error constructors with context
func NewFileOpenError(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrFileOpen, path, err)
}

func NewFileWriteError(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrFileWrite, path, err)
}

func NewNoMatchesError(column, value string) error {
	return fmt.Errorf("%w for %q in column %q", ErrNoMatches, value, column)
}

func NewInvalidColumnError(column string) error {
	return fmt.Errorf("%w: %q", ErrInvalidColumn, column)
}

// IsCancellation reports a voluntary abort that should not be shown as a failure
func IsCancellation(err error) bool {
	return errors.Is(err, ErrNoSelection)
}

// IsLayoutError reports errors caused by the shape of the input sheet
func IsLayoutError(err error) bool {
	return errors.Is(err, ErrUnsupportedLayout) ||
		errors.Is(err, ErrEmptyHeaderSet)
}

// IsInputError reports errors caused by what the user supplied
func IsInputError(err error) bool {
	return errors.Is(err, ErrFileOpen) ||
		errors.Is(err, ErrInvalidColumn) ||
		errors.Is(err, ErrNoSelection)
}
