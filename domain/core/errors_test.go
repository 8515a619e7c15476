package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		cancellation bool
		layout       bool
		input        bool
	}{
		{"file open", NewFileOpenError("a.xlsx", errors.New("zip: not a valid zip file")), false, false, true},
		{"layout", fmt.Errorf("locate: %w", ErrUnsupportedLayout), false, true, false},
		{"empty headers", ErrEmptyHeaderSet, false, true, false},
		{"cancel", fmt.Errorf("picker: %w", ErrNoSelection), true, false, true},
		{"no matches", NewNoMatchesError("Department", "Sales"), false, false, false},
		{"write", NewFileWriteError("/ro/out.xlsx", errors.New("permission denied")), false, false, false},
		{"column", NewInvalidColumnError("Nope"), false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCancellation(tt.err); got != tt.cancellation {
				t.Errorf("IsCancellation = %v, want %v", got, tt.cancellation)
			}
			if got := IsLayoutError(tt.err); got != tt.layout {
				t.Errorf("IsLayoutError = %v, want %v", got, tt.layout)
			}
			if got := IsInputError(tt.err); got != tt.input {
				t.Errorf("IsInputError = %v, want %v", got, tt.input)
			}
		})
	}
}

func TestFileWriteErrorKeepsCause(t *testing.T) {
	err := NewFileWriteError("/ro/out.xlsx", errors.New("permission denied"))
	if !errors.Is(err, ErrFileWrite) {
		t.Fatalf("expected ErrFileWrite, got %v", err)
	}
	want := "output file cannot be saved: /ro/out.xlsx: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFileOpenErrorKeepsChain(t *testing.T) {
	_, cause := os.Open(filepath.Join(t.TempDir(), "missing.xlsx"))
	err := NewFileOpenError("missing.xlsx", cause)

	if !errors.Is(err, ErrFileOpen) {
		t.Fatalf("expected ErrFileOpen, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("expected *fs.PathError in chain, got %T", err)
	}
}

func TestFileWriteErrorUnwrapsCause(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/ro/out.xlsx", Err: fs.ErrPermission}
	err := NewFileWriteError("/ro/out.xlsx", cause)

	if !errors.Is(err, ErrFileWrite) || !errors.Is(err, fs.ErrPermission) {
		t.Errorf("expected ErrFileWrite and fs.ErrPermission in chain, got %v", err)
	}
}
