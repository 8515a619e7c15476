package grid

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold lower-cases s for case-insensitive comparison. A Caser keeps state,
// so a fresh one is built per call.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// EqualFold reports whether a and b are equal after Fold
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
