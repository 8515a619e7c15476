package excel

import (
	"path/filepath"
	"strings"
)

// FileType is the input format, derived from the file extension
type FileType string

const (
	FileTypeXLSX      FileType = "xlsx"
	FileTypeCSV       FileType = "csv"
	FileTypeLegacyXLS FileType = "xls"
	FileTypeUnknown   FileType = ""
)

// DetectFileType maps a file name to its input format
func DetectFileType(name string) FileType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FileTypeXLSX
	case ".csv":
		return FileTypeCSV
	case ".xls":
		return FileTypeLegacyXLS
	default:
		return FileTypeUnknown
	}
}

// AllowedExtension reports whether name ends with one of exts, ignoring case
func AllowedExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range exts {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// EnsureExtension appends ext to path unless it already ends with it, ignoring case
func EnsureExtension(path, ext string) string {
	if ext == "" || strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext)) {
		return path
	}
	return path + ext
}
