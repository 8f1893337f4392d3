// Package validation holds the input checks shared by configuration loading,
// the batch processor and the upload handler.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsValidInputDir checks that path exists and is a directory.
func IsValidInputDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input directory does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking input directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path is not a directory: %s", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given format is supported. Matching is
// case-insensitive.
func IsValidOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "csv", "xlsx":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'csv', 'xlsx'", format)
	}
}

// IsPDFName reports whether name carries a .pdf extension, in any case.
func IsPDFName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
