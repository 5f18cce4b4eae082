// Package reader decodes bank export files into in-memory Documents for the
// processing engine. The engine itself never touches bytes or the
// filesystem; everything format-specific stops here.
package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledgersmith/every-penny-counts/internal/common"
	"github.com/ledgersmith/every-penny-counts/internal/model"
)

// ReadFile decodes a file based on its extension. PDF statements are
// recognized but not supported.
func ReadFile(path string) (model.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return model.Document{}, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(f, filepath.Base(path))
	case ".xls", ".xlsx":
		return ReadExcel(path)
	case ".ofx", ".qfx":
		f, err := os.Open(path)
		if err != nil {
			return model.Document{}, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		return ReadOFX(f, filepath.Base(path))
	default:
		return model.Document{}, fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, filepath.Ext(path))
	}
}
