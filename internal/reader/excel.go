package reader

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ledgersmith/every-penny-counts/internal/common"
	"github.com/ledgersmith/every-penny-counts/internal/model"
)

// ReadExcel decodes the first sheet of an Excel workbook. Cells come back
// as display strings, which is exactly what the pipeline's parsers expect.
func ReadExcel(path string) (model.Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close workbook", "file", path, "error", closeErr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return model.Document{}, fmt.Errorf("%w: workbook has no sheets", common.ErrNoRows)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return model.Document{Filename: filepath.Base(path)}, nil
	}

	doc := model.Document{
		Filename: filepath.Base(path),
		Columns:  rows[0],
	}

	for _, record := range rows[1:] {
		row := make(model.Row, len(doc.Columns))
		for i, col := range doc.Columns {
			if i < len(record) && record[i] != "" {
				row[col] = record[i]
			}
		}
		doc.Rows = append(doc.Rows, row)
	}

	return doc, nil
}
