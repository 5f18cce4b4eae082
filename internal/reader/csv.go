package reader

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ledgersmith/every-penny-counts/internal/model"
)

// ReadCSV decodes a CSV export. The first record is taken as the header;
// every cell stays a raw string for the pipeline to interpret. Ragged rows
// are tolerated because banks pad (or truncate) trailing columns freely.
func ReadCSV(r io.Reader, filename string) (model.Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return model.Document{Filename: filename}, nil
	}
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to read CSV header: %w", err)
	}

	doc := model.Document{
		Filename: filename,
		Columns:  header,
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Document{}, fmt.Errorf("failed to read CSV record: %w", err)
		}

		row := make(model.Row, len(header))
		for i, col := range header {
			if i < len(record) && record[i] != "" {
				row[col] = record[i]
			}
		}
		doc.Rows = append(doc.Rows, row)
	}

	return doc, nil
}
