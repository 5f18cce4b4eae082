package model

// Row maps a column name to the raw cell text for one record. A column that
// had no value for the row is simply absent from the map; readers never
// insert placeholder strings.
type Row map[string]string

// Get returns the cell for a column and whether a non-empty value exists.
// Whitespace-only cells count as absent, matching how bank exports pad
// unused columns.
func (r Row) Get(column string) (string, bool) {
	v, ok := r[column]
	if !ok {
		return "", false
	}
	if isBlank(v) {
		return "", false
	}
	return v, true
}

func isBlank(s string) bool {
	for _, c := range s {
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			return false
		}
	}
	return true
}

// Document is a fully materialized tabular export: the filename hint, the
// column names in source order, and the data rows. How the bytes were
// decoded is the reader's business; the pipeline only ever sees this.
type Document struct {
	Filename string
	Columns  []string
	Rows     []Row
}

// Result is the outcome of processing one document. Skipped counts rows
// dropped for unresolved fields; it is a diagnostic, not an error.
type Result struct {
	Transactions []Transaction
	Skipped      int
}
