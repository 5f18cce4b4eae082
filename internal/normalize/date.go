// Package normalize converts raw date and amount cells into canonical
// values. Everything here is a pure function over a single cell; failures
// are reported as a missing result, never an error, because the caller's
// contract is skip-and-continue.
package normalize

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ISODate is the canonical output format for all transaction dates.
const ISODate = "2006-01-02"

// Known exact layouts, tried in order. US conventions come before EU so
// ambiguous numeric dates resolve month-first, matching the fallback
// parser's bias below.
var dateLayouts = []string{
	"2006-01-02", // ISO, also makes normalization idempotent
	"01/02/2006",
	"02/01/2006",
	"01-02-2006",
	"02-01-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"20060102",
	"01/02/06",
	"02/01/06",
}

// Date normalizes a raw date cell to YYYY-MM-DD. The ok result is false
// when the cell is blank or no known layout (nor the natural-language
// fallback) can make sense of it.
func Date(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ISODate), true
		}
	}

	// Natural-language fallback, biased month-first for ambiguous
	// numeric dates ("Jan 2nd 2024", "2024.01.02", ...).
	if t, err := dateparse.ParseAny(s, dateparse.PreferMonthFirst(true)); err == nil {
		return t.Format(ISODate), true
	}

	return "", false
}
