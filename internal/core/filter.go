package core

import (
	"strings"

	"github.com/JonMunkholm/resourcehub/internal/csv"
)

// TextMatch reports whether query is a case-insensitive substring of any
// search field. An empty query matches everything.
func TextMatch(rec csv.Record, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range SearchFields {
		if strings.Contains(strings.ToLower(rec.Value(f)), q) {
			return true
		}
	}
	return false
}

// FacetMatch reports whether rec satisfies every constrained field of sel.
// Fields combine with AND, values within a field with OR.
func FacetMatch(rec csv.Record, sel Selection) bool {
	for field, selected := range sel {
		if len(selected) == 0 {
			continue
		}
		raw, ok := rec.Get(field)
		if !ok || raw == "" {
			return false
		}
		if !anySelected(SplitTags(raw), field, sel) {
			return false
		}
	}
	return true
}

func anySelected(tags []string, field string, sel Selection) bool {
	for _, tag := range tags {
		if sel.Has(field, tag) {
			return true
		}
	}
	return false
}

// IsVisible is TextMatch AND FacetMatch.
func IsVisible(rec csv.Record, query string, sel Selection) bool {
	return TextMatch(rec, query) && FacetMatch(rec, sel)
}

// Filter returns the visible subset of records in their original order.
func Filter(records []csv.Record, query string, sel Selection) []csv.Record {
	out := make([]csv.Record, 0, len(records))
	for _, rec := range records {
		if IsVisible(rec, query, sel) {
			out = append(out, rec)
		}
	}
	return out
}
