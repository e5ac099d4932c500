package core

import (
	"sort"

	"github.com/JonMunkholm/resourcehub/internal/csv"
)

// FacetOptions maps each declared facet field to its distinct tag values,
// sorted ascending. It is derived from a dataset and never edited.
type FacetOptions map[string][]string

// Facet is one facet field with its options, for ordered rendering.
type Facet struct {
	Field   string   `json:"field"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

// DeriveFacets collects the tag values observed for each field across
// records. Every field is reported, with an empty list when no record
// carries a value for it.
func DeriveFacets(records []csv.Record, fields []string) FacetOptions {
	opts := make(FacetOptions, len(fields))
	for _, field := range fields {
		seen := make(map[string]struct{})
		for _, rec := range records {
			raw, ok := rec.Get(field)
			if !ok || raw == "" {
				continue
			}
			for _, tag := range SplitTags(raw) {
				seen[tag] = struct{}{}
			}
		}

		values := make([]string, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		sort.Strings(values)
		opts[field] = values
	}
	return opts
}

// Ordered returns the facets in the order of fields. Fields with no
// options are kept; callers that render decide whether to hide them.
func (o FacetOptions) Ordered(fields []string) []Facet {
	out := make([]Facet, 0, len(fields))
	for _, f := range fields {
		values := o[f]
		if values == nil {
			values = []string{}
		}
		out = append(out, Facet{Field: f, Label: FacetLabel(f), Options: values})
	}
	return out
}
