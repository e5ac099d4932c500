package core

import (
	"regexp"
	"strings"
)

// Column headers of the published resource sheet.
const (
	FieldTitle        = "Resource Title"
	FieldDescription  = "Description"
	FieldAuthor       = "Author/Creator(new)"
	FieldAffiliation  = "Affiliation(new)"
	FieldURL          = "URL"
	FieldTopicArea    = "Topic Area (New)"
	FieldResourceType = "Resource Type (New)"
	FieldStandards    = "Local Standards of Excellence Tags"
)

// FacetFields are the multi-select filter fields, in display order.
// Their values are comma-separated tag lists.
var FacetFields = []string{
	FieldTopicArea,
	FieldResourceType,
	FieldStandards,
}

// SearchFields are matched by the free-text query.
var SearchFields = []string{
	FieldTitle,
	FieldDescription,
	FieldAuthor,
	FieldAffiliation,
}

// IsFacetField reports whether field is one of FacetFields.
func IsFacetField(field string) bool {
	for _, f := range FacetFields {
		if f == field {
			return true
		}
	}
	return false
}

var newMarker = regexp.MustCompile(`(?i)\s*\(new\)`)

// FacetLabel is the display label for a facet field: the first "(New)"
// marker the sheet uses for migrated columns is dropped.
func FacetLabel(field string) string {
	if loc := newMarker.FindStringIndex(field); loc != nil {
		field = field[:loc[0]] + field[loc[1]:]
	}
	return strings.TrimSpace(field)
}

// SplitTags splits a raw facet value into trimmed, non-empty tags.
func SplitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
