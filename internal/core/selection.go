package core

import (
	"slices"
	"sort"
)

// Selection holds the chosen facet values per field. A field that is
// absent, or maps to an empty slice, imposes no constraint. Each field's
// values are a set: order and repeats carry no meaning. Selections built by
// Toggle and NewSelection keep them sorted and unique so equal selections
// compare equal.
type Selection map[string][]string

// Has reports whether value is selected for field.
func (s Selection) Has(field, value string) bool {
	return slices.Contains(s[field], value)
}

// Count is the number of selected values for field.
func (s Selection) Count(field string) int {
	return len(s[field])
}

// Clone returns a deep copy.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for f, values := range s {
		out[f] = append([]string(nil), values...)
	}
	return out
}

// Toggle returns a new selection with value flipped for field. When the
// field's set becomes empty the field is removed. s is not modified.
func Toggle(s Selection, field, value string) Selection {
	out := s.Clone()
	values := normalize(out[field])
	i := sort.SearchStrings(values, value)

	if i < len(values) && values[i] == value {
		values = append(values[:i], values[i+1:]...)
	} else {
		values = append(values, "")
		copy(values[i+1:], values[i:])
		values[i] = value
	}

	if len(values) == 0 {
		delete(out, field)
	} else {
		out[field] = values
	}
	return out
}

// NewSelection builds a selection from raw field/value pairs, dropping
// duplicates and empty values. Fields with nothing left are omitted.
func NewSelection(raw map[string][]string) Selection {
	out := make(Selection, len(raw))
	for field, values := range raw {
		for _, v := range values {
			if v == "" || out.Has(field, v) {
				continue
			}
			out = Toggle(out, field, v)
		}
	}
	return out
}

// normalize sorts values and drops repeats, in place.
func normalize(values []string) []string {
	sort.Strings(values)
	return slices.Compact(values)
}
