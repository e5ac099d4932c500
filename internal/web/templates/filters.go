package templates

import (
	"context"
	"io"
	"sort"
	"strconv"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/resourcehub/internal/core"
)

// SearchPlaceholder is the search box hint.
const SearchPlaceholder = "Search resources..."

// SearchBar renders the free-text search form. The current selection rides
// along as hidden inputs so submitting a query keeps the active filters.
func SearchBar(action, query string, sel core.Selection) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<form class="rh-search" method="get" role="search"`)
		h.url("action", action)
		h.raw(`><input type="search" name="q" autocomplete="off" aria-label="Search resources"`)
		h.attr("placeholder", SearchPlaceholder)
		h.attr("value", query)
		h.raw(`>`)

		fields := make([]string, 0, len(sel))
		for f := range sel {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			for _, v := range sel[f] {
				h.raw(`<input type="hidden"`)
				h.attr("name", FilterParam(f))
				h.attr("value", v)
				h.raw(`>`)
			}
		}
		h.raw(`<button type="submit">Search</button></form>`)
		return h.err
	})
}

// FilterParam is the query parameter carrying selections for field.
func FilterParam(field string) string {
	return "filter[" + field + "]"
}

// FilterPanel renders one group of toggle links per facet. Facets without
// options are not shown.
func FilterPanel(facets []core.Facet, sel core.Selection, toggleURL func(field, value string) string, clearURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<aside class="rh-filters"><h2>Filter Resources</h2>`)
		for _, f := range facets {
			if len(f.Options) == 0 {
				continue
			}
			selected := sel.Count(f.Field)
			h.raw(`<details class="rh-facet"`)
			if selected > 0 {
				h.raw(` open`)
			}
			h.raw(`><summary><span class="rh-facet-label">`)
			h.text(f.Label)
			h.raw(`</span>`)
			if selected > 0 {
				h.raw(`<span class="rh-badge">`)
				h.text(strconv.Itoa(selected))
				h.raw(`</span>`)
			}
			h.raw(`</summary><ul role="listbox" aria-multiselectable="true">`)
			for _, opt := range f.Options {
				checked := sel.Has(f.Field, opt)
				h.raw(`<li><a class="rh-option" role="option"`)
				h.attr("aria-selected", strconv.FormatBool(checked))
				h.url("href", toggleURL(f.Field, opt))
				h.raw(`><span class="rh-check" aria-hidden="true">`)
				if checked {
					h.raw(`&#9745;`)
				} else {
					h.raw(`&#9744;`)
				}
				h.raw(`</span> `)
				h.text(opt)
				h.raw(`</a></li>`)
			}
			h.raw(`</ul></details>`)
		}
		if len(sel) > 0 {
			h.raw(`<a class="rh-clear"`)
			h.url("href", clearURL)
			h.raw(`>Clear filters</a>`)
		}
		h.raw(`</aside>`)
		return h.err
	})
}
