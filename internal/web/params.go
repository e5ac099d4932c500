package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/JonMunkholm/resourcehub/internal/core"
	"github.com/JonMunkholm/resourcehub/internal/web/templates"
)

// queryParam carries the free-text search.
const queryParam = "q"

// parseQuery returns the free-text search from the URL.
func parseQuery(r *http.Request) string {
	return r.URL.Query().Get(queryParam)
}

// parseSelection extracts facet selections from filter[<field>]=<value>
// query parameters. Unknown fields and blank values are ignored.
func parseSelection(r *http.Request) core.Selection {
	raw := make(map[string][]string)

	for key, values := range r.URL.Query() {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") {
			continue
		}

		field := key[7 : len(key)-1]
		if !core.IsFacetField(field) {
			continue
		}

		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				raw[field] = append(raw[field], v)
			}
		}
	}

	return core.NewSelection(raw)
}

// stateURL encodes a query and selection as a link to path.
func stateURL(path, query string, sel core.Selection) string {
	vals := url.Values{}
	if query != "" {
		vals.Set(queryParam, query)
	}
	for field, values := range sel {
		for _, v := range values {
			vals.Add(templates.FilterParam(field), v)
		}
	}
	if len(vals) == 0 {
		return path
	}
	return path + "?" + vals.Encode()
}

// pageLinks builds the page's navigation for the current state. Toggle
// links carry the selection that results from flipping one option.
func pageLinks(path, query string, sel core.Selection) templates.Links {
	return templates.Links{
		Search: path,
		Clear:  stateURL(path, query, nil),
		Reload: "/reload",
		Toggle: func(field, value string) string {
			return stateURL(path, query, core.Toggle(sel, field, value))
		},
	}
}
