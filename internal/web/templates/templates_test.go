package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/resourcehub/internal/core"
)

func renderString(t *testing.T, render func(*bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, render(&buf))
	return buf.String()
}

func TestResourceCard_EscapesAndSanitises(t *testing.T) {
	html := renderString(t, func(b *bytes.Buffer) error {
		return ResourceCard(core.Card{
			Title: `<script>alert(1)</script>`,
			URL:   "javascript:alert(1)",
		}).Render(context.Background(), b)
	})

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "javascript:")
	assert.NotContains(t, html, "rh-byline")
}

func TestResourceCard_Byline(t *testing.T) {
	html := renderString(t, func(b *bytes.Buffer) error {
		return ResourceCard(core.Card{Title: "T", URL: "#", Affiliation: "District 9"}).Render(context.Background(), b)
	})

	assert.Contains(t, html, "Affiliation:")
	assert.Contains(t, html, "District 9")
	assert.NotContains(t, html, "Author:")
}

func TestResourceGrid_Empty(t *testing.T) {
	html := renderString(t, func(b *bytes.Buffer) error {
		return ResourceGrid(nil, 0).Render(context.Background(), b)
	})
	assert.Contains(t, html, NoResultsTitle)
	assert.Contains(t, html, "Showing 0 of 0 resources")
}

func TestFilterPanel_HidesEmptyFacets(t *testing.T) {
	facets := []core.Facet{
		{Field: core.FieldTopicArea, Label: "Topic Area", Options: []string{"Art", "Math"}},
		{Field: core.FieldStandards, Label: "Local Standards of Excellence Tags", Options: []string{}},
	}
	sel := core.Selection{core.FieldTopicArea: {"Math"}}
	toggle := func(field, value string) string { return "/t?" + value }

	html := renderString(t, func(b *bytes.Buffer) error {
		return FilterPanel(facets, sel, toggle, "/").Render(context.Background(), b)
	})

	assert.Contains(t, html, "Topic Area")
	assert.NotContains(t, html, "Local Standards")
	assert.Contains(t, html, `href="/t?Art"`)
	assert.Equal(t, 1, strings.Count(html, `aria-selected="true"`))
	assert.Contains(t, html, `<span class="rh-badge">1</span>`)
	assert.Contains(t, html, "Clear filters")
}

func TestSearchBar_CarriesSelection(t *testing.T) {
	sel := core.Selection{core.FieldTopicArea: {"Math"}}
	html := renderString(t, func(b *bytes.Buffer) error {
		return SearchBar("/", `a "quoted" query`, sel).Render(context.Background(), b)
	})

	assert.Contains(t, html, `value="a &#34;quoted&#34; query"`)
	assert.Contains(t, html, `name="filter[Topic Area (New)]"`)
	assert.Contains(t, html, `value="Math"`)
}

func TestResizeScript(t *testing.T) {
	html := renderString(t, func(b *bytes.Buffer) error {
		return ResizeScript().Render(context.Background(), b)
	})
	assert.Contains(t, html, `type: "resize-iframe"`)
	assert.Contains(t, html, `"*"`)
	assert.Contains(t, html, "ResizeObserver")
}
