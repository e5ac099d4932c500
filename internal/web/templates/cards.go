package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/resourcehub/internal/core"
)

// Shown when nothing matches, including an empty sheet.
const (
	NoResultsTitle = "No Results Found"
	NoResultsHint  = "Try adjusting your filters to find resources."
)

// ResourceCard renders one resource as a link card.
func ResourceCard(c core.Card) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<article class="rh-card"><h3 class="rh-card-title"><a`)
		h.url("href", c.URL)
		h.raw(` target="_blank" rel="noopener noreferrer">`)
		h.text(c.Title)
		h.raw(`</a></h3>`)
		if c.HasByline() {
			h.raw(`<dl class="rh-byline">`)
			if c.Author != "" {
				h.raw(`<div><dt>Author:</dt> <dd class="rh-author">`)
				h.text(c.Author)
				h.raw(`</dd></div>`)
			}
			if c.Affiliation != "" {
				h.raw(`<div><dt>Affiliation:</dt> <dd class="rh-affiliation">`)
				h.text(c.Affiliation)
				h.raw(`</dd></div>`)
			}
			h.raw(`</dl>`)
		}
		if c.Description != "" {
			h.raw(`<p class="rh-description">`)
			h.text(c.Description)
			h.raw(`</p>`)
		}
		h.raw(`</article>`)
		return h.err
	})
}

// ResourceGrid renders the visible cards, or the no-results message.
func ResourceGrid(cards []core.Card, total int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="rh-results" aria-live="polite">`)
		h.raw(`<p class="rh-count">`)
		h.text(countLabel(len(cards), total))
		h.raw(`</p>`)
		if len(cards) == 0 {
			h.raw(`<div class="rh-empty"><h3>`)
			h.text(NoResultsTitle)
			h.raw(`</h3><p>`)
			h.text(NoResultsHint)
			h.raw(`</p></div></section>`)
			return h.err
		}
		h.raw(`<div class="rh-grid">`)
		if h.err != nil {
			return h.err
		}
		for _, c := range cards {
			if err := ResourceCard(c).Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw(`</div></section>`)
		return h.err
	})
}

func countLabel(visible, total int) string {
	noun := "resources"
	if total == 1 {
		noun = "resource"
	}
	return "Showing " + strconv.Itoa(visible) + " of " + strconv.Itoa(total) + " " + noun
}
