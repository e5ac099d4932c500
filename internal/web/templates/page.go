package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/resourcehub/internal/core"
)

// Links are the URLs the page needs, built by the handler from the
// current request.
type Links struct {
	Search string
	Clear  string
	Reload string
	Toggle func(field, value string) string
}

// PageParams is everything the directory page renders.
type PageParams struct {
	Title        string
	View         core.View
	Links        Links
	ResizeBridge bool

	// ErrorMessage is shown instead of results when the load failed.
	ErrorMessage string

	// RefreshSeconds, when positive, reloads the page while loading.
	RefreshSeconds int
}

// Page renders the complete directory document.
func Page(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		if p.RefreshSeconds > 0 {
			h.raw(`<meta http-equiv="refresh"`)
			h.attr("content", strconv.Itoa(p.RefreshSeconds))
			h.raw(`>`)
		}
		h.raw(`<title>`)
		h.text(p.Title)
		h.raw(`</title><style>`)
		h.raw(stylesheet)
		h.raw(`</style></head><body><header class="rh-header"><h1>`)
		h.text(p.Title)
		h.raw(`</h1></header><main class="rh-main">`)
		if h.err != nil {
			return h.err
		}

		v := p.View
		search := SearchBar(p.Links.Search, v.Query, v.Selection)
		parts := []templ.Component{
			FilterPanel(v.Facets, v.Selection, p.Links.Toggle, p.Links.Clear),
		}
		switch v.Status {
		case core.StatusLoading:
			parts = append(parts, section(search, Loading()))
		case core.StatusError:
			parts = append(parts, section(search, ErrorAlert(p.ErrorMessage, "", ""), Retry(p.Links.Reload)))
		default:
			parts = append(parts, section(search, ResourceGrid(v.Cards(), v.Total)))
		}
		if p.ResizeBridge {
			parts = append(parts, ResizeScript())
		}
		for _, c := range parts {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		h.raw(`</main></body></html>`)
		return h.err
	})
}

// section wraps the main column.
func section(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="rh-content">`); err != nil {
			return err
		}
		for _, c := range children {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

const stylesheet = `
body{margin:0;font-family:system-ui,-apple-system,"Segoe UI",sans-serif;background:#f8fafc;color:#334155}
.rh-header{background:#fff;border-bottom:1px solid #e2e8f0;padding:1rem 1.5rem}
.rh-header h1{margin:0;font-size:1.5rem;color:#051632}
.rh-main{display:grid;grid-template-columns:minmax(0,1fr);gap:2rem;padding:2rem 1.5rem}
@media(min-width:1024px){.rh-main{grid-template-columns:18rem minmax(0,1fr)}}
.rh-filters{background:#fff;border-radius:.5rem;box-shadow:0 1px 3px #0002;padding:1.25rem;align-self:start}
.rh-filters h2{margin:0 0 1rem;font-size:1.25rem;color:#051632}
.rh-facet{margin-bottom:1rem}
.rh-facet summary{cursor:pointer;padding:.75rem;background:#f8fafc;border-radius:.375rem;font-weight:600}
.rh-facet ul{list-style:none;margin:.5rem 0 0;padding:0;max-height:15rem;overflow-y:auto}
.rh-option{display:block;padding:.4rem .5rem;color:#334155;text-decoration:none;border-radius:.25rem}
.rh-option:hover{background:#aae4fa4d}
.rh-option[aria-selected=true]{color:#0053b4;font-weight:600}
.rh-badge{margin-left:.5rem;background:#0053b4;color:#fff;font-size:.75rem;padding:.1rem .5rem;border-radius:9999px}
.rh-search{display:flex;gap:.5rem;margin-bottom:1.5rem}
.rh-search input[type=search]{flex:1;padding:.75rem 1rem;border:1px solid #cbd5e1;border-radius:.5rem}
.rh-search button,.rh-retry button{padding:.75rem 1.25rem;border:0;border-radius:.5rem;background:#0053b4;color:#fff}
.rh-count{color:#64748b;margin:0 0 1rem}
.rh-grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(16rem,1fr));gap:1.5rem}
.rh-card{background:#fff;border-radius:.5rem;box-shadow:0 1px 3px #0002;padding:1.25rem}
.rh-card-title{margin:0;font-size:1rem}
.rh-card-title a{color:#051632;text-decoration:none}
.rh-card-title a:hover{color:#0053b4}
.rh-byline{margin:1rem 0 0;padding-top:1rem;border-top:1px solid #f1f5f9;font-size:.875rem}
.rh-byline dt{display:inline;font-weight:700;color:#475569}
.rh-byline dd{display:inline;margin:0}
.rh-description{font-size:.875rem;color:#475569}
.rh-empty{text-align:center;background:#fff;border-radius:.5rem;padding:3rem}
.rh-status{text-align:center;color:#64748b;padding:2rem}
.rh-error{color:#ef4444}
.rh-error-code{font-size:.75rem}
.rh-clear{display:inline-block;margin-top:.5rem;color:#0053b4}
`
