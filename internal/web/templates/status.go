package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LoadingMessage is shown while the first load is in flight.
const LoadingMessage = "Loading resources..."

// Loading is shown while the sheet is being fetched.
func Loading() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="rh-status rh-loading" role="status" aria-live="polite">`)
		h.raw(`<span class="rh-spinner" aria-hidden="true"></span>`)
		h.text(LoadingMessage)
		h.raw(`</div>`)
		return h.err
	})
}

// ErrorAlert renders a user-facing error with an optional action and code.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="rh-status rh-error" role="alert">`)
		h.raw(`<p class="rh-error-message">`)
		h.text(message)
		h.raw(`</p>`)
		if action != "" {
			h.raw(`<p class="rh-error-action">`)
			h.text(action)
			h.raw(`</p>`)
		}
		if code != "" {
			h.raw(`<p class="rh-error-code">Error code: <code>`)
			h.text(code)
			h.raw(`</code></p>`)
		}
		h.raw(`</div>`)
		return h.err
	})
}

// Retry renders a form that asks the server to re-fetch the sheet.
func Retry(action string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<form class="rh-retry" method="post"`)
		h.url("action", action)
		h.raw(`><button type="submit">Try again</button></form>`)
		return h.err
	})
}
