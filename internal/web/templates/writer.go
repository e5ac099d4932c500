// Package templates renders the resource hub page as templ components.
package templates

import (
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit
// markup without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes a double-quoted, escaped attribute value.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

// url writes an href after templ's scheme sanitisation.
func (h *htmlWriter) url(name, value string) {
	h.attr(name, string(templ.URL(value)))
}
