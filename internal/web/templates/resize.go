package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ResizeMessageType is the postMessage type host pages listen for.
const ResizeMessageType = "resize-iframe"

// resizeScript reports the document height to the embedding page on load
// and on every body resize. It does nothing when the page is not framed.
const resizeScript = `<script>(function(){
if (window.parent === window) return;
var last = 0;
function post() {
  var h = Math.ceil(document.documentElement.scrollHeight);
  if (h === last) return;
  last = h;
  window.parent.postMessage({type: "` + ResizeMessageType + `", height: h}, "*");
}
if (window.ResizeObserver) {
  new ResizeObserver(post).observe(document.body);
} else {
  window.addEventListener("resize", post);
}
window.addEventListener("load", post);
post();
})();</script>`

// ResizeScript renders the iframe height bridge.
func ResizeScript() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, resizeScript)
		return err
	})
}
