package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLStripsScripts(t *testing.T) {
	in := `<p>Hello</p><script>alert("xss")</script>`
	out := HTML(in)
	assert.Contains(t, out, "<p>Hello</p>")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")
}

func TestHTMLStripsEventHandlers(t *testing.T) {
	out := HTML(`<img src="x.jpg" onerror="alert(1)">`)
	assert.NotContains(t, out, "onerror")
}

func TestHTMLKeepsFormatting(t *testing.T) {
	in := "<p>A <strong>bold</strong> statement with a <a href=\"https://example.com\" rel=\"nofollow\">link</a>.</p>"
	out := HTML(in)
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "example.com")
}

func TestTextStripsAllMarkup(t *testing.T) {
	assert.Equal(t, "Annual Gala", Text("<b>Annual</b> Gala"))
	assert.Equal(t, "Title", Text("<script>bad()</script>Title"))
}

func TestTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "hello", Text("  hello  "))
}
