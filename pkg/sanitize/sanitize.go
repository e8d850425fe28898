// Package sanitize strips dangerous markup from user-supplied rich HTML
// before it is stored. Page, post and gallery bodies come from a WYSIWYG
// editor and are rendered verbatim on the public site, so everything that
// reaches the database must already be safe.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy  = bluemonday.UGCPolicy()
	plainPolicy = bluemonday.StrictPolicy()
)

// HTML sanitizes a rich-text body, keeping common user-generated-content
// tags (paragraphs, lists, links, images) and dropping scripts, event
// handlers and other active content.
func HTML(s string) string {
	return strings.TrimSpace(richPolicy.Sanitize(s))
}

// Text strips all markup; used for fields that should never contain HTML,
// such as titles, names and positions.
func Text(s string) string {
	return strings.TrimSpace(plainPolicy.Sanitize(s))
}
