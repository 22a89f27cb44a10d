package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips all markup from free text before it is persisted. The
// result is plain text: entities left behind by the policy are decoded, so
// callers that render HTML must escape it again.
func Sanitize(value string) string {
	return html.UnescapeString(strictPolicy.Sanitize(value))
}
