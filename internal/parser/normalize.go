// Package parser turns free-form order messages into parsed line items:
// normalize -> segment into chunks -> extract quantity/variant/name ->
// autocorrect the name against the catalog vocabulary.
package parser

import (
	"regexp"
	"strings"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Normalize lower-cases text, collapses every whitespace run (including
// newlines) to a single space, and trims the ends. Pure and total.
func Normalize(text string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}
