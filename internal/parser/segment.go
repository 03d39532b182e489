package parser

import (
	"regexp"
	"strings"
)

// Filler and greeting words stripped from the whole message before it is
// segmented. Removal runs on normalized text, before punctuation stripping,
// so multi-word phrases with punctuation variants still match whole words.
var fillerWords = regexp.MustCompile(`\b(hi|hello|please|need|order|send|dispatch|supply|kindly|we require|required)\b`)

var (
	noisyChars = regexp.MustCompile(`[^a-z0-9,\n ]`)
	delimiters = regexp.MustCompile(`,|\band\b|\n`)
)

// Segment splits a raw message into candidate item chunks. The message is
// normalized, stripped of filler words, cleared of punctuation noise, then
// split on commas, standalone "and", and newlines. Empty chunks are dropped.
func Segment(message string) []string {
	normalized := Normalize(message)
	normalized = fillerWords.ReplaceAllString(normalized, "")
	normalized = noisyChars.ReplaceAllString(normalized, " ")

	var chunks []string
	for _, candidate := range delimiters.Split(normalized, -1) {
		if chunk := strings.TrimSpace(candidate); chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}
