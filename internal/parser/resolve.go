package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/rezonia/order-billing/internal/catalog"
	"github.com/rezonia/order-billing/internal/model"
)

// SimilarityThreshold is the minimum sequence-matching ratio a vocabulary
// entry must reach before a raw phrase is corrected to it. Below the
// threshold the phrase passes through verbatim and is dropped at pricing.
const SimilarityThreshold = 0.6

// Chunk grammar, anchored and ordered: optional quantity (digits, optional
// trailing x), optional whole-word variant, then the name phrase.
var chunkPattern = regexp.MustCompile(`^(?:(\d+)\s*x?\s*)?(?:(small|medium|large|standard|premium)\b)?\s*([a-z ]+)`)

// Resolver extracts items from chunks and autocorrects their names
// against a catalog's vocabulary.
type Resolver struct {
	catalog *catalog.Catalog
	vocab   []vocabEntry
}

type vocabEntry struct {
	word  string
	runes []string
}

// NewResolver builds a resolver over the catalog's vocabulary. Candidate
// order follows the catalog build order: each canonical name, then its
// aliases. The first candidate of equal top similarity wins, so this
// ordering is part of the matching contract.
func NewResolver(c *catalog.Catalog) *Resolver {
	words := c.Vocabulary()
	vocab := make([]vocabEntry, len(words))
	for i, w := range words {
		vocab[i] = vocabEntry{word: w, runes: strings.Split(w, "")}
	}
	return &Resolver{catalog: c, vocab: vocab}
}

// Resolve extracts an item from one chunk, or returns nil when the chunk
// carries no usable name phrase. Quantity defaults to 1 when absent.
func (r *Resolver) Resolve(chunk, note string) *model.ParsedItem {
	m := chunkPattern.FindStringSubmatch(chunk)
	if m == nil {
		return nil
	}

	qty := 1
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 {
			qty = n
		}
	}

	raw := strings.TrimSpace(m[3])
	if raw == "" {
		return nil
	}

	return &model.ParsedItem{
		Name:    r.Autocorrect(raw),
		Qty:     qty,
		Variant: m[2],
		Note:    note,
	}
}

// Autocorrect resolves a raw name phrase to a canonical catalog name.
// Exact canonical matches short-circuit; otherwise the closest vocabulary
// entry by sequence-matching ratio wins, provided it clears the threshold.
// Aliases resolve to their canonical owner. Phrases with no candidate
// above the threshold are returned verbatim.
func (r *Resolver) Autocorrect(raw string) string {
	cleaned := Normalize(raw)
	if r.catalog.Has(cleaned) {
		return cleaned
	}

	query := strings.Split(cleaned, "")
	best := ""
	bestScore := 0.0
	for _, candidate := range r.vocab {
		score := difflib.NewMatcher(candidate.runes, query).Ratio()
		if score > bestScore {
			best = candidate.word
			bestScore = score
		}
	}

	if bestScore >= SimilarityThreshold {
		return r.catalog.CanonicalOf(best)
	}
	return cleaned
}

// Parse runs segmentation and resolution over a whole message and returns
// the parsed items in message order.
func (r *Resolver) Parse(message, note string) []model.ParsedItem {
	var items []model.ParsedItem
	for _, chunk := range Segment(message) {
		if item := r.Resolve(chunk, note); item != nil {
			items = append(items, *item)
		}
	}
	return items
}
