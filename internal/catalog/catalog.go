// Package catalog holds the immutable product and promo-code tables the
// billing pipeline prices against. A catalog is built once at startup and
// shared read-only; lookup maps and the fuzzy-match vocabulary are
// precomputed at build time so per-order resolution never rescans entries.
package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rezonia/order-billing/internal/model"
)

// Product is one sellable catalog entry
type Product struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Aliases   []string        `json:"aliases,omitempty"`
}

// Catalog is the immutable product table plus promo-code discounts.
// Entry order is preserved from build time; the fuzzy vocabulary lists
// each canonical name followed by its aliases in that order, and that
// ordering is part of the resolution contract (first of equal top
// similarity wins).
type Catalog struct {
	names      []string
	products   map[string]Product
	aliasOwner map[string]string
	vocabulary []string
	promoCodes map[string]decimal.Decimal
}

// New builds a catalog from an ordered product list and promo-code table.
// Alias strings must not collide with canonical names or other aliases.
func New(products []Product, promoCodes map[string]decimal.Decimal) (*Catalog, error) {
	c := &Catalog{
		products:   make(map[string]Product, len(products)),
		aliasOwner: make(map[string]string),
		promoCodes: make(map[string]decimal.Decimal, len(promoCodes)),
	}

	for _, p := range products {
		if p.Name == "" {
			return nil, &model.CatalogError{Entry: p.Name, Message: "empty canonical name"}
		}
		if _, dup := c.products[p.Name]; dup {
			return nil, &model.CatalogError{Entry: p.Name, Message: "duplicate canonical name"}
		}
		if !p.UnitPrice.IsPositive() && !p.UnitPrice.IsZero() {
			return nil, &model.CatalogError{Entry: p.Name, Message: "unit price must be >= 0"}
		}
		if p.TaxRate.IsNegative() || p.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
			return nil, &model.CatalogError{Entry: p.Name, Message: "tax rate must be a fraction in [0,1]"}
		}

		c.names = append(c.names, p.Name)
		c.products[p.Name] = p
		c.vocabulary = append(c.vocabulary, p.Name)
		for _, alias := range p.Aliases {
			if _, isName := c.products[alias]; isName {
				return nil, &model.CatalogError{Entry: p.Name, Message: "alias " + alias + " collides with a canonical name"}
			}
			if owner, taken := c.aliasOwner[alias]; taken {
				return nil, &model.CatalogError{Entry: p.Name, Message: "alias " + alias + " already owned by " + owner}
			}
			c.aliasOwner[alias] = p.Name
			c.vocabulary = append(c.vocabulary, alias)
		}
	}

	// Late collision check: a canonical name registered after an alias
	// with the same spelling would have slipped past the loop above.
	for alias := range c.aliasOwner {
		if _, isName := c.products[alias]; isName {
			return nil, &model.CatalogError{Entry: alias, Message: "alias collides with a canonical name"}
		}
	}

	for code, rate := range promoCodes {
		c.promoCodes[strings.ToUpper(code)] = rate
	}
	return c, nil
}

// Names returns canonical names in build order
func (c *Catalog) Names() []string {
	return c.names
}

// Lookup returns the product for a canonical name
func (c *Catalog) Lookup(name string) (Product, bool) {
	p, ok := c.products[name]
	return p, ok
}

// Has reports whether name is a canonical catalog key
func (c *Catalog) Has(name string) bool {
	_, ok := c.products[name]
	return ok
}

// CanonicalOf maps a vocabulary entry (canonical name or alias) to its
// canonical owner. Unknown entries are returned unchanged.
func (c *Catalog) CanonicalOf(entry string) string {
	if _, ok := c.products[entry]; ok {
		return entry
	}
	if owner, ok := c.aliasOwner[entry]; ok {
		return owner
	}
	return entry
}

// Vocabulary returns every canonical name and alias in build order
func (c *Catalog) Vocabulary() []string {
	return c.vocabulary
}

// DiscountRate returns the discount fraction for a promo code.
// Lookup is case-insensitive; unknown or empty codes yield zero.
func (c *Catalog) DiscountRate(code string) decimal.Decimal {
	if code == "" {
		return decimal.Zero
	}
	if rate, ok := c.promoCodes[strings.ToUpper(code)]; ok {
		return rate
	}
	return decimal.Zero
}

type catalogFile struct {
	Products   []Product         `json:"products"`
	PromoCodes map[string]string `json:"promo_codes"`
}

// LoadFile reads a catalog definition from a JSON file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf catalogFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	promos := make(map[string]decimal.Decimal, len(cf.PromoCodes))
	for code, raw := range cf.PromoCodes {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, &model.CatalogError{Entry: code, Message: "invalid promo rate " + raw}
		}
		promos[code] = rate
	}
	return New(cf.Products, promos)
}
