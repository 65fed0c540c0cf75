// Package filter narrows property collections by text, location, category
// and price. Every function is pure and preserves input order.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/imob/internal/models"
)

// TypeAll disables the category criterion.
const TypeAll = "all"

// Criteria selects properties. Zero values disable each criterion, so the
// zero Criteria matches everything.
type Criteria struct {
	// SearchTerm is matched case-insensitively against title or description.
	SearchTerm string
	// Type is TypeAll, empty, or a persisted PropertyType value.
	Type string
	// City is matched case-insensitively as a substring.
	City string
	// MaxPrice is an inclusive upper bound when set.
	MaxPrice *float64
}

// Match reports whether p satisfies every criterion of c.
func (c Criteria) Match(p models.Property) bool {
	if c.SearchTerm != "" {
		term := strings.ToLower(c.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	if c.Type != "" && c.Type != TypeAll && string(p.Type) != c.Type {
		return false
	}
	if c.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(c.City)) {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	return true
}

// Apply returns the properties matching c, in input order. The result is
// never nil.
func Apply(props []models.Property, c Criteria) []models.Property {
	out := make([]models.Property, 0, len(props))
	for _, p := range props {
		if c.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// ParseMaxPrice converts user input into a MaxPrice bound. Empty input
// disables the bound.
func ParseMaxPrice(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid max price %q: %w", s, err)
	}
	return &v, nil
}
