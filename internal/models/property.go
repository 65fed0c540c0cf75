package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/imob/internal/common"
)

// PropertyType classifies a listing. Values are the Portuguese labels stored
// in documents; Name gives the constant name.
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "Casa"
	PropertyTypeApartment PropertyType = "Apartamento"
	PropertyTypeLand      PropertyType = "Terreno"
)

// PropertyTypes lists every known category in display order.
var PropertyTypes = []PropertyType{PropertyTypeHouse, PropertyTypeApartment, PropertyTypeLand}

var propertyTypeNames = map[PropertyType]string{
	PropertyTypeHouse:     "HOUSE",
	PropertyTypeApartment: "APARTMENT",
	PropertyTypeLand:      "LAND",
}

// Name returns the constant name of the category (HOUSE, APARTMENT, LAND).
func (t PropertyType) Name() string {
	if n, ok := propertyTypeNames[t]; ok {
		return n
	}
	return string(t)
}

// Valid reports whether t is one of the known categories.
func (t PropertyType) Valid() bool {
	_, ok := propertyTypeNames[t]
	return ok
}

// ParsePropertyType accepts either the constant name (case-insensitive) or
// the persisted value.
func ParsePropertyType(s string) (PropertyType, error) {
	s = strings.TrimSpace(s)
	for t, name := range propertyTypeNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidPropertyType, s)
}

// Property is a listing offered for sale.
//
// Bedrooms, Bathrooms and ParkingSpaces carry no meaning for land but are
// stored regardless.
type Property struct {
	ID            string       `json:"id"`
	OwnerID       string       `json:"ownerId"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Type          PropertyType `json:"type"`
	Price         float64      `json:"price"`
	Area          float64      `json:"area"`
	City          string       `json:"city"`
	District      string       `json:"district"`
	Bedrooms      int          `json:"bedrooms"`
	Bathrooms     int          `json:"bathrooms"`
	ParkingSpaces int          `json:"parkingSpaces"`
	ImageURL      string       `json:"imageUrl"`
	CreatedAt     time.Time    `json:"-"`
}

// DefaultProperty returns the values a new listing starts from before a
// draft is applied.
func DefaultProperty() Property {
	return Property{Type: PropertyTypeHouse}
}

// String renders a one-line overview used in listings.
func (p Property) String() string {
	return fmt.Sprintf("%s [%s] %s, %s - %.0f", p.ID, p.Type.Name(), p.Title, p.City, p.Price)
}

type propertyFields Property

type propertyJSON struct {
	propertyFields
	CreatedAt *int64 `json:"createdAt,omitempty"`
}

// MarshalJSON writes CreatedAt as Unix milliseconds. A zero CreatedAt is
// omitted.
func (p Property) MarshalJSON() ([]byte, error) {
	pj := propertyJSON{propertyFields: propertyFields(p)}
	if !p.CreatedAt.IsZero() {
		pj.CreatedAt = Ptr(p.CreatedAt.UnixMilli())
	}
	return json.Marshal(pj)
}

// UnmarshalJSON reads CreatedAt from Unix milliseconds. Without the field
// CreatedAt stays zero.
func (p *Property) UnmarshalJSON(b []byte) error {
	var pj propertyJSON
	if err := json.Unmarshal(b, &pj); err != nil {
		return err
	}
	*p = Property(pj.propertyFields)
	if pj.CreatedAt != nil {
		p.CreatedAt = time.UnixMilli(*pj.CreatedAt)
	}
	return nil
}
