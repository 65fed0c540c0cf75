package models

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/imob/internal/common"
)

// PropertyDraft is a partial Property. Nil fields are left untouched when
// the draft is applied. ID is deliberately absent: identifiers are assigned
// by the store and never rewritten.
type PropertyDraft struct {
	OwnerID       *string       `json:"ownerId,omitempty"`
	Title         *string       `json:"title,omitempty"`
	Description   *string       `json:"description,omitempty"`
	Type          *PropertyType `json:"type,omitempty"`
	Price         *float64      `json:"price,omitempty"`
	Area          *float64      `json:"area,omitempty"`
	City          *string       `json:"city,omitempty"`
	District      *string       `json:"district,omitempty"`
	Bedrooms      *int          `json:"bedrooms,omitempty"`
	Bathrooms     *int          `json:"bathrooms,omitempty"`
	ParkingSpaces *int          `json:"parkingSpaces,omitempty"`
	ImageURL      *string       `json:"imageUrl,omitempty"`
	CreatedAt     *time.Time    `json:"-"`
}

// Ptr returns a pointer to v; handy for building drafts.
func Ptr[T any](v T) *T {
	return &v
}

// Apply returns p with every set field of d copied over it.
func (d PropertyDraft) Apply(p Property) Property {
	if d.OwnerID != nil {
		p.OwnerID = *d.OwnerID
	}
	if d.Title != nil {
		p.Title = *d.Title
	}
	if d.Description != nil {
		p.Description = *d.Description
	}
	if d.Type != nil {
		p.Type = *d.Type
	}
	if d.Price != nil {
		p.Price = *d.Price
	}
	if d.Area != nil {
		p.Area = *d.Area
	}
	if d.City != nil {
		p.City = *d.City
	}
	if d.District != nil {
		p.District = *d.District
	}
	if d.Bedrooms != nil {
		p.Bedrooms = *d.Bedrooms
	}
	if d.Bathrooms != nil {
		p.Bathrooms = *d.Bathrooms
	}
	if d.ParkingSpaces != nil {
		p.ParkingSpaces = *d.ParkingSpaces
	}
	if d.ImageURL != nil {
		p.ImageURL = *d.ImageURL
	}
	if d.CreatedAt != nil {
		p.CreatedAt = *d.CreatedAt
	}
	return p
}

// draftJSON adds the optional explicit creation time, in Unix milliseconds
// as in persisted documents.
type draftJSON struct {
	PropertyDraft
	CreatedAt *int64 `json:"createdAt,omitempty"`
}

// DecodeDraft reads a JSON draft. Unknown fields, an invalid category or
// trailing data are rejected with common.ErrInvalidDraft.
func DecodeDraft(r io.Reader) (PropertyDraft, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var dj draftJSON
	if err := dec.Decode(&dj); err != nil {
		return PropertyDraft{}, fmt.Errorf("%w: %v", common.ErrInvalidDraft, err)
	}
	if dec.More() {
		return PropertyDraft{}, fmt.Errorf("%w: trailing data", common.ErrInvalidDraft)
	}

	d := dj.PropertyDraft
	if d.Type != nil {
		t, err := ParsePropertyType(string(*d.Type))
		if err != nil {
			return PropertyDraft{}, fmt.Errorf("%w: %v", common.ErrInvalidDraft, err)
		}
		d.Type = &t
	}
	if dj.CreatedAt != nil {
		d.CreatedAt = Ptr(time.UnixMilli(*dj.CreatedAt))
	}
	return d, nil
}
