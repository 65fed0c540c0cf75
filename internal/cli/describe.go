package cli

import (
	"context"

	"github.com/dmitrijs2005/imob/internal/models"
)

// Describe prints a generated description for an existing listing, or for
// attributes typed in when no id is given. Nothing is saved.
func (a *App) Describe(ctx context.Context, args []string) error {
	var p models.Property
	if len(args) > 0 {
		var err error
		if p, err = a.store.GetProperty(ctx, args[0]); err != nil {
			return err
		}
	} else {
		d, err := a.describeFields()
		if err != nil {
			return err
		}
		p = d.Apply(models.Property{})
	}

	text, err := a.generate(ctx, p)
	if err != nil {
		return err
	}
	a.println(text)
	return nil
}

func (a *App) describeFields() (models.PropertyDraft, error) {
	var d models.PropertyDraft
	var err error

	if d.Type, err = a.askType(""); err != nil {
		return d, err
	}
	if d.City, err = askString(a.reader, a.out, "City", ""); err != nil {
		return d, err
	}
	if d.District, err = askString(a.reader, a.out, "District", ""); err != nil {
		return d, err
	}
	if d.Area, err = askFloat(a.reader, a.out, "Area (m²)", 0); err != nil {
		return d, err
	}
	if d.Bedrooms, err = askInt(a.reader, a.out, "Bedrooms", 0); err != nil {
		return d, err
	}
	if d.Price, err = askFloat(a.reader, a.out, "Price (R$)", 0); err != nil {
		return d, err
	}
	return d, nil
}
