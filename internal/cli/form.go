package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/imob/internal/describe"
	"github.com/dmitrijs2005/imob/internal/filex"
	"github.com/dmitrijs2005/imob/internal/models"
)

// generateKeyword asks for a generated description in the description field.
const generateKeyword = "ai"

// Add creates a listing owned by the session user.
func (a *App) Add(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	draft, err := a.fillDraft(ctx, models.DefaultProperty())
	if err != nil {
		return err
	}
	draft.OwnerID = &user.ID

	p, err := a.store.SaveProperty(ctx, draft, "")
	if err != nil {
		return err
	}
	a.printf("Created %s\n", p.ID)
	return nil
}

// Edit updates one of the session user's listings; empty answers keep the
// current values.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter listing id to edit")
	if err != nil {
		return err
	}
	current, err := a.ownedProperty(ctx, id)
	if err != nil {
		return err
	}

	draft, err := a.fillDraft(ctx, current)
	if err != nil {
		return err
	}

	p, err := a.store.SaveProperty(ctx, draft, id)
	if err != nil {
		return err
	}
	a.printf("Updated %s\n", p.ID)
	return nil
}

// fillDraft walks the user through every listing field, starting from base.
func (a *App) fillDraft(ctx context.Context, base models.Property) (models.PropertyDraft, error) {
	var d models.PropertyDraft
	var err error

	if d.Title, err = askString(a.reader, a.out, "Title", base.Title); err != nil {
		return d, err
	}
	if d.Type, err = a.askType(base.Type); err != nil {
		return d, err
	}
	if d.Price, err = askFloat(a.reader, a.out, "Price (R$)", base.Price); err != nil {
		return d, err
	}
	if d.Area, err = askFloat(a.reader, a.out, "Area (m²)", base.Area); err != nil {
		return d, err
	}
	if d.City, err = askString(a.reader, a.out, "City", base.City); err != nil {
		return d, err
	}
	if d.District, err = askString(a.reader, a.out, "District", base.District); err != nil {
		return d, err
	}
	if d.Bedrooms, err = askInt(a.reader, a.out, "Bedrooms", base.Bedrooms); err != nil {
		return d, err
	}
	if d.Bathrooms, err = askInt(a.reader, a.out, "Bathrooms", base.Bathrooms); err != nil {
		return d, err
	}
	if d.ParkingSpaces, err = askInt(a.reader, a.out, "Parking spaces", base.ParkingSpaces); err != nil {
		return d, err
	}
	if d.ImageURL, err = a.askImage(base.ImageURL); err != nil {
		return d, err
	}
	if d.Description, err = a.askDescription(ctx, d.Apply(base)); err != nil {
		return d, err
	}
	return d, nil
}

func (a *App) askType(current models.PropertyType) (*models.PropertyType, error) {
	names := make([]string, 0, len(models.PropertyTypes))
	for _, t := range models.PropertyTypes {
		names = append(names, t.Name())
	}
	label := fmt.Sprintf("Type (%s)", strings.Join(names, ", "))

	for {
		s, err := GetSimpleText(a.reader, withCurrent(label, current.Name()), a.out)
		if err != nil || s == "" {
			return nil, err
		}
		t, err := models.ParsePropertyType(s)
		if err == nil {
			return &t, nil
		}
		a.println("Unknown type")
	}
}

// askImage accepts a URL or a local image path, which is embedded as a
// data: URI.
func (a *App) askImage(current string) (*string, error) {
	for {
		s, err := GetSimpleText(a.reader, withCurrent("Image URL or file", shortImage(current)), a.out)
		if err != nil || s == "" {
			return nil, err
		}
		if _, statErr := os.Stat(s); statErr != nil {
			return &s, nil
		}
		uri, err := filex.DataURI(s)
		if err == nil {
			return &uri, nil
		}
		a.printf("Cannot use %s: %v\n", s, err)
	}
}

// askDescription reads the description, offering a generated draft when the
// user types generateKeyword.
func (a *App) askDescription(ctx context.Context, p models.Property) (*string, error) {
	prompt := withCurrent(fmt.Sprintf("Description (type %q to generate one)", generateKeyword), p.Description)
	for {
		s, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil || s == "" {
			return nil, err
		}
		if !strings.EqualFold(s, generateKeyword) {
			return &s, nil
		}

		text, err := a.generate(ctx, p)
		if err != nil {
			a.printf("%v\n", err)
			continue
		}
		a.println(text)
		if text == describe.Fallback {
			continue
		}
		ok, err := GetConfirmation(a.reader, "Use this description?", true, a.out)
		if err != nil {
			return nil, err
		}
		if ok {
			return &text, nil
		}
	}
}

var errFillFirst = errors.New("fill in city, type and price first to generate a description")

// defaultFeatures is sent when no highlights are given.
const defaultFeatures = "Ótima localização, oportunidade única"

// generate asks for highlights and drafts a description for p.
func (a *App) generate(ctx context.Context, p models.Property) (string, error) {
	req := describe.RequestFrom(p, "")
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("%w (%v)", errFillFirst, err)
	}

	features, err := GetSimpleText(a.reader, "Extra highlights (optional)", a.out)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(features) == "" {
		features = defaultFeatures
	}
	req.Features = features

	a.println("Generating...")
	return a.describer.Describe(ctx, req), nil
}
