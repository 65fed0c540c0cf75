package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/imob/internal/filter"
	"github.com/dmitrijs2005/imob/internal/format"
	"github.com/dmitrijs2005/imob/internal/models"
)

// parseCriteria reads key=value tokens (q, type, city, max). A token without
// '=' continues the value of the previous key, so "q=casa moderna" searches
// for "casa moderna".
func parseCriteria(args []string) (filter.Criteria, error) {
	values := map[string]string{}
	var last string
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			if last == "" {
				return filter.Criteria{}, fmt.Errorf("expected key=value, got %q", arg)
			}
			values[last] += " " + arg
			continue
		}
		k = strings.ToLower(k)
		switch k {
		case "q", "type", "city", "max":
		default:
			return filter.Criteria{}, fmt.Errorf("unknown criterion %q", k)
		}
		values[k] = v
		last = k
	}

	c := filter.Criteria{SearchTerm: values["q"], City: values["city"]}

	if t := values["type"]; t != "" && !strings.EqualFold(t, filter.TypeAll) {
		pt, err := models.ParsePropertyType(t)
		if err != nil {
			return filter.Criteria{}, err
		}
		c.Type = string(pt)
	}

	maxPrice, err := filter.ParseMaxPrice(values["max"])
	if err != nil {
		return filter.Criteria{}, err
	}
	c.MaxPrice = maxPrice
	return c, nil
}

func (a *App) List(ctx context.Context, args []string) error {
	c, err := parseCriteria(args)
	if err != nil {
		return err
	}
	props, err := a.store.ListProperties(ctx)
	if err != nil {
		return err
	}
	a.printProperties(filter.Apply(props, c))
	return nil
}

// Mine lists the session user's own listings.
func (a *App) Mine(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}
	props, err := a.store.ListOwnerProperties(ctx, user.ID)
	if err != nil {
		return err
	}
	a.printProperties(props)
	return nil
}

func (a *App) printProperties(props []models.Property) {
	if len(props) == 0 {
		a.println("No listings found.")
		return
	}
	for _, p := range props {
		a.printf("%s  %-11s %s | %s, %s | %s\n", p.ID, p.Type, p.Title, p.District, p.City, format.Price(p.Price))
	}
	a.printf("%d listing(s)\n", len(props))
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter listing id to show")
	if err != nil {
		return err
	}
	p, err := a.store.GetProperty(ctx, id)
	if err != nil {
		return err
	}

	a.println(p.Title)
	a.printf("%s em %s, %s\n", p.Type, p.District, p.City)
	a.printf("Preço: %s\n", format.Price(p.Price))
	a.printf("Área: %s m²\n", format.Number(p.Area))
	if p.Type != models.PropertyTypeLand {
		a.printf("Quartos: %d  Banheiros: %d  Vagas: %d\n", p.Bedrooms, p.Bathrooms, p.ParkingSpaces)
	}
	if p.Description != "" {
		a.println()
		a.println(p.Description)
		a.println()
	}
	if p.ImageURL != "" {
		a.printf("Imagem: %s\n", shortImage(p.ImageURL))
	}
	if !p.CreatedAt.IsZero() {
		a.printf("Anunciado em: %s\n", format.Date(p.CreatedAt))
	}
	a.printf("Contato: %s\n", format.ContactLink(p.Title))
	return nil
}

// shortImage keeps embedded images from flooding the terminal.
func shortImage(u string) string {
	if mt, _, ok := strings.Cut(u, ";base64,"); ok && strings.HasPrefix(mt, "data:") {
		return strings.TrimPrefix(mt, "data:") + " (embedded)"
	}
	return u
}

// idArg returns the first argument or asks for an id.
func (a *App) idArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	id, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("an id is required")
	}
	return id, nil
}
