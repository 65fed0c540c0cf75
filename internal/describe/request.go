package describe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/imob/internal/common"
	"github.com/dmitrijs2005/imob/internal/models"
)

// MaxLength is the description length asked of the model, in characters.
const MaxLength = 300

// Request carries the listing attributes a description is written from.
type Request struct {
	Type     models.PropertyType
	City     string
	District string
	Area     float64
	Bedrooms int
	Price    float64
	// Features holds free-form highlights typed by the user.
	Features string
}

// RequestFrom collects the attributes of p plus extra highlights.
func RequestFrom(p models.Property, features string) Request {
	return Request{
		Type:     p.Type,
		City:     p.City,
		District: p.District,
		Area:     p.Area,
		Bedrooms: p.Bedrooms,
		Price:    p.Price,
		Features: features,
	}
}

// Validate checks that city, a known type and price are filled in.
func (r Request) Validate() error {
	var missing []string
	if strings.TrimSpace(r.City) == "" {
		missing = append(missing, "city")
	}
	if !r.Type.Valid() {
		missing = append(missing, "type")
	}
	if r.Price <= 0 {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", common.ErrIncompleteRequest, strings.Join(missing, ", "))
	}
	return nil
}

// Prompt renders the instruction sent to the model.
func (r Request) Prompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Atue como um corretor de imóveis experiente. Escreva uma descrição curta, atraente e vendedora (máximo %d caracteres) para um imóvel com as seguintes características:\n", MaxLength)
	fmt.Fprintf(&b, "Tipo: %s\n", r.Type)
	fmt.Fprintf(&b, "Localização: %s, %s\n", r.District, r.City)
	fmt.Fprintf(&b, "Área: %sm²\n", number(r.Area))
	fmt.Fprintf(&b, "Quartos: %d\n", r.Bedrooms)
	fmt.Fprintf(&b, "Preço: R$ %s\n", number(r.Price))
	fmt.Fprintf(&b, "Destaques extras: %s\n", r.Features)
	b.WriteString("\nUse formatação Markdown simples se necessário. Foque nos benefícios. Em Português do Brasil.")
	return b.String()
}

// number prints v without trailing zeros or exponent.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
