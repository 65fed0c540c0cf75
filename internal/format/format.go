// Package format renders listing values for Brazilian Portuguese readers.
package format

import (
	"fmt"
	"net/url"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Price renders v as Brazilian reais, e.g. "R$ 850.000,00".
func Price(v float64) string {
	return printer.Sprintf("R$ %.2f", v)
}

// Number renders v with pt-BR digit grouping and no fraction.
func Number(v float64) string {
	return printer.Sprintf("%.0f", v)
}

// Date renders t as dd/mm/yyyy.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// ContactLink returns a WhatsApp link pre-filled with an inquiry about the
// listing titled title.
func ContactLink(title string) string {
	msg := fmt.Sprintf("Olá, vi seu anúncio \"%s\" no ImobVenda e gostaria de mais informações.", title)
	return "https://wa.me/?" + url.Values{"text": {msg}}.Encode()
}
