package describe

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/imob/internal/common"
	"github.com/dmitrijs2005/imob/internal/logging"
	"github.com/dmitrijs2005/imob/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text   string
	err    error
	block  bool
	prompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func sampleRequest() Request {
	return Request{
		Type:     models.PropertyTypeApartment,
		City:     "Curitiba",
		District: "Centro",
		Area:     45,
		Bedrooms: 1,
		Price:    320000,
		Features: "perto do metrô",
	}
}

func TestDescribe_ReturnsTrimmedText(t *testing.T) {
	gen := &fakeGenerator{text: "  Ótimo apartamento!\n"}
	d := New(gen, time.Second, nil)

	assert.Equal(t, "Ótimo apartamento!", d.Describe(context.Background(), sampleRequest()))
	assert.Contains(t, gen.prompt, "Localização: Centro, Curitiba")
}

func TestDescribe_FallbackOnFailure(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
	}{
		{"error", &fakeGenerator{err: errors.New("quota exceeded")}},
		{"empty answer", &fakeGenerator{text: "   "}},
		{"disabled", Disabled{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := logging.New(&buf, "warn")
			require.NoError(t, err)

			d := New(tt.gen, time.Second, log)
			assert.Equal(t, Fallback, d.Describe(context.Background(), sampleRequest()))
			assert.Contains(t, buf.String(), "description generation failed")
		})
	}
}

func TestDescribe_Timeout(t *testing.T) {
	d := New(&fakeGenerator{block: true}, 20*time.Millisecond, nil)

	start := time.Now()
	assert.Equal(t, Fallback, d.Describe(context.Background(), sampleRequest()))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRequest_Validate(t *testing.T) {
	require.NoError(t, sampleRequest().Validate())

	err := Request{}.Validate()
	require.ErrorIs(t, err, common.ErrIncompleteRequest)
	assert.Contains(t, err.Error(), "city, type, price")

	r := sampleRequest()
	r.Price = 0
	require.ErrorIs(t, r.Validate(), common.ErrIncompleteRequest)

	r = sampleRequest()
	r.Type = "Castelo"
	err = r.Validate()
	require.ErrorIs(t, err, common.ErrIncompleteRequest)
	assert.Contains(t, err.Error(), "missing type")
}

func TestRequest_Prompt(t *testing.T) {
	p := sampleRequest().Prompt()

	assert.Contains(t, p, "máximo 300 caracteres")
	assert.Contains(t, p, "Tipo: Apartamento")
	assert.Contains(t, p, "Área: 45m²")
	assert.Contains(t, p, "Quartos: 1")
	assert.Contains(t, p, "Preço: R$ 320000")
	assert.Contains(t, p, "Destaques extras: perto do metrô")
	assert.Contains(t, p, "Em Português do Brasil.")
}

func TestRequestFrom(t *testing.T) {
	p := models.Property{Type: models.PropertyTypeLand, City: "Campinas", District: "Swiss Park", Area: 360, Price: 150000}
	r := RequestFrom(p, "plano")
	assert.Equal(t, Request{Type: models.PropertyTypeLand, City: "Campinas", District: "Swiss Park", Area: 360, Price: 150000, Features: "plano"}, r)
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "")
	require.Error(t, err)
}
