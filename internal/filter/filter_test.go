package filter

import (
	"testing"

	"github.com/dmitrijs2005/imob/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []models.Property {
	return []models.Property{
		{ID: "1", OwnerID: "seed_admin", Title: "Casa Moderna no Jardim América", Description: "Linda casa com piscina", Type: models.PropertyTypeHouse, Price: 850000, City: "São Paulo"},
		{ID: "2", OwnerID: "seed_admin", Title: "Apartamento Compacto Centro", Description: "Ideal para investimento", Type: models.PropertyTypeApartment, Price: 320000, City: "Curitiba"},
		{ID: "3", OwnerID: "u1", Title: "Terreno em Condomínio Fechado", Description: "Terreno plano, com PISCINA no clube", Type: models.PropertyTypeLand, Price: 150000, City: "Campinas"},
	}
}

func ids(props []models.Property) []string {
	out := []string{}
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func TestApply_Identity(t *testing.T) {
	props := sample()
	assert.Equal(t, props, Apply(props, Criteria{}))
	assert.Equal(t, props, Apply(props, Criteria{Type: TypeAll}))
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, Criteria{SearchTerm: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_Criteria(t *testing.T) {
	maxPrice := 400000.0
	exact := 320000.0

	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"max price", Criteria{MaxPrice: &maxPrice}, []string{"2", "3"}},
		{"max price inclusive", Criteria{MaxPrice: &exact}, []string{"2", "3"}},
		{"search title case-insensitive", Criteria{SearchTerm: "APARTAMENTO"}, []string{"2"}},
		{"search description", Criteria{SearchTerm: "piscina"}, []string{"1", "3"}},
		{"type", Criteria{Type: string(models.PropertyTypeLand)}, []string{"3"}},
		{"type constant name does not match", Criteria{Type: "LAND"}, []string{}},
		{"city substring", Criteria{City: "camp"}, []string{"3"}},
		{"city accents", Criteria{City: "são"}, []string{"1"}},
		{"combined", Criteria{SearchTerm: "piscina", MaxPrice: &maxPrice}, []string{"3"}},
		{"nothing", Criteria{City: "Recife"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(sample(), tt.c)))
		})
	}
}

func TestApply_AddingCriterionNarrows(t *testing.T) {
	props := sample()
	maxPrice := 900000.0
	base := Criteria{SearchTerm: "a"}
	narrowed := []Criteria{
		{SearchTerm: "a", City: "c"},
		{SearchTerm: "a", Type: string(models.PropertyTypeHouse)},
		{SearchTerm: "a", MaxPrice: &maxPrice},
	}

	wide := ids(Apply(props, base))
	for _, c := range narrowed {
		got := ids(Apply(props, c))
		assert.Subset(t, wide, got)
		assert.LessOrEqual(t, len(got), len(wide))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	props := sample()
	_ = Apply(props, Criteria{City: "Curitiba"})
	assert.Equal(t, sample(), props)
}

func TestParseMaxPrice(t *testing.T) {
	v, err := ParseMaxPrice("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseMaxPrice(" 400000 ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 400000.0, *v)

	_, err = ParseMaxPrice("cheap")
	require.Error(t, err)
}
