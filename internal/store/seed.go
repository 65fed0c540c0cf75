package store

import (
	"context"
	"time"

	"github.com/dmitrijs2005/imob/internal/common"
	"github.com/dmitrijs2005/imob/internal/models"
)

const seedOwner = "seed_admin"

func seedProperties(now time.Time) []models.Property {
	return []models.Property{
		{
			ID:            "1",
			OwnerID:       seedOwner,
			Title:         "Casa Moderna no Jardim América",
			Description:   "Linda casa com piscina, acabamento de alto padrão e área gourmet completa. Pronta para morar.",
			Type:          models.PropertyTypeHouse,
			Price:         850000,
			Area:          200,
			City:          "São Paulo",
			District:      "Jardim América",
			Bedrooms:      3,
			Bathrooms:     3,
			ParkingSpaces: 2,
			ImageURL:      "https://picsum.photos/id/1/800/600",
			CreatedAt:     now,
		},
		{
			ID:            "2",
			OwnerID:       seedOwner,
			Title:         "Apartamento Compacto Centro",
			Description:   "Ideal para investimento. Localização privilegiada perto do metrô e comércios.",
			Type:          models.PropertyTypeApartment,
			Price:         320000,
			Area:          45,
			City:          "Curitiba",
			District:      "Centro",
			Bedrooms:      1,
			Bathrooms:     1,
			ParkingSpaces: 0,
			ImageURL:      "https://picsum.photos/id/10/800/600",
			CreatedAt:     now,
		},
		{
			ID:            "3",
			OwnerID:       seedOwner,
			Title:         "Terreno em Condomínio Fechado",
			Description:   "Terreno plano, pronto para construir. Condomínio com segurança 24h e lazer.",
			Type:          models.PropertyTypeLand,
			Price:         150000,
			Area:          360,
			City:          "Campinas",
			District:      "Swiss Park",
			Bedrooms:      0,
			Bathrooms:     0,
			ParkingSpaces: 0,
			ImageURL:      "https://picsum.photos/id/28/800/600",
			CreatedAt:     now,
		},
	}
}

func (s *store) Initialize(ctx context.Context) error {
	var existing []models.Property
	present, err := s.load(ctx, common.KeyProperties, &existing)
	if err != nil {
		return err
	}
	if present {
		return nil
	}

	seed := seedProperties(stamp(s.now()))
	if err := s.save(ctx, common.KeyProperties, seed); err != nil {
		return err
	}
	s.log.Info(ctx, "seeded properties", "count", len(seed))
	return nil
}
