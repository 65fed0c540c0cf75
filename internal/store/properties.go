package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/imob/internal/common"
	"github.com/dmitrijs2005/imob/internal/models"
)

func (s *store) ListProperties(ctx context.Context) ([]models.Property, error) {
	props := []models.Property{}
	if _, err := s.load(ctx, common.KeyProperties, &props); err != nil {
		return nil, err
	}
	if props == nil {
		// a stored JSON null
		props = []models.Property{}
	}
	return props, nil
}

func (s *store) ListOwnerProperties(ctx context.Context, ownerID string) ([]models.Property, error) {
	props, err := s.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]models.Property, 0, len(props))
	for _, p := range props {
		if p.OwnerID == ownerID {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

func (s *store) GetProperty(ctx context.Context, id string) (models.Property, error) {
	props, err := s.ListProperties(ctx)
	if err != nil {
		return models.Property{}, err
	}
	i := indexOf(props, id)
	if i < 0 {
		return models.Property{}, fmt.Errorf("property %s: %w", id, ErrNotFound)
	}
	return props[i], nil
}

func (s *store) SaveProperty(ctx context.Context, draft models.PropertyDraft, existingID string) (models.Property, error) {
	props, err := s.ListProperties(ctx)
	if err != nil {
		return models.Property{}, err
	}

	if draft.CreatedAt != nil {
		draft.CreatedAt = models.Ptr(stamp(*draft.CreatedAt))
	}

	if existingID == "" {
		p := models.DefaultProperty()
		p.ID = s.newID()
		p.CreatedAt = stamp(s.now())
		p = draft.Apply(p)

		props = slices.Insert(props, 0, p)
		if err := s.save(ctx, common.KeyProperties, props); err != nil {
			return models.Property{}, err
		}
		s.log.Debug(ctx, "property created", "id", p.ID, "owner", p.OwnerID)
		return p, nil
	}

	i := indexOf(props, existingID)
	if i < 0 {
		return models.Property{}, fmt.Errorf("property %s: %w", existingID, ErrNotFound)
	}

	props[i] = draft.Apply(props[i])
	if err := s.save(ctx, common.KeyProperties, props); err != nil {
		return models.Property{}, err
	}
	s.log.Debug(ctx, "property updated", "id", existingID)
	return props[i], nil
}

func (s *store) DeleteProperty(ctx context.Context, id string) error {
	props, err := s.ListProperties(ctx)
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(props, func(p models.Property) bool { return p.ID == id })
	if err := s.save(ctx, common.KeyProperties, kept); err != nil {
		return err
	}
	s.log.Debug(ctx, "property deleted", "id", id)
	return nil
}

// stamp reduces t to what a persisted document holds: Unix milliseconds, no
// monotonic reading.
func stamp(t time.Time) time.Time {
	return t.Truncate(time.Millisecond).Round(0)
}

func indexOf(props []models.Property, id string) int {
	return slices.IndexFunc(props, func(p models.Property) bool { return p.ID == id })
}
