package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/imob/internal/common"
)

// load decodes the document under key into dst. It reports false when the
// key is absent or empty, leaving dst untouched.
func (s *store) load(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", common.ErrCorruptDocument, key, err)
	}
	return true, nil
}

func encode(key string, v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return b, nil
}

func (s *store) save(ctx context.Context, key string, v any) error {
	b, err := encode(key, v)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, key, b); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
