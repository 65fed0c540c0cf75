package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/imob/internal/models"
)

// Import saves a listing from a JSON draft file. With an id the draft is
// merged into that listing, otherwise a new one is created. The owner is
// always the session user.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: import <file> [id]")
	}
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	var id string
	if len(args) > 1 {
		id = args[1]
		if _, err := a.ownedProperty(ctx, id); err != nil {
			return err
		}
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	draft, err := models.DecodeDraft(f)
	if err != nil {
		return err
	}
	draft.OwnerID = &user.ID

	p, err := a.store.SaveProperty(ctx, draft, id)
	if err != nil {
		return err
	}
	if id == "" {
		a.printf("Created %s\n", p.ID)
	} else {
		a.printf("Updated %s\n", p.ID)
	}
	return nil
}
