package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/imob/internal/common"
	"github.com/dmitrijs2005/imob/internal/describe"
	"github.com/dmitrijs2005/imob/internal/logging"
	"github.com/dmitrijs2005/imob/internal/models"
	"github.com/dmitrijs2005/imob/internal/store"
)

type App struct {
	store     store.Store
	describer describe.Describer
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	// interactive enables the prompt and banner; off when input is piped.
	interactive bool
	user        *models.User
}

func NewApp(s store.Store, d describe.Describer, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Discard()
	}
	return &App{
		store:     s,
		describer: d,
		log:       log,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// SetInteractive toggles the prompt shown before each command.
func (a *App) SetInteractive(v bool) {
	a.interactive = v
}

// Run seeds the store if needed, restores the saved session and serves
// commands until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	if err := a.store.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}

	user, err := a.store.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	a.user = user

	if a.interactive {
		fmt.Fprintln(a.out, "Welcome to imob CLI (type 'help' for commands)")
	}
	runREPL(ctx, a, a.getStatus, a.reader, a.out, a.interactive, a.log)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Email)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// requireUser returns the session user or common.ErrorUnauthorized.
func (a *App) requireUser() (*models.User, error) {
	if a.user == nil {
		return nil, fmt.Errorf("%w: login first", common.ErrorUnauthorized)
	}
	return a.user, nil
}

// ownedProperty loads id and checks that the session user owns it.
func (a *App) ownedProperty(ctx context.Context, id string) (models.Property, error) {
	user, err := a.requireUser()
	if err != nil {
		return models.Property{}, err
	}
	p, err := a.store.GetProperty(ctx, id)
	if err != nil {
		return models.Property{}, err
	}
	if p.OwnerID != user.ID {
		return models.Property{}, fmt.Errorf("%w: listing %s belongs to another user", common.ErrorUnauthorized, id)
	}
	return p, nil
}
