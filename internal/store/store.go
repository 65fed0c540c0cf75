package store

import (
	"context"
	"time"

	"github.com/dmitrijs2005/imob/internal/common"
	"github.com/dmitrijs2005/imob/internal/logging"
	"github.com/dmitrijs2005/imob/internal/models"
	"github.com/dmitrijs2005/imob/internal/repositories/kv"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a property ID does not exist.
var ErrNotFound = common.ErrorNotFound

type Store interface {
	// Initialize writes the seed listings unless a properties collection is
	// already present. It is safe to call on every start.
	Initialize(ctx context.Context) error

	// GetSession returns the logged-in user, or nil when nobody is.
	GetSession(ctx context.Context) (*models.User, error)
	// Login finds the user with exactly this email, creating it if needed,
	// and makes it the session user.
	Login(ctx context.Context, email string) (models.User, error)
	// Logout clears the session. Logging out twice is not an error.
	Logout(ctx context.Context) error

	ListProperties(ctx context.Context) ([]models.Property, error)
	ListOwnerProperties(ctx context.Context, ownerID string) ([]models.Property, error)
	GetProperty(ctx context.Context, id string) (models.Property, error)
	// SaveProperty creates a listing when existingID is empty and merges the
	// draft into the listing with that ID otherwise.
	SaveProperty(ctx context.Context, draft models.PropertyDraft, existingID string) (models.Property, error)
	// DeleteProperty removes the listing if present.
	DeleteProperty(ctx context.Context, id string) error
}

type Option func(*store)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *store) { s.now = now }
}

// WithIDGenerator overrides how user and property IDs are produced.
func WithIDGenerator(newID func() string) Option {
	return func(s *store) { s.newID = newID }
}

func WithLogger(l logging.Logger) Option {
	return func(s *store) { s.log = l }
}

type store struct {
	repo  kv.Repository
	now   func() time.Time
	newID func() string
	log   logging.Logger
}

func New(repo kv.Repository, opts ...Option) Store {
	s := &store{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
		log:   logging.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}
