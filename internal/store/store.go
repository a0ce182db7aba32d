package store

import (
	"context"
	"errors"

	"github.com/quokkahq/gatehouse/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. The auth core only ever touches it
// through the Users repository.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id. Used by the refresh flow to
	// confirm the subject still exists.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during registration and login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns all users ordered by creation (oldest first).
	ListUsers(ctx context.Context) ([]domain.User, error)
}
