package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user account.
	// Fails when the username is already taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user account.
	Update(ctx context.Context, aggregate *user.User) error

	// Delete removes a user account by its unique identifier.
	// Returns an ObjectNotFoundError when no such account exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a user account by its unique identifier.
	// Returns an ObjectNotFoundError when no such account exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user account by its login name.
	// Returns an ObjectNotFoundError when no such account exists.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetAll retrieves every user account.
	GetAll(ctx context.Context) ([]*user.User, error)
}
