package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by their unique username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByID reports whether a user with the given ID exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save inserts or updates a user
	Save(ctx context.Context, user *User) error
}
