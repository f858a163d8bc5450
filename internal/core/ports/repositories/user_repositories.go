package repositories

import (
	"context"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a specific user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// CountUsersByRole counts users holding the given role.
	CountUsersByRole(ctx context.Context, role domain.Role) (int64, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
