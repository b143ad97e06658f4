package repository

import (
	"context"
	"errors"

	"github.com/mvisser/enroll/internal/core/domain"
)

// ErrDuplicateUsername is returned by Create when the username is already
// taken. The sqlite implementation maps the UNIQUE constraint violation to
// this error, so concurrent registrations racing on the same username
// resolve atomically in the insert itself.
var ErrDuplicateUsername = errors.New("username already taken")

type UserRepository interface {
	// Create persists the user and assigns its ID.
	Create(ctx context.Context, user *domain.User) error
	// FindByUsername returns (nil, nil) when no such user exists.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID returns (nil, nil) when no such user exists.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
