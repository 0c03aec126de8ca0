package storage

import (
	"context"
	"errors"

	"github.com/novamint/rewards-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations needed by handlers.
type UserStore interface {
	// CreateUser inserts a new user. A duplicate email surfaces as
	// ErrAlreadyExists; the store's unique constraint is the backstop, not a
	// prior existence check.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// AddPoints atomically increments the user's point balance. An unknown id
	// surfaces as ErrNotFound.
	AddPoints(ctx context.Context, id int64, delta int64) error
	// MarkTokensPurchased sets the purchase flag; setting it again is a no-op.
	// An unknown id surfaces as ErrNotFound.
	MarkTokensPurchased(ctx context.Context, id int64) error
}
