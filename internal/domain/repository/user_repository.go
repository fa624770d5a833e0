// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"linkforge/internal/domain/entity"
	"linkforge/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserUpdate is a partial update of a user. Nil fields are left unchanged.
type UserUpdate struct {
	Name         *string
	Email        *string
	Username     *string
	Bio          *string
	Avatar       *string
	PasswordHash *string
	Role         *entity.Role
	Status       *entity.Status
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Username == nil && u.Bio == nil &&
		u.Avatar == nil && u.PasswordHash == nil && u.Role == nil && u.Status == nil
}

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByEmail reports whether another account uses the email.
	// excludeID may be uuid.Nil.
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	ExistsByUsername(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)

	// List returns all users, newest first.
	List(ctx context.Context, limit int) ([]*entity.User, error)

	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
