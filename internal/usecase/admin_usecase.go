package usecase

import (
	"context"

	"linkforge/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserInput is a staff edit of another account. Nil fields are left unchanged.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Username *string
	Role     *entity.Role
	Status   *entity.Status
}

// AdminUsecase defines user management for ADMIN and FOUNDER actors.
type AdminUsecase interface {
	// ListUsers returns every user, newest first, with engagement numbers.
	ListUsers(ctx context.Context, actor *entity.Actor) ([]*entity.UserWithStats, error)
	UpdateUser(ctx context.Context, actor *entity.Actor, targetID uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, actor *entity.Actor, targetID uuid.UUID) error
}
