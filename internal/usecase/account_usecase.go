package usecase

import (
	"context"

	"linkforge/internal/domain/entity"
)

// UpdateAccountInput is a partial self-edit. Nil fields are left unchanged.
type UpdateAccountInput struct {
	Name     *string
	Email    *string
	Username *string
	Bio      *string
	Avatar   *string
}

// ChangePasswordInput carries the current and the new password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// AccountUsecase defines the operations a user performs on their own account.
type AccountUsecase interface {
	GetAccount(ctx context.Context, actor *entity.Actor) (*entity.User, error)
	UpdateAccount(ctx context.Context, actor *entity.Actor, input *UpdateAccountInput) (*entity.User, error)
	ChangePassword(ctx context.Context, actor *entity.Actor, input *ChangePasswordInput) error
	// DeleteAccount removes the user together with everything it owns.
	DeleteAccount(ctx context.Context, actor *entity.Actor) error
}
