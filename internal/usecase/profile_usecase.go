package usecase

import (
	"context"

	"linkforge/internal/domain/entity"
)

// PublicPage is what a visitor sees at /p/:username.
type PublicPage struct {
	User    *entity.User
	Profile *entity.Profile
	Links   []*entity.Link // Active links only, in display order.
}

// ProfileUsecase defines the operations on a user's link page settings.
type ProfileUsecase interface {
	// GetDesign returns the actor's profile, creating the default one on first access.
	GetDesign(ctx context.Context, actor *entity.Actor) (*entity.Profile, error)
	UpdateDesign(ctx context.Context, actor *entity.Actor, design *entity.ProfileDesign) (*entity.Profile, error)
	GetPublicPage(ctx context.Context, username string) (*PublicPage, error)
	// GetProfileQRCode returns a PNG QR code pointing at the actor's public page.
	GetProfileQRCode(ctx context.Context, actor *entity.Actor) ([]byte, error)
}
