package usecase

import (
	"context"

	"linkforge/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLinkInput defines a new link. It is appended after the existing ones.
type CreateLinkInput struct {
	Title       string
	URL         string
	Description string
	Icon        string
}

// UpdateLinkInput is a partial link update. Nil fields are left unchanged.
type UpdateLinkInput struct {
	Title       *string
	URL         *string
	Description *string
	Icon        *string
	IsActive    *bool
}

// LinkUsecase defines link management. Every mutation of the order runs under
// the owner's profile lock.
type LinkUsecase interface {
	ListLinks(ctx context.Context, actor *entity.Actor) ([]*entity.Link, error)
	CreateLink(ctx context.Context, actor *entity.Actor, input *CreateLinkInput) (*entity.Link, error)
	UpdateLink(ctx context.Context, actor *entity.Actor, linkID uuid.UUID, input *UpdateLinkInput) (*entity.Link, error)
	DeleteLink(ctx context.Context, actor *entity.Actor, linkID uuid.UUID) error
	// MoveLink swaps the link with its neighbour and returns the resulting order.
	MoveLink(ctx context.Context, actor *entity.Actor, linkID uuid.UUID, direction entity.MoveDirection) ([]*entity.Link, error)
	// ReorderLinks assigns order = index of ids and returns the resulting order.
	ReorderLinks(ctx context.Context, actor *entity.Actor, ids []uuid.UUID) ([]*entity.Link, error)
	// RecordClick counts a click on a public link and returns its target URL.
	RecordClick(ctx context.Context, linkID uuid.UUID) (string, error)
}
