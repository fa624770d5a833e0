package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "linkforge/internal/delivery/context"
	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/domain/ordering"
	"linkforge/internal/domain/repository"
	"linkforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// linkService implements the LinkUsecase interface.
//
// Every write locks the owner's profile row first, so changes to one page's
// link order are serialized across processes.
type linkService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// LinkServiceParams holds dependencies for LinkService, injected by Fx.
type LinkServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewLinkService is the constructor for linkService.
func NewLinkService(params LinkServiceParams) usecase.LinkUsecase {
	return &linkService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *linkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *linkService) ListLinks(ctx context.Context, actor *entity.Actor) ([]*entity.Link, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}

	var links []*entity.Link
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := ensureProfile(ctx, repoFactory, actor.ID)
		if err != nil {
			return err
		}

		links, err = repoFactory.LinkRepo().ListByProfile(ctx, profile.ID, false)
		if err != nil {
			return errors.Wrap(err, "failed to list links")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load links")
	}

	return ordering.Sorted(links), nil
}

func (srv *linkService) CreateLink(ctx context.Context, actor *entity.Actor, input *usecase.CreateLinkInput) (*entity.Link, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if err := validateLinkFields(&title, &input.URL, &input.Description, &input.Icon); err != nil {
		return nil, err
	}

	link := &entity.Link{
		Title:       title,
		URL:         input.URL,
		Description: input.Description,
		Icon:        input.Icon,
		IsActive:    true,
	}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := lockProfile(ctx, repoFactory, actor.ID)
		if err != nil {
			return err
		}

		existing, err := repoFactory.LinkRepo().ListByProfile(ctx, profile.ID, false)
		if err != nil {
			return errors.Wrap(err, "failed to list links")
		}

		link.ProfileID = profile.ID
		link.Order = ordering.NextOrder(existing)
		if err := repoFactory.LinkRepo().Insert(ctx, link); err != nil {
			return errors.Wrap(err, "failed to insert link")
		}

		return appendActivity(ctx, repoFactory, actor.ID, entity.ActivityLinkCreated, "Added link "+link.Title, map[string]any{
			"linkId": link.ID.String(),
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute link creation transaction")
	}

	srv.log(ctx).Info("Link created", slog.Any("userID", actor.ID), slog.Any("linkID", link.ID))

	return link, nil
}

// ownedLink loads a link and hides links of other profiles behind LINK_NOT_FOUND.
func ownedLink(ctx context.Context, repoFactory repository.RepositoryFactory, profileID, linkID uuid.UUID) (*entity.Link, error) {
	link, err := repoFactory.LinkRepo().FindByID(ctx, linkID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find link")
	}
	if link.ProfileID != profileID {
		return nil, errors.Wrap(domainerrors.ErrLinkNotFound, "link belongs to another profile")
	}

	return link, nil
}

func (srv *linkService) UpdateLink(
	ctx context.Context,
	actor *entity.Actor,
	linkID uuid.UUID,
	input *usecase.UpdateLinkInput,
) (*entity.Link, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}

	update := repository.LinkUpdate{
		URL:         input.URL,
		Description: input.Description,
		Icon:        input.Icon,
		IsActive:    input.IsActive,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		update.Title = &title
	}
	if err := validateLinkFields(update.Title, update.URL, update.Description, update.Icon); err != nil {
		return nil, err
	}

	var updated *entity.Link
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := lockProfile(ctx, repoFactory, actor.ID)
		if err != nil {
			return err
		}
		if _, err := ownedLink(ctx, repoFactory, profile.ID, linkID); err != nil {
			return err
		}

		updated, err = repoFactory.LinkRepo().Update(ctx, linkID, update)
		if err != nil {
			return translateRepoError(err, "failed to update link")
		}

		return appendActivity(ctx, repoFactory, actor.ID, entity.ActivityLinkUpdated, "Updated link "+updated.Title, map[string]any{
			"linkId": linkID.String(),
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute link update transaction")
	}

	return updated, nil
}

// DeleteLink removes a link without renumbering the remaining ones.
func (srv *linkService) DeleteLink(ctx context.Context, actor *entity.Actor, linkID uuid.UUID) error {
	if err := requireActiveSession(actor); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := lockProfile(ctx, repoFactory, actor.ID)
		if err != nil {
			return err
		}
		link, err := ownedLink(ctx, repoFactory, profile.ID, linkID)
		if err != nil {
			return err
		}

		if err := repoFactory.LinkRepo().Delete(ctx, linkID); err != nil {
			return translateRepoError(err, "failed to delete link")
		}

		return appendActivity(ctx, repoFactory, actor.ID, entity.ActivityLinkDeleted, "Deleted link "+link.Title, map[string]any{
			"linkId": linkID.String(),
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute link deletion transaction")
	}

	srv.log(ctx).Info("Link deleted", slog.Any("userID", actor.ID), slog.Any("linkID", linkID))

	return nil
}

func (srv *linkService) MoveLink(
	ctx context.Context,
	actor *entity.Actor,
	linkID uuid.UUID,
	direction entity.MoveDirection,
) ([]*entity.Link, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}
	if !direction.IsValid() {
		return nil, invalid("direction must be up or down")
	}

	return srv.rearrange(ctx, actor, func(links []*entity.Link) (ordering.Result, error) {
		res, err := ordering.Move(links, linkID, direction)
		if errors.Is(err, ordering.ErrLinkNotInSet) {
			return res, errors.Wrap(domainerrors.ErrLinkNotFound, "link belongs to another profile")
		}

		return res, err
	})
}

// ReorderLinks assigns order = position in ids. A foreign id rejects the
// whole call before anything is written.
func (srv *linkService) ReorderLinks(ctx context.Context, actor *entity.Actor, ids []uuid.UUID) ([]*entity.Link, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}

	return srv.rearrange(ctx, actor, func(links []*entity.Link) (ordering.Result, error) {
		res, err := ordering.Reorder(links, ids)
		switch {
		case errors.Is(err, ordering.ErrForeignLinkID):
			return res, errors.Wrap(domainerrors.ErrForeignLinkID, "reorder rejected")
		case errors.Is(err, ordering.ErrDuplicateLinkID):
			return res, invalid("link ids must be unique")
		}

		return res, err
	})
}

// rearrange runs an ordering function against the locked link set and
// persists the resulting changes in one bulk write.
func (srv *linkService) rearrange(
	ctx context.Context,
	actor *entity.Actor,
	arrange func(links []*entity.Link) (ordering.Result, error),
) ([]*entity.Link, error) {
	var result []*entity.Link
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := lockProfile(ctx, repoFactory, actor.ID)
		if err != nil {
			return err
		}

		links, err := repoFactory.LinkRepo().ListByProfile(ctx, profile.ID, false)
		if err != nil {
			return errors.Wrap(err, "failed to list links")
		}

		res, err := arrange(links)
		if err != nil {
			return err
		}
		result = res.Links

		if !res.Changed() {
			return nil
		}

		if err := repoFactory.LinkRepo().BulkSetOrder(ctx, profile.ID, res.Changes); err != nil {
			return translateRepoError(err, "failed to store link order")
		}

		return appendActivity(ctx, repoFactory, actor.ID, entity.ActivityLinksReordered, "Links reordered", nil)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute link ordering transaction")
	}

	return result, nil
}

// RecordClick counts a click on a public link and returns its target URL.
// Links that are inactive or sit on a page nobody may see are not found.
func (srv *linkService) RecordClick(ctx context.Context, linkID uuid.UUID) (string, error) {
	var target string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		link, err := repoFactory.LinkRepo().FindByID(ctx, linkID)
		if err != nil {
			return translateRepoError(err, "failed to find link")
		}
		if !link.IsActive {
			return errors.Wrap(domainerrors.ErrLinkNotFound, "link is inactive")
		}

		profile, err := repoFactory.ProfileRepo().FindByID(ctx, link.ProfileID)
		if err != nil {
			return translateRepoError(err, "failed to find profile")
		}
		if !profile.IsPublic {
			return errors.Wrap(domainerrors.ErrLinkNotFound, "page is private")
		}

		owner, err := repoFactory.UserRepo().FindByID(ctx, profile.OwnerID)
		if err != nil {
			return translateRepoError(err, "failed to find owner")
		}
		if !owner.IsActive() {
			return errors.Wrap(domainerrors.ErrLinkNotFound, "owner is not active")
		}

		if err := repoFactory.LinkRepo().IncrementClickCount(ctx, linkID); err != nil {
			return translateRepoError(err, "failed to count click")
		}
		target = link.URL

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to record click")
	}

	return target, nil
}
