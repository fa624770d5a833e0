package impl

import (
	"context"
	"log/slog"

	deliverycontext "linkforge/internal/delivery/context"
	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/domain/repository"
	"linkforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// visitService implements the VisitUsecase interface.
type visitService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// VisitServiceParams holds dependencies for VisitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewVisitService is the constructor for visitService.
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordVisit counts one page view.
//
// The profile row is locked before the visitor lookup, so two first sightings
// of the same visitor racing each other increment the unique counter once.
// The view counter is incremented on every call.
func (srv *visitService) RecordVisit(ctx context.Context, input *usecase.RecordVisitInput) (*usecase.RecordVisitOutput, error) {
	if input.OwnerID == uuid.Nil && input.Username == "" {
		return nil, invalid("owner is required")
	}

	out := &usecase.RecordVisitOutput{VisitorID: input.VisitorID}
	if _, err := uuid.Parse(out.VisitorID); err != nil {
		out.VisitorID = uuid.NewString()
		out.IsNewVisitor = true
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ownerID, err := resolveOwner(ctx, repoFactory, input)
		if err != nil {
			return err
		}

		profileRepo := repoFactory.ProfileRepo()
		profile, err := profileRepo.LockByOwner(ctx, ownerID)
		if err != nil {
			return translateRepoError(err, "failed to lock profile")
		}
		if !profile.IsPublic {
			return errors.Wrap(domainerrors.ErrNotFound, "page is private")
		}

		if !out.IsNewVisitor {
			seen, err := repoFactory.VisitRepo().ExistsForVisitor(ctx, ownerID, out.VisitorID)
			if err != nil {
				return errors.Wrap(err, "failed to look up visitor")
			}
			out.IsNewVisitor = !seen
		}

		visit := &entity.Visit{
			OwnerID:   ownerID,
			VisitorID: out.VisitorID,
			IP:        input.IP,
			UserAgent: input.UserAgent,
		}
		if err := repoFactory.VisitRepo().Append(ctx, visit); err != nil {
			return errors.Wrap(err, "failed to append visit")
		}

		if err := profileRepo.IncrementViewCount(ctx, ownerID, 1); err != nil {
			return translateRepoError(err, "failed to count view")
		}
		if out.IsNewVisitor {
			if err := profileRepo.IncrementUniqueVisitors(ctx, ownerID, 1); err != nil {
				return translateRepoError(err, "failed to count visitor")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Debug("Visit not recorded", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute visit transaction")
	}

	return out, nil
}

func resolveOwner(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.RecordVisitInput) (uuid.UUID, error) {
	if input.OwnerID != uuid.Nil {
		return input.OwnerID, nil
	}

	owner, err := repoFactory.UserRepo().FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return uuid.Nil, errors.Wrap(domainerrors.ErrNotFound, "unknown username")
		}

		return uuid.Nil, errors.Wrap(err, "failed to find owner")
	}
	if !owner.IsActive() {
		return uuid.Nil, errors.Wrap(domainerrors.ErrNotFound, "owner is not active")
	}

	return owner.ID, nil
}
