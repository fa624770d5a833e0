package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"linkforge/config"
	deliverycontext "linkforge/internal/delivery/context"
	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/domain/ordering"
	"linkforge/internal/domain/repository"
	"linkforge/internal/domain/service"
	"linkforge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	config    *config.Config
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRService service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		qrService: params.QRService,
		config:    params.Config,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetDesign(ctx context.Context, actor *entity.Actor) (*entity.Profile, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}

	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = ensureProfile(ctx, repoFactory, actor.ID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load design")
	}

	return profile, nil
}

// UpdateDesign applies a partial design update. Applying the same update twice
// leaves the profile unchanged.
func (srv *profileService) UpdateDesign(ctx context.Context, actor *entity.Actor, design *entity.ProfileDesign) (*entity.Profile, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}
	if design == nil {
		return nil, invalid("design is required")
	}
	if err := validateDesign(design); err != nil {
		return nil, err
	}

	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = lockProfile(ctx, repoFactory, actor.ID)
		if err != nil {
			return err
		}

		design.Apply(profile)
		if err := repoFactory.ProfileRepo().Update(ctx, profile); err != nil {
			return translateRepoError(err, "failed to update design")
		}

		return appendActivity(ctx, repoFactory, actor.ID, entity.ActivityDesignUpdated, "Page design updated", nil)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute design update transaction")
	}

	return profile, nil
}

// GetPublicPage returns what an anonymous visitor sees. Unknown, inactive and
// private owners all look the same from outside.
func (srv *profileService) GetPublicPage(ctx context.Context, username string) (*usecase.PublicPage, error) {
	if username == "" {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "empty username")
	}

	page := &usecase.PublicPage{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "unknown username")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if !user.IsActive() {
			return errors.Wrap(domainerrors.ErrNotFound, "owner is not active")
		}

		profile, err := repoFactory.ProfileRepo().FindByOwner(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "owner has no page")
			}

			return errors.Wrap(err, "failed to load profile")
		}
		if !profile.IsPublic {
			return errors.Wrap(domainerrors.ErrNotFound, "page is private")
		}

		links, err := repoFactory.LinkRepo().ListByProfile(ctx, profile.ID, true)
		if err != nil {
			return errors.Wrap(err, "failed to list links")
		}

		page.User = user
		page.Profile = profile
		page.Links = ordering.Sorted(links)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load public page")
	}

	return page, nil
}

func (srv *profileService) GetProfileQRCode(ctx context.Context, actor *entity.Actor) ([]byte, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = repoFactory.UserRepo().FindByID(ctx, actor.ID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	png, err := srv.qrService.GenerateProfileQR(srv.publicPageURL(user.Username))
	if err != nil {
		srv.log(ctx).Error("Failed to generate QR code", slog.Any("userID", actor.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

func (srv *profileService) publicPageURL(username string) string {
	base := srv.config.HTTP.PublicBaseURL
	if base == "" {
		base = "http://localhost:" + strconv.Itoa(srv.config.HTTP.Port)
	}

	return base + "/p/" + url.PathEscape(username)
}
