package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "linkforge/internal/delivery/context"
	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/domain/policy"
	"linkforge/internal/domain/repository"
	"linkforge/internal/domain/service"
	"linkforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) GetAccount(ctx context.Context, actor *entity.Actor) (*entity.User, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}

	return srv.loadUser(ctx, actor.ID)
}

func (srv *accountService) loadUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = repoFactory.UserRepo().FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	return user, nil
}

// UpdateAccount is the self-edit path. Role and status are never part of it.
func (srv *accountService) UpdateAccount(ctx context.Context, actor *entity.Actor, input *usecase.UpdateAccountInput) (*entity.User, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}

	edit := policy.CanEditUser(actor, actor)
	if decision := policy.CheckEditFields(edit, accountFields(input)); !decision.Allowed {
		return nil, denialError(decision, "account update denied")
	}

	update, err := buildAccountUpdate(input)
	if err != nil {
		return nil, err
	}

	var updated *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := checkUniqueness(ctx, userRepo, update.Email, update.Username, actor.ID); err != nil {
			return err
		}

		var err error
		updated, err = userRepo.Update(ctx, actor.ID, update)
		if err != nil {
			return translateRepoError(err, "failed to update account")
		}

		return appendActivity(ctx, repoFactory, actor.ID, entity.ActivityProfileUpdated, "Account settings updated", nil)
	})
	if err != nil {
		srv.log(ctx).Warn("Account update failed", slog.Any("userID", actor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account update transaction")
	}

	return updated, nil
}

func accountFields(input *usecase.UpdateAccountInput) policy.FieldSet {
	var fields []policy.Field
	if input.Name != nil {
		fields = append(fields, policy.FieldName)
	}
	if input.Email != nil {
		fields = append(fields, policy.FieldEmail)
	}
	if input.Username != nil {
		fields = append(fields, policy.FieldUsername)
	}
	if input.Bio != nil {
		fields = append(fields, policy.FieldBio)
	}
	if input.Avatar != nil {
		fields = append(fields, policy.FieldAvatar)
	}

	return policy.Fields(fields...)
}

func buildAccountUpdate(input *usecase.UpdateAccountInput) (repository.UserUpdate, error) {
	update := repository.UserUpdate{Bio: input.Bio, Avatar: input.Avatar, Username: input.Username}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateName(name); err != nil {
			return update, err
		}
		update.Name = &name
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if err := validateEmail(email); err != nil {
			return update, err
		}
		update.Email = &email
	}
	if input.Username != nil {
		if err := validateUsername(*input.Username); err != nil {
			return update, err
		}
	}
	if input.Bio != nil && len([]rune(*input.Bio)) > maxBioLength {
		return update, invalid("bio must be at most 160 characters")
	}
	if input.Avatar != nil {
		if err := validateAvatar(*input.Avatar); err != nil {
			return update, err
		}
	}

	return update, nil
}

// ChangePassword verifies the current password before storing the new one.
func (srv *accountService) ChangePassword(ctx context.Context, actor *entity.Actor, input *usecase.ChangePasswordInput) error {
	if err := requireActiveSession(actor); err != nil {
		return err
	}
	if err := validatePassword(input.CurrentPassword); err != nil {
		return err
	}
	if err := validatePassword(input.NewPassword); err != nil {
		return err
	}

	user, err := srv.loadUser(ctx, actor.ID)
	if err != nil {
		return err
	}
	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Any("userID", actor.ID))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password does not match")
	}

	hashed, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().Update(ctx, actor.ID, repository.UserUpdate{PasswordHash: &hashed}); err != nil {
			return translateRepoError(err, "failed to store password")
		}

		return appendActivity(ctx, repoFactory, actor.ID, entity.ActivityPasswordChanged, "Password changed", nil)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", actor.ID))

	return nil
}

// DeleteAccount removes the actor's account in one transaction. A FOUNDER
// cannot delete itself, so the system never loses its last founder this way.
func (srv *accountService) DeleteAccount(ctx context.Context, actor *entity.Actor) error {
	if err := requireActiveSession(actor); err != nil {
		return err
	}
	if actor.Role == entity.RoleFounder {
		return errors.Wrap(domainerrors.ErrForbidden.WithDetails(policy.ReasonTargetRole.String()), "founder accounts cannot be deleted")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return deleteUserCascade(ctx, repoFactory, actor.ID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", actor.ID))

	return nil
}
