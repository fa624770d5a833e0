package impl

import (
	"context"
	"log/slog"
	"strings"

	"linkforge/config"
	deliverycontext "linkforge/internal/delivery/context"
	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/domain/policy"
	"linkforge/internal/domain/repository"
	"linkforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	config    *config.Config
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		config:    params.Config,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) ListUsers(ctx context.Context, actor *entity.Actor) ([]*entity.UserWithStats, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}
	if decision := policy.CanListUsers(actor); !decision.Allowed {
		return nil, denialError(decision, "user list denied")
	}

	var result []*entity.UserWithStats
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users, err := repoFactory.UserRepo().List(ctx, srv.config.Admin.ListLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}

		result = make([]*entity.UserWithStats, 0, len(users))
		for _, user := range users {
			stats, err := userStats(ctx, repoFactory, user.ID)
			if err != nil {
				return err
			}
			result = append(result, &entity.UserWithStats{User: user, Stats: stats})
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user list transaction")
	}

	return result, nil
}

func userStats(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (entity.UserStats, error) {
	var stats entity.UserStats

	profile, err := repoFactory.ProfileRepo().FindByOwner(ctx, userID)
	switch {
	case err == nil:
		stats.Views = profile.ViewCount
		stats.UniqueVisitors = profile.UniqueVisitorCount

		links, err := repoFactory.LinkRepo().ListByProfile(ctx, profile.ID, false)
		if err != nil {
			return stats, errors.Wrap(err, "failed to count links")
		}
		stats.Links = int64(len(links))
	case !errors.Is(err, repository.ErrProfileNotFound):
		return stats, errors.Wrap(err, "failed to load profile")
	}

	lastSeen, err := repoFactory.VisitRepo().LastVisitAt(ctx, userID)
	if err != nil {
		return stats, errors.Wrap(err, "failed to load last visit")
	}
	stats.LastSeenAt = lastSeen

	return stats, nil
}

// preGate rejects a non-staff actor aimed at another account before any
// lookup, so the response does not reveal whether the target exists.
func preGate(actor *entity.Actor, targetID uuid.UUID) error {
	if actor.ID != targetID && !actor.Role.IsStaff() {
		return errors.Wrap(domainerrors.ErrForbidden.WithDetails(policy.ReasonSelfOnly.String()), "user management denied")
	}

	return nil
}

func (srv *adminService) UpdateUser(
	ctx context.Context,
	actor *entity.Actor,
	targetID uuid.UUID,
	input *usecase.UpdateUserInput,
) (*entity.User, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}
	if err := preGate(actor, targetID); err != nil {
		return nil, err
	}

	update, err := buildUserUpdate(input)
	if err != nil {
		return nil, err
	}

	var updated *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		target, err := userRepo.FindByID(ctx, targetID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		edit := policy.CanEditUser(actor, target.Actor())
		if decision := policy.CheckEditFields(edit, userFields(input)); !decision.Allowed {
			return denialError(decision, "user update denied")
		}

		if err := checkUniqueness(ctx, userRepo, update.Email, update.Username, targetID); err != nil {
			return err
		}

		updated, err = userRepo.Update(ctx, targetID, update)
		if err != nil {
			return translateRepoError(err, "failed to update user")
		}

		return appendActivity(ctx, repoFactory, actor.ID, entity.ActivityUserManaged, "Updated user "+updated.Username, map[string]any{
			"targetId": targetID.String(),
		})
	})
	if err != nil {
		srv.log(ctx).Warn("User update failed",
			slog.Any("actorID", actor.ID),
			slog.Any("targetID", targetID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	srv.log(ctx).Info("User updated", slog.Any("actorID", actor.ID), slog.Any("targetID", targetID))

	return updated, nil
}

func userFields(input *usecase.UpdateUserInput) policy.FieldSet {
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
	if input.Role != nil {
		fields = append(fields, policy.FieldRole)
	}
	if input.Status != nil {
		fields = append(fields, policy.FieldStatus)
	}

	return policy.Fields(fields...)
}

func buildUserUpdate(input *usecase.UpdateUserInput) (repository.UserUpdate, error) {
	update := repository.UserUpdate{Username: input.Username, Role: input.Role, Status: input.Status}

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
	if input.Role != nil && !input.Role.IsValid() {
		return update, invalid("role must be USER, ADMIN or FOUNDER")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return update, invalid("status must be ACTIVE, SUSPENDED or INACTIVE")
	}

	return update, nil
}

func (srv *adminService) DeleteUser(ctx context.Context, actor *entity.Actor, targetID uuid.UUID) error {
	if err := requireActiveSession(actor); err != nil {
		return err
	}
	if err := preGate(actor, targetID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		target, err := repoFactory.UserRepo().FindByID(ctx, targetID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		if decision := policy.CanDeleteUser(actor, target.Actor()); !decision.Allowed {
			return denialError(decision, "user deletion denied")
		}

		if err := deleteUserCascade(ctx, repoFactory, targetID); err != nil {
			return err
		}

		if actor.ID == targetID {
			return nil
		}

		return appendActivity(ctx, repoFactory, actor.ID, entity.ActivityUserManaged, "Deleted user "+target.Username, map[string]any{
			"targetId": targetID.String(),
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute user deletion transaction")
	}

	srv.log(ctx).Info("User deleted", slog.Any("actorID", actor.ID), slog.Any("targetID", targetID))

	return nil
}
