// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/domain/policy"
	"linkforge/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// denialError converts a denied policy decision into the matching domain error.
func denialError(decision policy.Decision, msg string) error {
	if decision.Reason == policy.ReasonNotAuthenticated {
		return errors.Wrap(domainerrors.ErrNotAuthenticated, msg)
	}

	return errors.Wrap(domainerrors.ErrForbidden.WithDetails(decision.Reason.String()), msg)
}

func requireActiveSession(actor *entity.Actor) error {
	if decision := policy.RequireActiveSession(actor); !decision.Allowed {
		return denialError(decision, "active session required")
	}

	return nil
}

// translateRepoError maps repository sentinels onto domain errors.
// Anything else, including errors that already are domain errors, is only wrapped.
func translateRepoError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, msg)
	case errors.Is(err, repository.ErrProfileNotFound):
		return errors.Wrap(domainerrors.ErrProfileNotFound, msg)
	case errors.Is(err, repository.ErrLinkNotFound):
		return errors.Wrap(domainerrors.ErrLinkNotFound, msg)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return errors.Wrap(domainerrors.ErrEmailTaken, msg)
	case errors.Is(err, repository.ErrDuplicateUsername):
		return errors.Wrap(domainerrors.ErrUsernameTaken, msg)
	case errors.Is(err, repository.ErrRefreshTokenNotFound), errors.Is(err, repository.ErrRefreshTokenExpired):
		return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, msg)
	default:
		return errors.Wrap(err, msg)
	}
}

// ensureProfile returns the owner's profile, creating the default one on first access.
func ensureProfile(ctx context.Context, repoFactory repository.RepositoryFactory, ownerID uuid.UUID) (*entity.Profile, error) {
	profile, err := repoFactory.ProfileRepo().FindByOwner(ctx, ownerID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, translateRepoError(err, "failed to load profile")
	}

	owner, err := repoFactory.UserRepo().FindByID(ctx, ownerID)
	if err != nil {
		return nil, translateRepoError(err, "failed to load profile owner")
	}

	profile, err = repoFactory.ProfileRepo().FindOrCreateDefault(ctx, entity.NewDefaultProfile(owner.ID, owner.Name))
	if err != nil {
		return nil, translateRepoError(err, "failed to create default profile")
	}

	return profile, nil
}

// lockProfile takes the row lock that serializes every change to the owner's link order.
func lockProfile(ctx context.Context, repoFactory repository.RepositoryFactory, ownerID uuid.UUID) (*entity.Profile, error) {
	profile, err := repoFactory.ProfileRepo().LockByOwner(ctx, ownerID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, translateRepoError(err, "failed to lock profile")
	}

	if _, err := ensureProfile(ctx, repoFactory, ownerID); err != nil {
		return nil, err
	}

	profile, err = repoFactory.ProfileRepo().LockByOwner(ctx, ownerID)
	if err != nil {
		return nil, translateRepoError(err, "failed to lock profile")
	}

	return profile, nil
}

func appendActivity(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	userID uuid.UUID,
	activityType entity.ActivityType,
	details string,
	metadata map[string]any,
) error {
	activity := &entity.Activity{
		UserID:   userID,
		Type:     activityType,
		Details:  details,
		Metadata: metadata,
	}
	if err := repoFactory.ActivityRepo().Append(ctx, activity); err != nil {
		return translateRepoError(err, "failed to record activity")
	}

	return nil
}

// deleteUserCascade removes everything the user owns and then the user itself.
// The schema cascades too; deleting explicitly keeps the order independent of it.
func deleteUserCascade(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) error {
	profile, err := repoFactory.ProfileRepo().FindByOwner(ctx, userID)
	switch {
	case err == nil:
		if err := repoFactory.LinkRepo().DeleteByProfile(ctx, profile.ID); err != nil {
			return errors.Wrap(err, "failed to delete links")
		}
		if err := repoFactory.ProfileRepo().Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete profile")
		}
	case !errors.Is(err, repository.ErrProfileNotFound):
		return errors.Wrap(err, "failed to load profile")
	}

	if err := repoFactory.VisitRepo().DeleteByOwner(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete visits")
	}
	if err := repoFactory.ActivityRepo().DeleteByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete activities")
	}
	if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete sessions")
	}
	if err := repoFactory.UserRepo().Delete(ctx, userID); err != nil {
		return translateRepoError(err, "failed to delete user")
	}

	return nil
}

// checkUniqueness rejects an email or username already used by another account.
func checkUniqueness(ctx context.Context, userRepo repository.UserRepository, email, username *string, excludeID uuid.UUID) error {
	if email != nil {
		taken, err := userRepo.ExistsByEmail(ctx, *email, excludeID)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if taken {
			return errors.Wrap(domainerrors.ErrEmailTaken, "email is already registered")
		}
	}
	if username != nil {
		taken, err := userRepo.ExistsByUsername(ctx, *username, excludeID)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if taken {
			return errors.Wrap(domainerrors.ErrUsernameTaken, "username is already taken")
		}
	}

	return nil
}
