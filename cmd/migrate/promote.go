package main

import (
	"context"
	"strings"

	"linkforge/internal/domain/entity"
	"linkforge/internal/domain/repository"

	"github.com/pkg/errors"
)

// promote grants role to the account registered under email and records it
// in that account's activity feed. Registration only ever creates USER
// accounts, so this is how the first FOUNDER comes to exist.
func promote(ctx context.Context, txManager repository.TransactionManager, email string, role entity.Role) (*entity.User, error) {
	if !role.IsStaff() {
		return nil, errors.Errorf("role must be FOUNDER or ADMIN, got %q", role)
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email is required")
	}

	var promoted *entity.User
	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if err != nil {
			return errors.Wrapf(err, "failed to find account %s", email)
		}

		if user.Role == role {
			promoted = user

			return nil
		}

		promoted, err = repoFactory.UserRepo().Update(ctx, user.ID, repository.UserUpdate{Role: &role})
		if err != nil {
			return errors.Wrap(err, "failed to update role")
		}

		activity := &entity.Activity{
			UserID:  user.ID,
			Type:    entity.ActivityUserManaged,
			Details: "Role changed from " + string(user.Role) + " to " + string(role),
		}
		if err := repoFactory.ActivityRepo().Append(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to append activity")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return promoted, nil
}
