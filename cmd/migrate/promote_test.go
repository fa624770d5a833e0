package main

import (
	"context"
	"testing"

	"linkforge/internal/domain/entity"
	"linkforge/internal/domain/repository"
	mockRepo "linkforge/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type promoteFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	activityRepo *mockRepo.MockActivityRepository
}

func newPromoteFixtures(t *testing.T) promoteFixtures {
	fx := promoteFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		activityRepo: mockRepo.NewMockActivityRepository(t),
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	factory.EXPECT().ActivityRepo().Return(fx.activityRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return fx
}

func TestPromote_GrantsFounder(t *testing.T) {
	fx := newPromoteFixtures(t)
	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", Role: entity.RoleUser}
	founder := entity.RoleFounder

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(user, nil).Once()
	fx.userRepo.EXPECT().
		Update(mock.Anything, user.ID, repository.UserUpdate{Role: &founder}).
		Return(&entity.User{ID: user.ID, Email: user.Email, Role: entity.RoleFounder}, nil).
		Once()
	fx.activityRepo.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(a *entity.Activity) bool {
			return a.UserID == user.ID && a.Type == entity.ActivityUserManaged
		})).
		Return(nil).
		Once()

	got, err := promote(context.Background(), fx.txManager, "  Ann@Example.com ", entity.RoleFounder)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleFounder, got.Role)
}

func TestPromote_AlreadyHoldsRole(t *testing.T) {
	fx := newPromoteFixtures(t)
	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(user, nil).Once()

	got, err := promote(context.Background(), fx.txManager, "ann@example.com", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Same(t, user, got)
}

func TestPromote_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		email string
		role  entity.Role
	}{
		{"user role", "ann@example.com", entity.RoleUser},
		{"unknown role", "ann@example.com", entity.Role("OWNER")},
		{"blank email", "  ", entity.RoleFounder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newPromoteFixtures(t)

			_, err := promote(context.Background(), fx.txManager, tt.email, tt.role)
			assert.Error(t, err)
		})
	}
}

func TestPromote_UnknownAccount(t *testing.T) {
	fx := newPromoteFixtures(t)

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound).Once()

	_, err := promote(context.Background(), fx.txManager, "ghost@example.com", entity.RoleFounder)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}
