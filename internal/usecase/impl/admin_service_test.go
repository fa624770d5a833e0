package impl

import (
	"context"
	"testing"
	"time"

	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/domain/policy"
	"linkforge/internal/domain/repository"
	"linkforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	repoFixtures
	service usecase.AdminUsecase
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	repos := newRepoFixtures(t)

	return adminServiceFixtures{
		repoFixtures: repos,
		service: NewAdminService(AdminServiceParams{
			TxManager: repos.txManager,
			Config:    newTestConfig(),
			Logger:    newDiscardLogger(),
		}),
	}
}

func forbiddenReason(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "FORBIDDEN", appErr.ErrorCode())

	return appErr.Details()
}

func TestAdminService_ListUsers_WithStats(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	actor := newActor(entity.RoleAdmin)
	withPage := newUser(newActor(entity.RoleUser), "ann")
	withoutPage := newUser(newActor(entity.RoleUser), "bob")
	profile := newProfile(withPage.ID)
	profile.ViewCount = 42
	profile.UniqueVisitorCount = 7
	lastSeen := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	fx.userRepo.EXPECT().List(ctx, 50).Return([]*entity.User{withPage, withoutPage}, nil)
	fx.profileRepo.EXPECT().FindByOwner(ctx, withPage.ID).Return(profile, nil)
	fx.linkRepo.EXPECT().ListByProfile(ctx, profile.ID, false).
		Return([]*entity.Link{newLink(profile.ID, "a", 0), newLink(profile.ID, "b", 1)}, nil)
	fx.visitRepo.EXPECT().LastVisitAt(ctx, withPage.ID).Return(&lastSeen, nil)
	fx.profileRepo.EXPECT().FindByOwner(ctx, withoutPage.ID).Return(nil, repository.ErrProfileNotFound)
	fx.visitRepo.EXPECT().LastVisitAt(ctx, withoutPage.ID).Return(nil, nil)

	users, err := fx.service.ListUsers(ctx, actor)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, entity.UserStats{Views: 42, UniqueVisitors: 7, Links: 2, LastSeenAt: &lastSeen}, users[0].Stats)
	assert.Equal(t, entity.UserStats{}, users[1].Stats)
}

func TestAdminService_ListUsers_DeniedBeforeLookup(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.ListUsers(context.Background(), newActor(entity.RoleUser))
	assert.Equal(t, policy.ReasonSelfOnly.String(), forbiddenReason(t, err))

	_, err = fx.service.ListUsers(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestAdminService_UpdateUser_NonStaffProbeIsForbidden(t *testing.T) {
	fx := createTestAdminService(t)

	// No repository expectations: the target is never looked up.
	_, err := fx.service.UpdateUser(context.Background(), newActor(entity.RoleUser), uuid.New(), &usecase.UpdateUserInput{
		Name: strPtr("Someone"),
	})
	assert.Equal(t, policy.ReasonSelfOnly.String(), forbiddenReason(t, err))
}

func TestAdminService_UpdateUser_Policy(t *testing.T) {
	role := func(r entity.Role) *entity.Role { return &r }
	status := func(s entity.Status) *entity.Status { return &s }

	tests := []struct {
		name       string
		actorRole  entity.Role
		targetRole entity.Role
		input      *usecase.UpdateUserInput
		wantReason policy.Reason
	}{
		{
			name:       "admin cannot edit another admin",
			actorRole:  entity.RoleAdmin,
			targetRole: entity.RoleAdmin,
			input:      &usecase.UpdateUserInput{Name: strPtr("Other Admin")},
			wantReason: policy.ReasonTargetRole,
		},
		{
			name:       "admin cannot change a user's role",
			actorRole:  entity.RoleAdmin,
			targetRole: entity.RoleUser,
			input:      &usecase.UpdateUserInput{Role: role(entity.RoleAdmin)},
			wantReason: policy.ReasonRoleEscalation,
		},
		{
			name:       "founder cannot edit another founder",
			actorRole:  entity.RoleFounder,
			targetRole: entity.RoleFounder,
			input:      &usecase.UpdateUserInput{Status: status(entity.StatusSuspended)},
			wantReason: policy.ReasonTargetRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestAdminService(t)
			actor := newActor(tt.actorRole)
			target := newUser(newActor(tt.targetRole), "target")
			fx.userRepo.EXPECT().FindByID(mock.Anything, target.ID).Return(target, nil)

			_, err := fx.service.UpdateUser(context.Background(), actor, target.ID, tt.input)
			assert.Equal(t, tt.wantReason.String(), forbiddenReason(t, err))
		})
	}
}

func TestAdminService_UpdateUser_FounderPromotesUser(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	actor := newActor(entity.RoleFounder)
	target := newUser(newActor(entity.RoleUser), "target")
	promoted := *target
	promoted.Role = entity.RoleAdmin
	admin := entity.RoleAdmin

	fx.userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.userRepo.EXPECT().
		Update(ctx, target.ID, mock.MatchedBy(func(u repository.UserUpdate) bool {
			return u.Role != nil && *u.Role == entity.RoleAdmin
		})).
		Return(&promoted, nil)
	fx.activityRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(a *entity.Activity) bool {
			return a.UserID == actor.ID && a.Type == entity.ActivityUserManaged && a.Metadata["targetId"] == target.ID.String()
		})).
		Return(nil)

	user, err := fx.service.UpdateUser(ctx, actor, target.ID, &usecase.UpdateUserInput{Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestAdminService_UpdateUser_InvalidRole(t *testing.T) {
	fx := createTestAdminService(t)
	bogus := entity.Role("OWNER")

	_, err := fx.service.UpdateUser(context.Background(), newActor(entity.RoleFounder), uuid.New(), &usecase.UpdateUserInput{Role: &bogus})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_UpdateUser_TargetMissing(t *testing.T) {
	fx := createTestAdminService(t)
	id := uuid.New()
	fx.userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpdateUser(context.Background(), newActor(entity.RoleAdmin), id, &usecase.UpdateUserInput{Name: strPtr("Name")})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAdminService_DeleteUser(t *testing.T) {
	t.Run("founder target is never deletable", func(t *testing.T) {
		fx := createTestAdminService(t)
		target := newUser(newActor(entity.RoleFounder), "founder")
		fx.userRepo.EXPECT().FindByID(mock.Anything, target.ID).Return(target, nil)

		err := fx.service.DeleteUser(context.Background(), newActor(entity.RoleFounder), target.ID)
		assert.Equal(t, policy.ReasonTargetRole.String(), forbiddenReason(t, err))
	})

	t.Run("admin deletes a user", func(t *testing.T) {
		fx := createTestAdminService(t)
		actor := newActor(entity.RoleAdmin)
		target := newUser(newActor(entity.RoleUser), "victim")

		fx.userRepo.EXPECT().FindByID(mock.Anything, target.ID).Return(target, nil)
		fx.profileRepo.EXPECT().FindByOwner(mock.Anything, target.ID).Return(nil, repository.ErrProfileNotFound)
		fx.visitRepo.EXPECT().DeleteByOwner(mock.Anything, target.ID).Return(nil)
		fx.activityRepo.EXPECT().DeleteByUser(mock.Anything, target.ID).Return(nil)
		fx.refreshRepo.EXPECT().DeleteRefreshTokensByUserID(mock.Anything, target.ID).Return(nil)
		fx.userRepo.EXPECT().Delete(mock.Anything, target.ID).Return(nil)
		fx.expectActivity(entity.ActivityUserManaged)

		require.NoError(t, fx.service.DeleteUser(context.Background(), actor, target.ID))
	})
}
