package impl

import (
	"context"
	"testing"

	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/domain/repository"
	mockSvc "linkforge/internal/mocks/service"
	"linkforge/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	repoFixtures
	service   usecase.ProfileUsecase
	qrService *mockSvc.MockQRCodeService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	repos := newRepoFixtures(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	return profileServiceFixtures{
		repoFixtures: repos,
		service: NewProfileService(ProfileServiceParams{
			TxManager: repos.txManager,
			QRService: qrService,
			Config:    newTestConfig(),
			Logger:    newDiscardLogger(),
		}),
		qrService: qrService,
	}
}

func TestProfileService_GetDesign_CreatesDefaultOnFirstAccess(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	actor := newActor(entity.RoleUser)
	user := newUser(actor, "ann")
	created := newProfile(actor.ID)

	fx.profileRepo.EXPECT().FindByOwner(ctx, actor.ID).Return(nil, repository.ErrProfileNotFound)
	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(user, nil)
	fx.profileRepo.EXPECT().
		FindOrCreateDefault(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.OwnerID == actor.ID && p.Title == user.Name+"'s link page"
		})).
		Return(created, nil)

	profile, err := fx.service.GetDesign(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, created, profile)
}

func TestProfileService_UpdateDesign_IsIdempotent(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	actor := newActor(entity.RoleUser)
	stored := newProfile(actor.ID)

	fx.profileRepo.EXPECT().LockByOwner(ctx, actor.ID).Return(stored, nil)
	var saved []entity.Profile
	fx.profileRepo.EXPECT().Update(ctx, stored).
		Run(func(_ context.Context, p *entity.Profile) { saved = append(saved, *p) }).
		Return(nil)
	fx.activityRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.Activity")).Return(nil)

	private := false
	design := &entity.ProfileDesign{
		BackgroundColor: strPtr("#112233"),
		ButtonStyle:     strPtr("outline"),
		IsPublic:        &private,
	}

	_, err := fx.service.UpdateDesign(ctx, actor, design)
	require.NoError(t, err)
	_, err = fx.service.UpdateDesign(ctx, actor, design)
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, saved[0], saved[1])
	assert.Equal(t, "#112233", saved[1].BackgroundColor)
	assert.Equal(t, "outline", saved[1].ButtonStyle)
	assert.False(t, saved[1].IsPublic)
	assert.Equal(t, entity.DefaultTextColor, saved[1].TextColor)
}

func TestProfileService_UpdateDesign_Validation(t *testing.T) {
	tests := []struct {
		name   string
		design *entity.ProfileDesign
	}{
		{"color not hex", &entity.ProfileDesign{TextColor: strPtr("red")}},
		{"unknown button style", &entity.ProfileDesign{ButtonStyle: strPtr("rounded")}},
		{"unknown animation", &entity.ProfileDesign{Animation: strPtr("spin")}},
		{"unknown pattern", &entity.ProfileDesign{BackgroundPattern: strPtr("stripes")}},
		{"nil design", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestProfileService(t)
			_, err := fx.service.UpdateDesign(context.Background(), newActor(entity.RoleUser), tt.design)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProfileService_GetPublicPage(t *testing.T) {
	owner := newUser(newActor(entity.RoleUser), "ann")

	t.Run("active links in display order", func(t *testing.T) {
		fx := createTestProfileService(t)
		profile := newProfile(owner.ID)
		second := newLink(profile.ID, "second", 1)
		first := newLink(profile.ID, "first", 0)

		fx.userRepo.EXPECT().FindByUsername(mock.Anything, "ann").Return(owner, nil)
		fx.profileRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(profile, nil)
		fx.linkRepo.EXPECT().ListByProfile(mock.Anything, profile.ID, true).Return([]*entity.Link{second, first}, nil)

		page, err := fx.service.GetPublicPage(context.Background(), "ann")
		require.NoError(t, err)
		require.Len(t, page.Links, 2)
		assert.Equal(t, "first", page.Links[0].Title)
		assert.Equal(t, "second", page.Links[1].Title)
	})

	t.Run("private page is not found", func(t *testing.T) {
		fx := createTestProfileService(t)
		profile := newProfile(owner.ID)
		profile.IsPublic = false

		fx.userRepo.EXPECT().FindByUsername(mock.Anything, "ann").Return(owner, nil)
		fx.profileRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(profile, nil)

		_, err := fx.service.GetPublicPage(context.Background(), "ann")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("suspended owner is not found", func(t *testing.T) {
		fx := createTestProfileService(t)
		suspended := *owner
		suspended.Status = entity.StatusSuspended
		fx.userRepo.EXPECT().FindByUsername(mock.Anything, "ann").Return(&suspended, nil)

		_, err := fx.service.GetPublicPage(context.Background(), "ann")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("unknown username", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.userRepo.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetPublicPage(context.Background(), "ghost")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestProfileService_GetProfileQRCode(t *testing.T) {
	fx := createTestProfileService(t)
	actor := newActor(entity.RoleUser)
	user := newUser(actor, "ann")

	fx.userRepo.EXPECT().FindByID(mock.Anything, actor.ID).Return(user, nil)
	fx.qrService.EXPECT().GenerateProfileQR("https://lnk.example.com/p/ann").Return([]byte("png"), nil)

	png, err := fx.service.GetProfileQRCode(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestProfileService_GetProfileQRCode_EncoderFailure(t *testing.T) {
	fx := createTestProfileService(t)
	actor := newActor(entity.RoleUser)

	fx.userRepo.EXPECT().FindByID(mock.Anything, actor.ID).Return(newUser(actor, "ann"), nil)
	fx.qrService.EXPECT().GenerateProfileQR(mock.Anything).Return(nil, errors.New("data too long"))

	_, err := fx.service.GetProfileQRCode(context.Background(), actor)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
