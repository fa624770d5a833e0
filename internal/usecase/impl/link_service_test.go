package impl

import (
	"context"
	"testing"

	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/domain/repository"
	"linkforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type linkServiceFixtures struct {
	repoFixtures
	service usecase.LinkUsecase
	actor   *entity.Actor
	profile *entity.Profile
}

func createTestLinkService(t *testing.T) linkServiceFixtures {
	repos := newRepoFixtures(t)
	actor := newActor(entity.RoleUser)

	return linkServiceFixtures{
		repoFixtures: repos,
		service: NewLinkService(LinkServiceParams{
			TxManager: repos.txManager,
			Logger:    newDiscardLogger(),
		}),
		actor:   actor,
		profile: newProfile(actor.ID),
	}
}

func (fx linkServiceFixtures) expectLock() {
	fx.profileRepo.EXPECT().LockByOwner(mock.Anything, fx.actor.ID).Return(fx.profile, nil)
}

func titles(links []*entity.Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Title)
	}

	return out
}

func TestLinkService_CreateLink_AppendsAtEnd(t *testing.T) {
	fx := createTestLinkService(t)
	ctx := context.Background()

	fx.expectLock()
	fx.linkRepo.EXPECT().ListByProfile(ctx, fx.profile.ID, false).
		Return([]*entity.Link{newLink(fx.profile.ID, "a", 0), newLink(fx.profile.ID, "b", 1)}, nil)
	fx.linkRepo.EXPECT().
		Insert(ctx, mock.MatchedBy(func(l *entity.Link) bool {
			return l.Order == 2 && l.IsActive && l.ClickCount == 0 && l.ProfileID == fx.profile.ID
		})).
		Return(nil)
	fx.expectActivity(entity.ActivityLinkCreated)

	link, err := fx.service.CreateLink(ctx, fx.actor, &usecase.CreateLinkInput{
		Title: "  Blog ",
		URL:   "https://blog.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Blog", link.Title)
	assert.Equal(t, 2, link.Order)
}

func TestLinkService_CreateLink_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateLinkInput
	}{
		{"empty title", &usecase.CreateLinkInput{Title: " ", URL: "https://example.com"}},
		{"relative url", &usecase.CreateLinkInput{Title: "x", URL: "/about"}},
		{"javascript url", &usecase.CreateLinkInput{Title: "x", URL: "javascript:alert(1)"}},
		{"long icon", &usecase.CreateLinkInput{Title: "x", URL: "https://example.com", Icon: string(make([]rune, 51))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestLinkService(t)
			_, err := fx.service.CreateLink(context.Background(), fx.actor, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestLinkService_MoveLink_Scenario(t *testing.T) {
	fx := createTestLinkService(t)
	ctx := context.Background()
	a := newLink(fx.profile.ID, "A", 0)
	b := newLink(fx.profile.ID, "B", 1)
	c := newLink(fx.profile.ID, "C", 2)

	fx.expectLock()
	fx.linkRepo.EXPECT().ListByProfile(ctx, fx.profile.ID, false).Return([]*entity.Link{a, b, c}, nil).Once()
	fx.linkRepo.EXPECT().
		BulkSetOrder(ctx, fx.profile.ID, []entity.LinkOrder{{ID: b.ID, Order: 0}, {ID: a.ID, Order: 1}}).
		Return(nil).
		Once()
	fx.expectActivity(entity.ActivityLinksReordered)

	links, err := fx.service.MoveLink(ctx, fx.actor, b.ID, entity.MoveUp)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, titles(links))

	// B is now first: moving it up again writes nothing.
	movedB, movedA := *b, *a
	movedB.Order, movedA.Order = 0, 1
	fx.linkRepo.EXPECT().ListByProfile(ctx, fx.profile.ID, false).Return([]*entity.Link{&movedA, &movedB, c}, nil).Once()

	links, err = fx.service.MoveLink(ctx, fx.actor, b.ID, entity.MoveUp)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, titles(links))
}

func TestLinkService_MoveLink_ForeignLinkIsNotFound(t *testing.T) {
	fx := createTestLinkService(t)

	fx.expectLock()
	fx.linkRepo.EXPECT().ListByProfile(mock.Anything, fx.profile.ID, false).
		Return([]*entity.Link{newLink(fx.profile.ID, "A", 0)}, nil)

	_, err := fx.service.MoveLink(context.Background(), fx.actor, uuid.New(), entity.MoveDown)
	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
}

func TestLinkService_MoveLink_InvalidDirection(t *testing.T) {
	fx := createTestLinkService(t)

	_, err := fx.service.MoveLink(context.Background(), fx.actor, uuid.New(), entity.MoveDirection("left"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLinkService_ReorderLinks(t *testing.T) {
	t.Run("assigns order by position", func(t *testing.T) {
		fx := createTestLinkService(t)
		a := newLink(fx.profile.ID, "A", 0)
		b := newLink(fx.profile.ID, "B", 1)
		c := newLink(fx.profile.ID, "C", 2)

		fx.expectLock()
		fx.linkRepo.EXPECT().ListByProfile(mock.Anything, fx.profile.ID, false).Return([]*entity.Link{a, b, c}, nil)
		fx.linkRepo.EXPECT().
			BulkSetOrder(mock.Anything, fx.profile.ID, []entity.LinkOrder{
				{ID: c.ID, Order: 0}, {ID: a.ID, Order: 1}, {ID: b.ID, Order: 2},
			}).
			Return(nil)
		fx.expectActivity(entity.ActivityLinksReordered)

		links, err := fx.service.ReorderLinks(context.Background(), fx.actor, []uuid.UUID{c.ID, a.ID, b.ID})
		require.NoError(t, err)
		assert.Equal(t, []string{"C", "A", "B"}, titles(links))
	})

	t.Run("foreign id rejects without writing", func(t *testing.T) {
		fx := createTestLinkService(t)
		a := newLink(fx.profile.ID, "A", 0)

		fx.expectLock()
		fx.linkRepo.EXPECT().ListByProfile(mock.Anything, fx.profile.ID, false).Return([]*entity.Link{a}, nil)

		_, err := fx.service.ReorderLinks(context.Background(), fx.actor, []uuid.UUID{a.ID, uuid.New()})
		assert.ErrorIs(t, err, domainerrors.ErrForeignLinkID)
		fx.linkRepo.AssertNotCalled(t, "BulkSetOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate id is a validation error", func(t *testing.T) {
		fx := createTestLinkService(t)
		a := newLink(fx.profile.ID, "A", 0)

		fx.expectLock()
		fx.linkRepo.EXPECT().ListByProfile(mock.Anything, fx.profile.ID, false).Return([]*entity.Link{a}, nil)

		_, err := fx.service.ReorderLinks(context.Background(), fx.actor, []uuid.UUID{a.ID, a.ID})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestLinkService_UpdateLink_OtherProfilesLinkIsNotFound(t *testing.T) {
	fx := createTestLinkService(t)
	foreign := newLink(uuid.New(), "theirs", 0)

	fx.expectLock()
	fx.linkRepo.EXPECT().FindByID(mock.Anything, foreign.ID).Return(foreign, nil)

	_, err := fx.service.UpdateLink(context.Background(), fx.actor, foreign.ID, &usecase.UpdateLinkInput{Title: strPtr("mine")})
	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
}

func TestLinkService_DeleteLink(t *testing.T) {
	fx := createTestLinkService(t)
	link := newLink(fx.profile.ID, "A", 3)

	fx.expectLock()
	fx.linkRepo.EXPECT().FindByID(mock.Anything, link.ID).Return(link, nil)
	fx.linkRepo.EXPECT().Delete(mock.Anything, link.ID).Return(nil)
	fx.expectActivity(entity.ActivityLinkDeleted)

	require.NoError(t, fx.service.DeleteLink(context.Background(), fx.actor, link.ID))
	fx.linkRepo.AssertNotCalled(t, "BulkSetOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestLinkService_RecordClick(t *testing.T) {
	owner := newUser(newActor(entity.RoleUser), "ann")

	t.Run("counts and returns target", func(t *testing.T) {
		fx := createTestLinkService(t)
		profile := newProfile(owner.ID)
		link := newLink(profile.ID, "blog", 0)

		fx.linkRepo.EXPECT().FindByID(mock.Anything, link.ID).Return(link, nil)
		fx.profileRepo.EXPECT().FindByID(mock.Anything, profile.ID).Return(profile, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		fx.linkRepo.EXPECT().IncrementClickCount(mock.Anything, link.ID).Return(nil)

		target, err := fx.service.RecordClick(context.Background(), link.ID)
		require.NoError(t, err)
		assert.Equal(t, link.URL, target)
	})

	t.Run("inactive link", func(t *testing.T) {
		fx := createTestLinkService(t)
		link := newLink(uuid.New(), "old", 0)
		link.IsActive = false
		fx.linkRepo.EXPECT().FindByID(mock.Anything, link.ID).Return(link, nil)

		_, err := fx.service.RecordClick(context.Background(), link.ID)
		assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
	})

	t.Run("private page", func(t *testing.T) {
		fx := createTestLinkService(t)
		profile := newProfile(owner.ID)
		profile.IsPublic = false
		link := newLink(profile.ID, "blog", 0)
		fx.linkRepo.EXPECT().FindByID(mock.Anything, link.ID).Return(link, nil)
		fx.profileRepo.EXPECT().FindByID(mock.Anything, profile.ID).Return(profile, nil)

		_, err := fx.service.RecordClick(context.Background(), link.ID)
		assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
	})

	t.Run("unknown link", func(t *testing.T) {
		fx := createTestLinkService(t)
		id := uuid.New()
		fx.linkRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrLinkNotFound)

		_, err := fx.service.RecordClick(context.Background(), id)
		assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
	})
}
