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

type visitServiceFixtures struct {
	repoFixtures
	service usecase.VisitUsecase
}

func createTestVisitService(t *testing.T) visitServiceFixtures {
	repos := newRepoFixtures(t)

	return visitServiceFixtures{
		repoFixtures: repos,
		service: NewVisitService(VisitServiceParams{
			TxManager: repos.txManager,
			Logger:    newDiscardLogger(),
		}),
	}
}

func TestVisitService_RecordVisit_NewVisitorsGetDistinctIDs(t *testing.T) {
	fx := createTestVisitService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.profileRepo.EXPECT().LockByOwner(ctx, ownerID).Return(newProfile(ownerID), nil)
	fx.visitRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil).Times(2)
	fx.profileRepo.EXPECT().IncrementViewCount(ctx, ownerID, int64(1)).Return(nil).Times(2)
	fx.profileRepo.EXPECT().IncrementUniqueVisitors(ctx, ownerID, int64(1)).Return(nil).Times(2)

	first, err := fx.service.RecordVisit(ctx, &usecase.RecordVisitInput{OwnerID: ownerID})
	require.NoError(t, err)
	second, err := fx.service.RecordVisit(ctx, &usecase.RecordVisitInput{OwnerID: ownerID})
	require.NoError(t, err)

	assert.True(t, first.IsNewVisitor)
	assert.True(t, second.IsNewVisitor)
	assert.NotEqual(t, first.VisitorID, second.VisitorID)
	_, err = uuid.Parse(first.VisitorID)
	assert.NoError(t, err)
	fx.visitRepo.AssertNotCalled(t, "ExistsForVisitor", mock.Anything, mock.Anything, mock.Anything)
}

func TestVisitService_RecordVisit_ReturningVisitorCountsViewOnly(t *testing.T) {
	fx := createTestVisitService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	visitorID := uuid.NewString()

	fx.profileRepo.EXPECT().LockByOwner(ctx, ownerID).Return(newProfile(ownerID), nil)
	fx.visitRepo.EXPECT().ExistsForVisitor(ctx, ownerID, visitorID).Return(true, nil)
	fx.visitRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(v *entity.Visit) bool {
			return v.VisitorID == visitorID && v.IP == "10.0.0.1" && v.UserAgent == "curl"
		})).
		Return(nil)
	fx.profileRepo.EXPECT().IncrementViewCount(ctx, ownerID, int64(1)).Return(nil)

	out, err := fx.service.RecordVisit(ctx, &usecase.RecordVisitInput{
		OwnerID:   ownerID,
		VisitorID: visitorID,
		IP:        "10.0.0.1",
		UserAgent: "curl",
	})
	require.NoError(t, err)
	assert.False(t, out.IsNewVisitor)
	assert.Equal(t, visitorID, out.VisitorID)
	fx.profileRepo.AssertNotCalled(t, "IncrementUniqueVisitors", mock.Anything, mock.Anything, mock.Anything)
}

func TestVisitService_RecordVisit_KnownIDFirstTimeOnThisPage(t *testing.T) {
	fx := createTestVisitService(t)
	ownerID := uuid.New()
	visitorID := uuid.NewString()

	fx.profileRepo.EXPECT().LockByOwner(mock.Anything, ownerID).Return(newProfile(ownerID), nil)
	fx.visitRepo.EXPECT().ExistsForVisitor(mock.Anything, ownerID, visitorID).Return(false, nil)
	fx.visitRepo.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.Visit")).Return(nil)
	fx.profileRepo.EXPECT().IncrementViewCount(mock.Anything, ownerID, int64(1)).Return(nil)
	fx.profileRepo.EXPECT().IncrementUniqueVisitors(mock.Anything, ownerID, int64(1)).Return(nil)

	out, err := fx.service.RecordVisit(context.Background(), &usecase.RecordVisitInput{OwnerID: ownerID, VisitorID: visitorID})
	require.NoError(t, err)
	assert.True(t, out.IsNewVisitor)
	assert.Equal(t, visitorID, out.VisitorID)
}

func TestVisitService_RecordVisit_MalformedVisitorIDIsReplaced(t *testing.T) {
	fx := createTestVisitService(t)
	ownerID := uuid.New()

	fx.profileRepo.EXPECT().LockByOwner(mock.Anything, ownerID).Return(newProfile(ownerID), nil)
	fx.visitRepo.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.Visit")).Return(nil)
	fx.profileRepo.EXPECT().IncrementViewCount(mock.Anything, ownerID, int64(1)).Return(nil)
	fx.profileRepo.EXPECT().IncrementUniqueVisitors(mock.Anything, ownerID, int64(1)).Return(nil)

	out, err := fx.service.RecordVisit(context.Background(), &usecase.RecordVisitInput{OwnerID: ownerID, VisitorID: "<script>"})
	require.NoError(t, err)
	assert.NotEqual(t, "<script>", out.VisitorID)
	assert.True(t, out.IsNewVisitor)
}

func TestVisitService_RecordVisit_NoProfile(t *testing.T) {
	fx := createTestVisitService(t)
	ownerID := uuid.New()

	fx.profileRepo.EXPECT().LockByOwner(mock.Anything, ownerID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.RecordVisit(context.Background(), &usecase.RecordVisitInput{OwnerID: ownerID})
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	fx.visitRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	fx.profileRepo.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestVisitService_RecordVisit_PrivatePageIsNotCounted(t *testing.T) {
	fx := createTestVisitService(t)
	ownerID := uuid.New()
	profile := newProfile(ownerID)
	profile.IsPublic = false

	fx.profileRepo.EXPECT().LockByOwner(mock.Anything, ownerID).Return(profile, nil)

	_, err := fx.service.RecordVisit(context.Background(), &usecase.RecordVisitInput{OwnerID: ownerID})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	fx.visitRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestVisitService_RecordVisit_ByUsername(t *testing.T) {
	fx := createTestVisitService(t)
	owner := newUser(newActor(entity.RoleUser), "ann")

	fx.userRepo.EXPECT().FindByUsername(mock.Anything, "ann").Return(owner, nil)
	fx.profileRepo.EXPECT().LockByOwner(mock.Anything, owner.ID).Return(newProfile(owner.ID), nil)
	fx.visitRepo.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.Visit")).Return(nil)
	fx.profileRepo.EXPECT().IncrementViewCount(mock.Anything, owner.ID, int64(1)).Return(nil)
	fx.profileRepo.EXPECT().IncrementUniqueVisitors(mock.Anything, owner.ID, int64(1)).Return(nil)

	_, err := fx.service.RecordVisit(context.Background(), &usecase.RecordVisitInput{Username: "ann"})
	require.NoError(t, err)
}

func TestVisitService_RecordVisit_RequiresOwner(t *testing.T) {
	fx := createTestVisitService(t)

	_, err := fx.service.RecordVisit(context.Background(), &usecase.RecordVisitInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
