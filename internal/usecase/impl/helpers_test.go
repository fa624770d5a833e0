package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"linkforge/config"
	"linkforge/internal/domain/entity"
	"linkforge/internal/domain/repository"
	mockRepo "linkforge/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Admin: &config.AdminConfig{ListLimit: 50},
	}
	cfg.HTTP.Port = 8080
	cfg.HTTP.PublicBaseURL = "https://lnk.example.com"

	return cfg
}

// repoFixtures holds a transaction manager that runs the callback against a
// factory of repository mocks.
type repoFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	profileRepo  *mockRepo.MockProfileRepository
	linkRepo     *mockRepo.MockLinkRepository
	visitRepo    *mockRepo.MockVisitRepository
	activityRepo *mockRepo.MockActivityRepository
	refreshRepo  *mockRepo.MockRefreshTokenRepository
}

func newRepoFixtures(t *testing.T) repoFixtures {
	r := repoFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		profileRepo:  mockRepo.NewMockProfileRepository(t),
		linkRepo:     mockRepo.NewMockLinkRepository(t),
		visitRepo:    mockRepo.NewMockVisitRepository(t),
		activityRepo: mockRepo.NewMockActivityRepository(t),
		refreshRepo:  mockRepo.NewMockRefreshTokenRepository(t),
	}

	r.factory.EXPECT().UserRepo().Return(r.userRepo).Maybe()
	r.factory.EXPECT().ProfileRepo().Return(r.profileRepo).Maybe()
	r.factory.EXPECT().LinkRepo().Return(r.linkRepo).Maybe()
	r.factory.EXPECT().VisitRepo().Return(r.visitRepo).Maybe()
	r.factory.EXPECT().ActivityRepo().Return(r.activityRepo).Maybe()
	r.factory.EXPECT().RefreshTokenRepo().Return(r.refreshRepo).Maybe()

	r.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(r.factory)
		}).
		Maybe()

	return r
}

// expectActivity accepts one activity append of the given type.
func (r repoFixtures) expectActivity(activityType entity.ActivityType) {
	r.activityRepo.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(a *entity.Activity) bool { return a.Type == activityType })).
		Return(nil).
		Once()
}

func newActor(role entity.Role) *entity.Actor {
	return &entity.Actor{ID: uuid.New(), Role: role, Status: entity.StatusActive}
}

func newUser(actor *entity.Actor, username string) *entity.User {
	return &entity.User{
		ID:       actor.ID,
		Email:    username + "@example.com",
		Username: username,
		Name:     "Test " + username,
		Role:     actor.Role,
		Status:   actor.Status,
	}
}

func newProfile(ownerID uuid.UUID) *entity.Profile {
	p := entity.NewDefaultProfile(ownerID, "Owner")
	p.ID = uuid.New()

	return p
}

func newLink(profileID uuid.UUID, title string, order int) *entity.Link {
	return &entity.Link{
		ID:        uuid.New(),
		ProfileID: profileID,
		Title:     title,
		URL:       "https://example.com/" + title,
		Order:     order,
		IsActive:  true,
	}
}

func strPtr(s string) *string {
	return &s
}
