package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"linkforge/config"
	"linkforge/internal/domain/entity"
	"linkforge/internal/domain/ordering"
	"linkforge/internal/domain/repository"
	"linkforge/internal/infra/persistence/migrations"
	"linkforge/internal/usecase"
	"linkforge/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testDSNEnv = "LINKFORGE_TEST_DATABASE_DSN"

// openTestDB connects to the database named by LINKFORGE_TEST_DATABASE_DSN and
// applies the migrations. Tests are skipped when the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", testDSNEnv)
	}

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, migrations.Up(sqlDB))
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func seedUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()

	suffix := uuid.NewString()[:8]
	user := &entity.User{
		Email:        fmt.Sprintf("it-%s@example.com", suffix),
		Username:     "it" + suffix,
		Name:         "Integration " + suffix,
		PasswordHash: "hash",
		Role:         entity.RoleUser,
		Status:       entity.StatusActive,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	t.Cleanup(func() { _ = NewUserRepository(db).Delete(context.Background(), user.ID) })

	return user
}

func TestIntegration_UserUniqueness(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)

	repo := NewUserRepository(db)
	dup := &entity.User{Email: user.Email, Username: "other" + uuid.NewString()[:8], Name: "x", PasswordHash: "h", Role: entity.RoleUser, Status: entity.StatusActive}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicateEmail)

	dup = &entity.User{Email: uuid.NewString()[:8] + "@example.com", Username: user.Username, Name: "x", PasswordHash: "h", Role: entity.RoleUser, Status: entity.StatusActive}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicateUsername)

	exists, err := repo.ExistsByEmail(ctx, user.Email, user.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestIntegration_ConcurrentViewIncrements(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)

	profiles := NewProfileRepository(db)
	_, err := profiles.FindOrCreateDefault(ctx, entity.NewDefaultProfile(user.ID, user.Name))
	require.NoError(t, err)
	require.NoError(t, profiles.IncrementViewCount(ctx, user.ID, 10))

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, profiles.IncrementViewCount(ctx, user.ID, 1))
		}()
	}
	wg.Wait()

	profile, err := profiles.FindByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), profile.ViewCount)
}

func TestIntegration_ConcurrentFirstVisits(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)

	profiles := NewProfileRepository(db)
	_, err := profiles.FindOrCreateDefault(ctx, entity.NewDefaultProfile(user.ID, user.Name))
	require.NoError(t, err)
	require.NoError(t, profiles.IncrementViewCount(ctx, user.ID, 10))
	t.Cleanup(func() { _ = NewVisitRepository(db).DeleteByOwner(context.Background(), user.ID) })

	visits := impl.NewVisitService(impl.VisitServiceParams{
		TxManager: NewTransactionManager(db, &config.Config{Store: &config.StoreConfig{CallTimeout: 5 * time.Second}}),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ids := make([]string, 2)
	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := visits.RecordVisit(ctx, &usecase.RecordVisitInput{OwnerID: user.ID})
			if assert.NoError(t, err) {
				assert.True(t, out.IsNewVisitor)
				ids[i] = out.VisitorID
			}
		}()
	}
	wg.Wait()

	assert.NotEqual(t, ids[0], ids[1])
	profile, err := profiles.FindByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), profile.ViewCount)
	assert.Equal(t, int64(2), profile.UniqueVisitorCount)
}

func TestIntegration_FindOrCreateDefaultConverges(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)

	profiles := NewProfileRepository(db)
	ids := make(chan uuid.UUID, 4)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			profile, err := profiles.FindOrCreateDefault(ctx, entity.NewDefaultProfile(user.ID, user.Name))
			if assert.NoError(t, err) {
				ids <- profile.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	var first uuid.UUID
	for id := range ids {
		if first == uuid.Nil {
			first = id
		}
		assert.Equal(t, first, id)
	}
}

func TestIntegration_ConcurrentMovesStayDense(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)

	cfg := &config.Config{Store: &config.StoreConfig{CallTimeout: 10 * time.Second}}
	txManager := NewTransactionManager(db, cfg)

	profile, err := NewProfileRepository(db).FindOrCreateDefault(ctx, entity.NewDefaultProfile(user.ID, user.Name))
	require.NoError(t, err)

	links := NewLinkRepository(db)
	var created []*entity.Link
	for i := range 4 {
		link := &entity.Link{ProfileID: profile.ID, Title: fmt.Sprintf("link %d", i), URL: "https://example.com", Order: i, IsActive: true}
		require.NoError(t, links.Insert(ctx, link))
		created = append(created, link)
	}

	move := func(id uuid.UUID, dir entity.MoveDirection) error {
		return txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if _, err := repoFactory.ProfileRepo().LockByOwner(ctx, user.ID); err != nil {
				return err
			}
			current, err := repoFactory.LinkRepo().ListByProfile(ctx, profile.ID, false)
			if err != nil {
				return err
			}
			result, err := ordering.Move(current, id, dir)
			if err != nil {
				return err
			}

			return repoFactory.LinkRepo().BulkSetOrder(ctx, profile.ID, result.Changes)
		})
	}

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dir := entity.MoveUp
			if i%2 == 0 {
				dir = entity.MoveDown
			}
			assert.NoError(t, move(created[i%len(created)].ID, dir))
		}()
	}
	wg.Wait()

	final, err := links.ListByProfile(ctx, profile.ID, false)
	require.NoError(t, err)
	assert.True(t, ordering.IsDense(final))
}

func TestIntegration_BulkSetOrderRejectsForeignLink(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)

	profile, err := NewProfileRepository(db).FindOrCreateDefault(ctx, entity.NewDefaultProfile(user.ID, user.Name))
	require.NoError(t, err)

	links := NewLinkRepository(db)
	link := &entity.Link{ProfileID: profile.ID, Title: "mine", URL: "https://example.com", IsActive: true}
	require.NoError(t, links.Insert(ctx, link))

	err = links.BulkSetOrder(ctx, profile.ID, []entity.LinkOrder{{ID: link.ID, Order: 3}, {ID: uuid.New(), Order: 0}})
	assert.ErrorIs(t, err, repository.ErrLinkNotFound)

	reloaded, err := links.FindByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Order)
}

func TestIntegration_DeleteUserCascades(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)

	profile, err := NewProfileRepository(db).FindOrCreateDefault(ctx, entity.NewDefaultProfile(user.ID, user.Name))
	require.NoError(t, err)
	require.NoError(t, NewLinkRepository(db).Insert(ctx, &entity.Link{ProfileID: profile.ID, Title: "a", URL: "https://a.example", IsActive: true}))
	require.NoError(t, NewVisitRepository(db).Append(ctx, &entity.Visit{OwnerID: user.ID, VisitorID: "v1"}))
	require.NoError(t, NewActivityRepository(db).Append(ctx, &entity.Activity{UserID: user.ID, Type: entity.ActivityLogin, Metadata: map[string]any{"ip": "127.0.0.1"}}))

	require.NoError(t, NewUserRepository(db).Delete(ctx, user.ID))

	_, err = NewProfileRepository(db).FindByOwner(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	count, err := NewVisitRepository(db).CountByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
