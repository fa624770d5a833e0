package impl

import (
	"context"
	"testing"
	"time"

	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/domain/repository"
	"linkforge/internal/domain/service"
	mockSvc "linkforge/internal/mocks/service"
	"linkforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	repoFixtures
	service      usecase.AuthUsecase
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	repos := newRepoFixtures(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewAuthService(AuthServiceParams{
		TxManager:    repos.txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		repoFixtures: repos,
		service:      srv,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:     "Ann",
		Email:    " Ann@Example.com ",
		Username: "ann_1",
		Password: "secret1",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "ann@example.com", uuid.Nil).Return(false, nil)
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "ann_1", uuid.Nil).Return(false, nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = userID

			return nil
		})
	fx.profileRepo.EXPECT().
		CreateDefault(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.OwnerID == userID && p.Title == "Ann's link page" && p.IsPublic
		})).
		Return(nil)
	fx.expectActivity(entity.ActivityAccountCreated)

	user, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, entity.StatusActive, user.Status)
}

func TestAuthService_Register_ValidationRunsBeforeAnyWrite(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *usecase.RegisterInput)
	}{
		{"short name", func(in *usecase.RegisterInput) { in.Name = "A" }},
		{"bad email", func(in *usecase.RegisterInput) { in.Email = "not-an-email" }},
		{"short username", func(in *usecase.RegisterInput) { in.Username = "ab" }},
		{"username with dash", func(in *usecase.RegisterInput) { in.Username = "ann-1" }},
		{"short password", func(in *usecase.RegisterInput) { in.Password = "12345" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestAuthService(t)
			input := validRegisterInput()
			tt.modify(input)

			_, err := fx.service.Register(context.Background(), input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "ann@example.com", uuid.Nil).Return(true, nil)

	_, err := fx.service.Register(ctx, validRegisterInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Register_UniqueViolationOnInsert(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "ann@example.com", uuid.Nil).Return(false, nil)
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "ann_1", uuid.Nil).Return(false, nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateUsername)

	_, err := fx.service.Register(ctx, validRegisterInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash("secret1").Return("", errors.New("cost too high"))

	_, err := fx.service.Register(context.Background(), validRegisterInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newUser(newActor(entity.RoleUser), "ann")
	user.PasswordHash = "hashed"

	fx.userRepo.EXPECT().FindByEmail(ctx, "ann@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, entity.RoleUser).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
			return rt.UserID == user.ID && rt.TokenHash == "refresh-hash" && rt.ExpiresAt.After(time.Now())
		})).
		Return(nil)
	fx.activityRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(a *entity.Activity) bool {
			return a.Type == entity.ActivityLogin && a.Metadata["ip"] == "10.0.0.1"
		})).
		Return(nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ANN@example.com", Password: "secret1", IP: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_Failures(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "nobody@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newUser(newActor(entity.RoleUser), "ann")
		user.PasswordHash = "hashed"
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong-pass", "hashed").Return(false)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ann@example.com", Password: "wrong-pass"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("suspended account", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newUser(newActor(entity.RoleUser), "ann")
		user.PasswordHash = "hashed"
		user.Status = entity.StatusSuspended
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ann@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	user := newUser(newActor(entity.RoleAdmin), "ann")

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
		fx.refreshRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "hash").Return(&entity.RefreshToken{UserID: user.ID}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		fx.tokenService.EXPECT().GenerateAccessToken(user.ID, entity.RoleAdmin).Return("new-access", nil)

		token, err := fx.service.Refresh(context.Background(), "refresh")
		require.NoError(t, err)
		assert.Equal(t, "new-access", token)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("malformed"))

		_, err := fx.service.Refresh(context.Background(), "garbage")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("session revoked", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: user.ID}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
		fx.refreshRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "hash").Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.Refresh(context.Background(), "refresh")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("subject mismatch", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: uuid.New()}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
		fx.refreshRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "hash").Return(&entity.RefreshToken{UserID: user.ID}, nil)

		_, err := fx.service.Refresh(context.Background(), "refresh")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAuthService_Logout_IsIdempotent(t *testing.T) {
	fx := createTestAuthService(t)
	fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
	fx.refreshRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, "hash").Return(nil).Once()
	fx.refreshRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, "hash").Return(repository.ErrRefreshTokenNotFound).Once()

	require.NoError(t, fx.service.Logout(context.Background(), "refresh"))
	require.NoError(t, fx.service.Logout(context.Background(), "refresh"))
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("uses stored role and status", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newUser(newActor(entity.RoleUser), "ann")
		user.Status = entity.StatusSuspended
		fx.tokenService.EXPECT().ValidateAccessToken("access").
			Return(&service.Claims{UserID: user.ID, Role: entity.RoleAdmin}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		actor, err := fx.service.Authenticate(context.Background(), "access")
		require.NoError(t, err)
		assert.Equal(t, &entity.Actor{ID: user.ID, Role: entity.RoleUser, Status: entity.StatusSuspended}, actor)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t)
		id := uuid.New()
		fx.tokenService.EXPECT().ValidateAccessToken("access").Return(&service.Claims{UserID: id}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(context.Background(), "access")
		assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("expired"))

		_, err := fx.service.Authenticate(context.Background(), "bad")
		assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	})
}
