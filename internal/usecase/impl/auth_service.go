package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "linkforge/internal/delivery/context"
	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/domain/repository"
	"linkforge/internal/domain/service"
	"linkforge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an ACTIVE USER account together with its default profile.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)

	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateUsername(input.Username); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email), slog.String("username", input.Username))

	// bcrypt is CPU-bound, keep it out of the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Email:        email,
		Username:     input.Username,
		Name:         name,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
		Status:       entity.StatusActive,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := checkUniqueness(ctx, userRepo, &newUser.Email, &newUser.Username, newUser.ID); err != nil {
			return err
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return translateRepoError(err, "failed to create user")
		}
		if err := repoFactory.ProfileRepo().CreateDefault(ctx, entity.NewDefaultProfile(newUser.ID, newUser.Name)); err != nil {
			return translateRepoError(err, "failed to create profile")
		}

		return appendActivity(ctx, repoFactory, newUser.ID, entity.ActivityAccountCreated, "Account created", nil)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// Login verifies the credentials and opens a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.UserRepo().FindByEmail(ctx, email)
		if errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return findErr
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if !user.IsActive() {
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("userID", user.ID), slog.String("status", user.Status.String()))

		return nil, errors.Wrap(domainerrors.ErrAccountInactive, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RefreshTokenRepo().CreateRefreshToken(ctx, session); err != nil {
			return translateRepoError(err, "failed to store session")
		}

		var metadata map[string]any
		if input.IP != "" {
			metadata = map[string]any{"ip": input.IP}
		}

		return appendActivity(ctx, repoFactory, user.ID, entity.ActivityLogin, "Signed in", metadata)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh handles the process of issuing a new access token using a refresh token.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, err := repoFactory.RefreshTokenRepo().FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
		if err != nil {
			return translateRepoError(err, "refresh token not found or expired")
		}
		if session.UserID != claims.UserID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
		}

		user, err = repoFactory.UserRepo().FindByID(ctx, session.UserID)
		if err != nil {
			return translateRepoError(err, "failed to load user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to execute refresh transaction")
	}

	if !user.IsActive() {
		return "", errors.Wrap(domainerrors.ErrAccountInactive, "refresh rejected")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	return accessToken, nil
}

// Logout deletes the session. Logging out twice is not an error.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.RefreshTokenRepo().DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute logout transaction")
	}

	return nil
}

// Authenticate resolves an access token. Role and status come from the stored
// user, so demotions and suspensions apply before the token expires.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.Actor, error) {
	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, err.Error())
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrNotAuthenticated, "token subject no longer exists")
		}

		return findErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to authenticate")
	}

	return user.Actor(), nil
}
