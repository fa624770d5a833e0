package postgres

import (
	"context"

	"linkforge/internal/domain/entity"
	"linkforge/internal/domain/repository"
	"linkforge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storeError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, "email = ?", email, excludeID)
}

func (repo *userRepository) ExistsByUsername(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, "username = ?", username, excludeID)
}

// exists reads from the primary so uniqueness checks see writes made moments ago.
func (repo *userRepository) exists(ctx context.Context, query string, arg any, excludeID uuid.UUID) (bool, error) {
	stmt := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Model(&model.UserModel{}).Where(query, arg)
	if excludeID != uuid.Nil {
		stmt = stmt.Where("id <> ?", excludeID)
	}

	var count int64
	if err := stmt.Count(&count).Error; err != nil {
		return false, storeError(err, "failed to check user uniqueness")
	}

	return count > 0, nil
}

func (repo *userRepository) List(ctx context.Context, limit int) ([]*entity.User, error) {
	var userModels []*model.UserModel

	stmt := repo.db.WithContext(ctx).Order("created_at DESC").Order("id")
	if limit > 0 {
		stmt = stmt.Limit(limit)
	}
	if err := stmt.Find(&userModels).Error; err != nil {
		return nil, storeError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user. ID and timestamps are assigned when empty.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if dupErr := duplicateUserError(err); dupErr != nil {
			return dupErr
		}

		return storeError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) Update(ctx context.Context, id uuid.UUID, update repository.UserUpdate) (*entity.User, error) {
	if update.IsEmpty() {
		return repo.FindByID(ctx, id)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(userUpdateColumns(update))
	if result.Error != nil {
		if dupErr := duplicateUserError(result.Error); dupErr != nil {
			return nil, dupErr
		}

		return nil, storeError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOnPrimary(ctx, id)
}

func (repo *userRepository) findOnPrimary(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storeError(err, "failed to reload user")
	}

	return toUserDomain(&userM), nil
}

// Delete removes the user. Dependent rows go with it through ON DELETE CASCADE.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return storeError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func duplicateUserError(err error) error {
	if !isUniqueConstraintViolation(err) {
		return nil
	}

	switch violatedConstraint(err) {
	case constraintUsersUsername:
		return repository.ErrDuplicateUsername
	default:
		return repository.ErrDuplicateEmail
	}
}

func userUpdateColumns(update repository.UserUpdate) map[string]any {
	columns := map[string]any{}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Email != nil {
		columns["email"] = *update.Email
	}
	if update.Username != nil {
		columns["username"] = *update.Username
	}
	if update.Bio != nil {
		columns["bio"] = *update.Bio
	}
	if update.Avatar != nil {
		columns["avatar"] = *update.Avatar
	}
	if update.PasswordHash != nil {
		columns["password_hash"] = *update.PasswordHash
	}
	if update.Role != nil {
		columns["role"] = update.Role.String()
	}
	if update.Status != nil {
		columns["status"] = update.Status.String()
	}

	return columns
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Status:       entity.Status(data.Status),
		Avatar:       data.Avatar,
		Bio:          data.Bio,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		Status:       data.Status.String(),
		Avatar:       data.Avatar,
		Bio:          data.Bio,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
