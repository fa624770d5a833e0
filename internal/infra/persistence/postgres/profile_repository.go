package postgres

import (
	"context"

	"linkforge/internal/domain/entity"
	"linkforge/internal/domain/repository"
	"linkforge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, storeError(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

func (repo *profileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error) {
	return repo.find(repo.db.WithContext(ctx), ownerID)
}

// LockByOwner takes a FOR UPDATE row lock. It only serializes when called inside a transaction.
func (repo *profileRepository) LockByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}), ownerID)
}

func (repo *profileRepository) find(db *gorm.DB, ownerID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := db.Where("owner_id = ?", ownerID).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, storeError(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

func (repo *profileRepository) CreateDefault(ctx context.Context, profile *entity.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return storeError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindOrCreateDefault inserts with ON CONFLICT DO NOTHING so racing first
// accesses both end up reading the single row that won.
func (repo *profileRepository) FindOrCreateDefault(ctx context.Context, defaults *entity.Profile) (*entity.Profile, error) {
	profileM := fromProfileDomain(defaults)
	if profileM.ID == uuid.Nil {
		profileM.ID = uuid.New()
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "owner_id"}}, DoNothing: true}).
		Create(profileM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storeError(err, "failed to create default profile")
	}

	return repo.find(repo.db.WithContext(ctx).Clauses(dbresolver.Write), defaults.OwnerID)
}

// Update writes the display settings. Counters are never overwritten here.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("owner_id = ?", profile.OwnerID).
		Updates(map[string]any{
			"title":              profile.Title,
			"description":        profile.Description,
			"avatar":             profile.Avatar,
			"theme":              profile.Theme,
			"background_color":   profile.BackgroundColor,
			"text_color":         profile.TextColor,
			"font":               profile.Font,
			"button_style":       profile.ButtonStyle,
			"button_color":       profile.ButtonColor,
			"button_text_color":  profile.ButtonTextColor,
			"animation":          profile.Animation,
			"background_pattern": profile.BackgroundPattern,
			"custom_css":         profile.CustomCSS,
			"is_public":          profile.IsPublic,
		})
	if result.Error != nil {
		return storeError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (repo *profileRepository) IncrementViewCount(ctx context.Context, ownerID uuid.UUID, delta int64) error {
	return repo.increment(ctx, ownerID, "view_count", delta)
}

func (repo *profileRepository) IncrementUniqueVisitors(ctx context.Context, ownerID uuid.UUID, delta int64) error {
	return repo.increment(ctx, ownerID, "unique_visitor_count", delta)
}

// increment is a single UPDATE col = col + delta, so concurrent calls never lose updates.
func (repo *profileRepository) increment(ctx context.Context, ownerID uuid.UUID, column string, delta int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("owner_id = ?", ownerID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return storeError(result.Error, "failed to increment "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (repo *profileRepository) Delete(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.ProfileModel{}).Error; err != nil {
		return storeError(err, "failed to delete profile")
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		Title:              data.Title,
		Description:        data.Description,
		Avatar:             data.Avatar,
		Theme:              data.Theme,
		BackgroundColor:    data.BackgroundColor,
		TextColor:          data.TextColor,
		Font:               data.Font,
		ButtonStyle:        data.ButtonStyle,
		ButtonColor:        data.ButtonColor,
		ButtonTextColor:    data.ButtonTextColor,
		Animation:          data.Animation,
		BackgroundPattern:  data.BackgroundPattern,
		CustomCSS:          data.CustomCSS,
		IsPublic:           data.IsPublic,
		ViewCount:          data.ViewCount,
		UniqueVisitorCount: data.UniqueVisitorCount,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		Title:              data.Title,
		Description:        data.Description,
		Avatar:             data.Avatar,
		Theme:              data.Theme,
		BackgroundColor:    data.BackgroundColor,
		TextColor:          data.TextColor,
		Font:               data.Font,
		ButtonStyle:        data.ButtonStyle,
		ButtonColor:        data.ButtonColor,
		ButtonTextColor:    data.ButtonTextColor,
		Animation:          data.Animation,
		BackgroundPattern:  data.BackgroundPattern,
		CustomCSS:          data.CustomCSS,
		IsPublic:           data.IsPublic,
		ViewCount:          data.ViewCount,
		UniqueVisitorCount: data.UniqueVisitorCount,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
