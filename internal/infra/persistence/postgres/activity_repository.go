package postgres

import (
	"context"

	"linkforge/internal/domain/entity"
	"linkforge/internal/domain/repository"
	"linkforge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultActivityLimit = 10

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) Append(ctx context.Context, activity *entity.Activity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	activityM := &model.ActivityModel{
		ID:        activity.ID,
		UserID:    activity.UserID,
		Type:      string(activity.Type),
		Details:   activity.Details,
		CreatedAt: activity.CreatedAt,
	}
	if len(activity.Metadata) > 0 {
		activityM.Metadata = datatypes.JSONMap(activity.Metadata)
	}

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return storeError(err, "failed to append activity")
	}
	activity.CreatedAt = activityM.CreatedAt

	return nil
}

func (repo *activityRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	var activityModels []*model.ActivityModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&activityModels).Error; err != nil {
		return nil, storeError(err, "failed to list activities")
	}

	activities := make([]*entity.Activity, 0, len(activityModels))
	for _, activityM := range activityModels {
		activities = append(activities, &entity.Activity{
			ID:        activityM.ID,
			UserID:    activityM.UserID,
			Type:      entity.ActivityType(activityM.Type),
			Details:   activityM.Details,
			Metadata:  map[string]any(activityM.Metadata),
			CreatedAt: activityM.CreatedAt,
		})
	}

	return activities, nil
}

func (repo *activityRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.ActivityModel{}).Error; err != nil {
		return storeError(err, "failed to delete activities")
	}

	return nil
}
