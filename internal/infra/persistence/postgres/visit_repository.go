package postgres

import (
	"context"
	"database/sql"
	"time"

	"linkforge/internal/domain/entity"
	"linkforge/internal/domain/repository"
	"linkforge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

func (repo *visitRepository) Append(ctx context.Context, visit *entity.Visit) error {
	if visit.ID == uuid.Nil {
		visit.ID = uuid.New()
	}
	visitM := &model.VisitModel{
		ID:        visit.ID,
		OwnerID:   visit.OwnerID,
		VisitorID: visit.VisitorID,
		IP:        visit.IP,
		UserAgent: visit.UserAgent,
		CreatedAt: visit.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return storeError(err, "failed to record visit")
	}
	visit.CreatedAt = visitM.CreatedAt

	return nil
}

// ExistsForVisitor must see visits committed by concurrent requests, so it reads from the primary.
func (repo *visitRepository) ExistsForVisitor(ctx context.Context, ownerID uuid.UUID, visitorID string) (bool, error) {
	var found bool
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Raw("SELECT EXISTS (SELECT 1 FROM visits WHERE owner_id = ? AND visitor_id = ?)", ownerID, visitorID).
		Scan(&found).Error
	if err != nil {
		return false, storeError(err, "failed to check visitor")
	}

	return found, nil
}

func (repo *visitRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.VisitModel{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, storeError(err, "failed to count visits")
	}

	return count, nil
}

func (repo *visitRepository) CountDistinctVisitors(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("owner_id = ?", ownerID).
		Distinct("visitor_id").
		Count(&count).Error; err != nil {
		return 0, storeError(err, "failed to count distinct visitors")
	}

	return count, nil
}

func (repo *visitRepository) LastVisitAt(ctx context.Context, ownerID uuid.UUID) (*time.Time, error) {
	var last sql.NullTime
	if err := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("owner_id = ?", ownerID).
		Select("MAX(created_at)").
		Scan(&last).Error; err != nil {
		return nil, storeError(err, "failed to read last visit")
	}
	if !last.Valid {
		return nil, nil
	}

	return &last.Time, nil
}

func (repo *visitRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.VisitModel{}).Error; err != nil {
		return storeError(err, "failed to delete visits")
	}

	return nil
}
