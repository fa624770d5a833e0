package postgres

import (
	"context"
	"strings"

	"linkforge/internal/domain/entity"
	"linkforge/internal/domain/repository"
	"linkforge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// linkRepository implements the repository.LinkRepository interface.
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository is the constructor for linkRepository.
func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &linkRepository{db: db}
}

// ListByProfile reads from the primary: it feeds reorder decisions made under the profile lock.
func (repo *linkRepository) ListByProfile(ctx context.Context, profileID uuid.UUID, activeOnly bool) ([]*entity.Link, error) {
	var linkModels []*model.LinkModel

	stmt := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("profile_id = ?", profileID)
	if activeOnly {
		stmt = stmt.Where("is_active = ?", true)
	}
	if err := stmt.Order("sort_order ASC").Order("created_at ASC").Order("id ASC").Find(&linkModels).Error; err != nil {
		return nil, storeError(err, "failed to list links")
	}

	links := make([]*entity.Link, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toLinkDomain(linkM))
	}

	return links, nil
}

func (repo *linkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Link, error) {
	var linkM model.LinkModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, storeError(err, "failed to find link")
	}

	return toLinkDomain(&linkM), nil
}

func (repo *linkRepository) Insert(ctx context.Context, link *entity.Link) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	linkM := fromLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return storeError(err, "failed to create link")
	}

	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

func (repo *linkRepository) Update(ctx context.Context, id uuid.UUID, update repository.LinkUpdate) (*entity.Link, error) {
	columns := map[string]any{}
	if update.Title != nil {
		columns["title"] = *update.Title
	}
	if update.URL != nil {
		columns["url"] = *update.URL
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}
	if update.Icon != nil {
		columns["icon"] = *update.Icon
	}
	if update.IsActive != nil {
		columns["is_active"] = *update.IsActive
	}

	if len(columns) > 0 {
		result := repo.db.WithContext(ctx).Model(&model.LinkModel{}).Where("id = ?", id).Updates(columns)
		if result.Error != nil {
			return nil, storeError(result.Error, "failed to update link")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrLinkNotFound
		}
	}

	var linkM model.LinkModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id).First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, storeError(err, "failed to reload link")
	}

	return toLinkDomain(&linkM), nil
}

func (repo *linkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LinkModel{})
	if result.Error != nil {
		return storeError(result.Error, "failed to delete link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

func (repo *linkRepository) DeleteByProfile(ctx context.Context, profileID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("profile_id = ?", profileID).Delete(&model.LinkModel{}).Error; err != nil {
		return storeError(err, "failed to delete links of profile")
	}

	return nil
}

// BulkSetOrder assigns every position in one UPDATE ... CASE statement.
// If any id does not belong to the profile nothing is written.
func (repo *linkRepository) BulkSetOrder(ctx context.Context, profileID uuid.UUID, orders []entity.LinkOrder) error {
	if len(orders) == 0 {
		return nil
	}

	var caseExpr strings.Builder
	caseExpr.WriteString("CASE id")
	args := make([]any, 0, len(orders)*2)
	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		caseExpr.WriteString(" WHEN ?::uuid THEN ?::integer")
		args = append(args, o.ID, o.Order)
		ids = append(ids, o.ID)
	}
	caseExpr.WriteString(" ELSE sort_order END")

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.LinkModel{}).
			Where("profile_id = ? AND id IN ?", profileID, ids).
			Updates(map[string]any{"sort_order": gorm.Expr(caseExpr.String(), args...)})
		if result.Error != nil {
			return storeError(result.Error, "failed to update link order")
		}
		if result.RowsAffected != int64(len(orders)) {
			return repository.ErrLinkNotFound
		}

		return nil
	})
}

func (repo *linkRepository) IncrementClickCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + 1"))
	if result.Error != nil {
		return storeError(result.Error, "failed to increment click count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

func (repo *linkRepository) CountActive(ctx context.Context, profileID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Where("profile_id = ? AND is_active = ?", profileID, true).
		Count(&count).Error; err != nil {
		return 0, storeError(err, "failed to count active links")
	}

	return count, nil
}

func (repo *linkRepository) SumClicks(ctx context.Context, profileID uuid.UUID) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Where("profile_id = ?", profileID).
		Select("COALESCE(SUM(click_count), 0)").
		Scan(&total).Error; err != nil {
		return 0, storeError(err, "failed to sum link clicks")
	}

	return total, nil
}

// --- Mapper Functions ---

func toLinkDomain(data *model.LinkModel) *entity.Link {
	if data == nil {
		return nil
	}

	return &entity.Link{
		ID:          data.ID,
		ProfileID:   data.ProfileID,
		Title:       data.Title,
		URL:         data.URL,
		Description: data.Description,
		Icon:        data.Icon,
		Order:       data.Order,
		IsActive:    data.IsActive,
		ClickCount:  data.ClickCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromLinkDomain(data *entity.Link) *model.LinkModel {
	if data == nil {
		return nil
	}

	return &model.LinkModel{
		ID:          data.ID,
		ProfileID:   data.ProfileID,
		Title:       data.Title,
		URL:         data.URL,
		Description: data.Description,
		Icon:        data.Icon,
		Order:       data.Order,
		IsActive:    data.IsActive,
		ClickCount:  data.ClickCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
