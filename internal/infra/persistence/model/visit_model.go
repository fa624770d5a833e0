package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitModel mirrors the append-only 'visits' table.
type VisitModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_visits_owner_visitor,priority:1"`
	VisitorID string    `gorm:"type:varchar(64);not null;index:idx_visits_owner_visitor,priority:2"`
	IP        string    `gorm:"column:ip;type:varchar(64)"`
	UserAgent string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}
