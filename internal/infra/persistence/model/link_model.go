package model

import (
	"time"

	"github.com/google/uuid"
)

// LinkModel mirrors the 'links' table.
type LinkModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID   uuid.UUID `gorm:"type:uuid;not null;index:idx_links_profile_order,priority:1"`
	Title       string    `gorm:"type:varchar(200);not null"`
	URL         string    `gorm:"column:url;type:text;not null"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(100)"`
	Order       int       `gorm:"column:sort_order;not null;default:0;index:idx_links_profile_order,priority:2"`
	IsActive    bool      `gorm:"not null"`
	ClickCount  int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LinkModel) TableName() string {
	return "links"
}
