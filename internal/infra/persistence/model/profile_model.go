package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. owner_id is unique: one page per user.
type ProfileModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID            uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Title              string    `gorm:"type:varchar(200);not null"`
	Description        string    `gorm:"type:text"`
	Avatar             string    `gorm:"type:text"`
	Theme              string    `gorm:"type:varchar(50);not null"`
	BackgroundColor    string    `gorm:"type:varchar(32);not null"`
	TextColor          string    `gorm:"type:varchar(32);not null"`
	Font               string    `gorm:"type:varchar(100);not null"`
	ButtonStyle        string    `gorm:"type:varchar(16);not null"`
	ButtonColor        string    `gorm:"type:varchar(32);not null"`
	ButtonTextColor    string    `gorm:"type:varchar(32);not null"`
	Animation          string    `gorm:"type:varchar(16);not null"`
	BackgroundPattern  string    `gorm:"type:varchar(16);not null"`
	CustomCSS          string    `gorm:"column:custom_css;type:text"`
	IsPublic           bool      `gorm:"not null"`
	ViewCount          int64     `gorm:"not null;default:0"`
	UniqueVisitorCount int64     `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
