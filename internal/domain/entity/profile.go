package entity

import (
	"time"

	"github.com/google/uuid"
)

// Default design values applied when a profile is created lazily.
const (
	DefaultTheme             = "default"
	DefaultBackgroundColor   = "#050505"
	DefaultTextColor         = "#ffffff"
	DefaultFont              = "Inter, sans-serif"
	DefaultButtonStyle       = "solid"
	DefaultButtonColor       = "#865DFF"
	DefaultButtonTextColor   = "#ffffff"
	DefaultAnimation         = "none"
	DefaultBackgroundPattern = "none"
)

// Profile holds the public link page settings of a user. One per user.
type Profile struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	Title              string
	Description        string
	Avatar             string
	Theme              string
	BackgroundColor    string
	TextColor          string
	Font               string
	ButtonStyle        string
	ButtonColor        string
	ButtonTextColor    string
	Animation          string
	BackgroundPattern  string
	CustomCSS          string
	IsPublic           bool
	ViewCount          int64 // Raw page views, incremented atomically.
	UniqueVisitorCount int64 // Distinct visitor identifiers seen.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewDefaultProfile builds the profile created for an owner on first access.
func NewDefaultProfile(ownerID uuid.UUID, ownerName string) *Profile {
	title := "My link page"
	if ownerName != "" {
		title = ownerName + "'s link page"
	}

	return &Profile{
		OwnerID:           ownerID,
		Title:             title,
		Theme:             DefaultTheme,
		BackgroundColor:   DefaultBackgroundColor,
		TextColor:         DefaultTextColor,
		Font:              DefaultFont,
		ButtonStyle:       DefaultButtonStyle,
		ButtonColor:       DefaultButtonColor,
		ButtonTextColor:   DefaultButtonTextColor,
		Animation:         DefaultAnimation,
		BackgroundPattern: DefaultBackgroundPattern,
		IsPublic:          true,
	}
}

// ProfileDesign is a partial update of a profile's display settings.
// Nil fields are left unchanged.
type ProfileDesign struct {
	Title             *string
	Description       *string
	Avatar            *string
	Theme             *string
	BackgroundColor   *string
	TextColor         *string
	Font              *string
	ButtonStyle       *string
	ButtonColor       *string
	ButtonTextColor   *string
	Animation         *string
	BackgroundPattern *string
	CustomCSS         *string
	IsPublic          *bool
}

// Apply copies the non-nil fields of the design onto the profile.
func (d *ProfileDesign) Apply(p *Profile) {
	setString(&p.Title, d.Title)
	setString(&p.Description, d.Description)
	setString(&p.Avatar, d.Avatar)
	setString(&p.Theme, d.Theme)
	setString(&p.BackgroundColor, d.BackgroundColor)
	setString(&p.TextColor, d.TextColor)
	setString(&p.Font, d.Font)
	setString(&p.ButtonStyle, d.ButtonStyle)
	setString(&p.ButtonColor, d.ButtonColor)
	setString(&p.ButtonTextColor, d.ButtonTextColor)
	setString(&p.Animation, d.Animation)
	setString(&p.BackgroundPattern, d.BackgroundPattern)
	setString(&p.CustomCSS, d.CustomCSS)
	if d.IsPublic != nil {
		p.IsPublic = *d.IsPublic
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
