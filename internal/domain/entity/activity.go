package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies an activity log entry.
type ActivityType string

const (
	ActivityAccountCreated  ActivityType = "ACCOUNT_CREATED"
	ActivityLogin           ActivityType = "LOGIN"
	ActivityPasswordChanged ActivityType = "PASSWORD_CHANGED"
	ActivityProfileUpdated  ActivityType = "PROFILE_UPDATED"
	ActivityDesignUpdated   ActivityType = "DESIGN_UPDATED"
	ActivityLinkCreated     ActivityType = "LINK_CREATED"
	ActivityLinkUpdated     ActivityType = "LINK_UPDATED"
	ActivityLinkDeleted     ActivityType = "LINK_DELETED"
	ActivityLinksReordered  ActivityType = "LINKS_REORDERED"
	ActivityUserManaged     ActivityType = "USER_MANAGED"
	ActivityCustom          ActivityType = "CUSTOM"
)

// Activity is an append-only audit entry associated with a user.
type Activity struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      ActivityType
	Details   string
	Metadata  map[string]any
	CreatedAt time.Time
}

// DashboardStats summarizes a user's link page engagement.
type DashboardStats struct {
	ViewCount          int64
	UniqueVisitorCount int64
	ActiveLinks        int64
	TotalClicks        int64
	RecentActivities   []*Activity
}
