package handler

import (
	"time"

	"linkforge/internal/domain/entity"
	"linkforge/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public shape of an account. The password hash never leaves the server.
type UserResponse struct {
	ID        uuid.UUID     `json:"id"`
	Email     string        `json:"email"`
	Username  string        `json:"username"`
	Name      string        `json:"name"`
	Role      entity.Role   `json:"role"`
	Status    entity.Status `json:"status"`
	Avatar    string        `json:"avatar"`
	Bio       string        `json:"bio"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func toUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// AdminUserResponse is one row of the user management list.
type AdminUserResponse struct {
	UserResponse
	Views          int64      `json:"views"`
	UniqueVisitors int64      `json:"uniqueVisitors"`
	Links          int64      `json:"links"`
	LastLogin      *time.Time `json:"lastLogin"`
}

func toAdminUsersResponse(users []*entity.UserWithStats) []*AdminUserResponse {
	out := make([]*AdminUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, &AdminUserResponse{
			UserResponse:   *toUserResponse(u.User),
			Views:          u.Stats.Views,
			UniqueVisitors: u.Stats.UniqueVisitors,
			Links:          u.Stats.Links,
			LastLogin:      u.Stats.LastSeenAt,
		})
	}

	return out
}

// DesignResponse carries the display settings of a page.
type DesignResponse struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	Avatar            string `json:"avatar"`
	Theme             string `json:"theme"`
	BackgroundColor   string `json:"backgroundColor"`
	TextColor         string `json:"textColor"`
	Font              string `json:"font"`
	ButtonStyle       string `json:"buttonStyle"`
	ButtonColor       string `json:"buttonColor"`
	ButtonTextColor   string `json:"buttonTextColor"`
	Animation         string `json:"animation"`
	BackgroundPattern string `json:"backgroundPattern"`
	CustomCSS         string `json:"customCss"`
}

// ProfileResponse is the owner's view of a profile.
type ProfileResponse struct {
	ID uuid.UUID `json:"id"`
	DesignResponse
	IsPublic           bool      `json:"isPublic"`
	ViewCount          int64     `json:"viewCount"`
	UniqueVisitorCount int64     `json:"uniqueVisitorCount"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func toDesignResponse(p *entity.Profile) DesignResponse {
	return DesignResponse{
		Title:             p.Title,
		Description:       p.Description,
		Avatar:            p.Avatar,
		Theme:             p.Theme,
		BackgroundColor:   p.BackgroundColor,
		TextColor:         p.TextColor,
		Font:              p.Font,
		ButtonStyle:       p.ButtonStyle,
		ButtonColor:       p.ButtonColor,
		ButtonTextColor:   p.ButtonTextColor,
		Animation:         p.Animation,
		BackgroundPattern: p.BackgroundPattern,
		CustomCSS:         p.CustomCSS,
	}
}

func toProfileResponse(p *entity.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:                 p.ID,
		DesignResponse:     toDesignResponse(p),
		IsPublic:           p.IsPublic,
		ViewCount:          p.ViewCount,
		UniqueVisitorCount: p.UniqueVisitorCount,
		UpdatedAt:          p.UpdatedAt,
	}
}

// LinkResponse is the owner's view of a link.
type LinkResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	ClickCount  int64     `json:"clickCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toLinkResponse(l *entity.Link) *LinkResponse {
	return &LinkResponse{
		ID:          l.ID,
		Title:       l.Title,
		URL:         l.URL,
		Description: l.Description,
		Icon:        l.Icon,
		Order:       l.Order,
		IsActive:    l.IsActive,
		ClickCount:  l.ClickCount,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toLinksResponse(links []*entity.Link) []*LinkResponse {
	out := make([]*LinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, toLinkResponse(l))
	}

	return out
}

// PublicLinkResponse is a link as an anonymous visitor sees it. Href goes
// through the click counter.
type PublicLinkResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Href        string    `json:"href"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// PublicPageResponse is the payload of GET /p/:username.
type PublicPageResponse struct {
	Owner struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Avatar   string `json:"avatar"`
		Bio      string `json:"bio"`
	} `json:"owner"`
	Design DesignResponse        `json:"design"`
	Links  []*PublicLinkResponse `json:"links"`
}

func toPublicPageResponse(page *usecase.PublicPage) *PublicPageResponse {
	out := &PublicPageResponse{
		Design: toDesignResponse(page.Profile),
		Links:  make([]*PublicLinkResponse, 0, len(page.Links)),
	}
	out.Owner.Username = page.User.Username
	out.Owner.Name = page.User.Name
	out.Owner.Avatar = page.User.Avatar
	out.Owner.Bio = page.User.Bio

	for _, l := range page.Links {
		out.Links = append(out.Links, &PublicLinkResponse{
			ID:          l.ID,
			Title:       l.Title,
			URL:         l.URL,
			Href:        "/l/" + l.ID.String(),
			Description: l.Description,
			Icon:        l.Icon,
		})
	}

	return out
}

// ActivityResponse is one activity log entry.
type ActivityResponse struct {
	ID        uuid.UUID           `json:"id"`
	Type      entity.ActivityType `json:"type"`
	Details   string              `json:"details"`
	Metadata  map[string]any      `json:"metadata,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

func toActivitiesResponse(activities []*entity.Activity) []*ActivityResponse {
	out := make([]*ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, &ActivityResponse{
			ID:        a.ID,
			Type:      a.Type,
			Details:   a.Details,
			Metadata:  a.Metadata,
			CreatedAt: a.CreatedAt,
		})
	}

	return out
}

// StatsResponse is the dashboard summary.
type StatsResponse struct {
	ViewCount          int64               `json:"viewCount"`
	UniqueVisitorCount int64               `json:"uniqueVisitors"`
	ActiveLinks        int64               `json:"activeLinks"`
	TotalClicks        int64               `json:"totalClicks"`
	RecentActivities   []*ActivityResponse `json:"recentActivities"`
}
