package handler

import (
	"net/http"
	"testing"
	"time"

	"linkforge/config"
	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	mockUC "linkforge/internal/mocks/usecase"
	"linkforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testVisitorCookie = "lf_visitor_id"

type publicHandlerFixtures struct {
	handler   *PublicHandler
	profileUC *mockUC.MockProfileUsecase
	visitUC   *mockUC.MockVisitUsecase
	linkUC    *mockUC.MockLinkUsecase
}

func createTestPublicHandler(t *testing.T) publicHandlerFixtures {
	cfg := &config.Config{
		Visitor: &config.VisitorConfig{CookieName: testVisitorCookie, MaxAge: 24 * time.Hour},
	}
	cfg.HTTP.CookieSecure = true

	fx := publicHandlerFixtures{
		profileUC: mockUC.NewMockProfileUsecase(t),
		visitUC:   mockUC.NewMockVisitUsecase(t),
		linkUC:    mockUC.NewMockLinkUsecase(t),
	}
	fx.handler = NewPublicHandler(PublicHandlerParams{
		ProfileUC: fx.profileUC,
		VisitUC:   fx.visitUC,
		LinkUC:    fx.linkUC,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func newPublicPage(username string) *usecase.PublicPage {
	user := newUser(username)
	profile := entity.NewDefaultProfile(user.ID, user.Name)
	profile.ID = uuid.New()

	return &usecase.PublicPage{
		User:    user,
		Profile: profile,
		Links:   []*entity.Link{newLink("Blog", 0), newLink("Shop", 1)},
	}
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func TestPublicHandler_Page_FirstVisitIssuesCookie(t *testing.T) {
	fx := createTestPublicHandler(t)
	page := newPublicPage("ann")

	fx.profileUC.EXPECT().GetPublicPage(mock.Anything, "ann").Return(page, nil).Once()
	fx.visitUC.EXPECT().RecordVisit(mock.Anything, mock.MatchedBy(func(in *usecase.RecordVisitInput) bool {
		return in.OwnerID == page.User.ID && in.VisitorID == "" && in.UserAgent == "test-agent"
	})).Return(&usecase.RecordVisitOutput{VisitorID: "visitor-1", IsNewVisitor: true}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/p/ann", "", nil)
	c.Request().Header.Set("User-Agent", "test-agent")
	require.NoError(t, fx.handler.Page(withParam(c, "username", "ann")))

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(rec.Result().Cookies(), testVisitorCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "visitor-1", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 86400, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	var got PublicPageResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "ann", got.Owner.Username)
	require.Len(t, got.Links, 2)
	assert.Equal(t, "/l/"+page.Links[0].ID.String(), got.Links[0].Href)
	assert.Equal(t, entity.DefaultButtonStyle, got.Design.ButtonStyle)
}

func TestPublicHandler_Page_ReturningVisitorKeepsID(t *testing.T) {
	fx := createTestPublicHandler(t)
	page := newPublicPage("ann")

	fx.profileUC.EXPECT().GetPublicPage(mock.Anything, "ann").Return(page, nil).Once()
	fx.visitUC.EXPECT().RecordVisit(mock.Anything, mock.MatchedBy(func(in *usecase.RecordVisitInput) bool {
		return in.VisitorID == "visitor-1"
	})).Return(&usecase.RecordVisitOutput{VisitorID: "visitor-1"}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/p/ann", "", nil)
	c.Request().AddCookie(&http.Cookie{Name: testVisitorCookie, Value: "visitor-1"})
	require.NoError(t, fx.handler.Page(withParam(c, "username", "ann")))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec.Result().Cookies(), testVisitorCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "visitor-1", cookie.Value)
}

func TestPublicHandler_Page_HiddenPageIsNotCounted(t *testing.T) {
	fx := createTestPublicHandler(t)

	fx.profileUC.EXPECT().GetPublicPage(mock.Anything, "ghost").Return(nil, domainerrors.ErrNotFound).Once()

	c, rec := newTestContext(http.MethodGet, "/p/ghost", "", nil)
	require.NoError(t, fx.handler.Page(withParam(c, "username", "ghost")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Nil(t, findCookie(rec.Result().Cookies(), testVisitorCookie))
}

func TestPublicHandler_Click(t *testing.T) {
	fx := createTestPublicHandler(t)
	linkID := uuid.New()

	fx.linkUC.EXPECT().RecordClick(mock.Anything, linkID).Return("https://example.com/blog", nil).Once()

	c, rec := newTestContext(http.MethodGet, "/l/"+linkID.String(), "", nil)
	require.NoError(t, fx.handler.Click(withParam(c, "id", linkID.String())))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/blog", rec.Header().Get("Location"))
}

func TestPublicHandler_Click_UnknownLink(t *testing.T) {
	tests := []struct {
		name  string
		param string
		setup func(fx publicHandlerFixtures, id uuid.UUID)
	}{
		{
			name:  "malformed id",
			param: "not-a-uuid",
			setup: func(publicHandlerFixtures, uuid.UUID) {},
		},
		{
			name: "inactive link",
			setup: func(fx publicHandlerFixtures, id uuid.UUID) {
				fx.linkUC.EXPECT().RecordClick(mock.Anything, id).Return("", domainerrors.ErrLinkNotFound).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPublicHandler(t)
			id := uuid.New()
			param := tt.param
			if param == "" {
				param = id.String()
			}
			tt.setup(fx, id)

			c, rec := newTestContext(http.MethodGet, "/l/"+param, "", nil)
			require.NoError(t, fx.handler.Click(withParam(c, "id", param)))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "LINK_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
		})
	}
}
