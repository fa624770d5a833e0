package handler

import (
	"net/http"
	"strings"
	"testing"

	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	mockUC "linkforge/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileHandler(t *testing.T) (*ProfileHandler, *mockUC.MockProfileUsecase) {
	profileUC := mockUC.NewMockProfileUsecase(t)

	return NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC}), profileUC
}

func TestProfileHandler_UpdateDesign(t *testing.T) {
	h, profileUC := createTestProfileHandler(t)
	actor := newActor(entity.RoleUser)
	profile := entity.NewDefaultProfile(actor.ID, "Ann")
	profile.ID = uuid.New()
	profile.ButtonColor = "#00ff00"
	profile.IsPublic = false

	profileUC.EXPECT().UpdateDesign(mock.Anything, actor, mock.MatchedBy(func(d *entity.ProfileDesign) bool {
		return d.ButtonColor != nil && *d.ButtonColor == "#00ff00" &&
			d.IsPublic != nil && !*d.IsPublic &&
			d.Title == nil && d.Theme == nil
	})).Return(profile, nil).Once()

	c, rec := newTestContext(http.MethodPut, "/api/v1/profile/design", `{"buttonColor":"#00ff00","isPublic":false}`, actor)
	require.NoError(t, h.UpdateDesign(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got ProfileResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "#00ff00", got.ButtonColor)
	assert.False(t, got.IsPublic)
}

func TestProfileHandler_UpdateDesign_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"color is not hex", `{"textColor":"white"}`},
		{"unknown button style", `{"buttonStyle":"neon"}`},
		{"unknown animation", `{"animation":"spin"}`},
		{"title too long", `{"title":"` + strings.Repeat("a", 101) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestProfileHandler(t)

			c, rec := newTestContext(http.MethodPut, "/api/v1/profile/design", tt.body, newActor(entity.RoleUser))
			require.NoError(t, h.UpdateDesign(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestProfileHandler_GetQRCode(t *testing.T) {
	h, profileUC := createTestProfileHandler(t)
	actor := newActor(entity.RoleUser)
	png := []byte{0x89, 'P', 'N', 'G'}

	profileUC.EXPECT().GetProfileQRCode(mock.Anything, actor).Return(png, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/profile/qr", "", actor)
	require.NoError(t, h.GetQRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestProfileHandler_GetDesign_Anonymous(t *testing.T) {
	h, profileUC := createTestProfileHandler(t)

	profileUC.EXPECT().GetDesign(mock.Anything, (*entity.Actor)(nil)).Return(nil, domainerrors.ErrNotAuthenticated).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/profile/design", "", nil)
	require.NoError(t, h.GetDesign(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
