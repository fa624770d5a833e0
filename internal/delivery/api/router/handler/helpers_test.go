package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"linkforge/internal/delivery/api/validator"
	deliverycontext "linkforge/internal/delivery/context"
	"linkforge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context for a direct handler call.
// A nil actor leaves the request anonymous.
func newTestContext(method, target, body string, actor *entity.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		deliverycontext.SetActor(c, actor)
	}

	return c, rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)

	return c
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func newActor(role entity.Role) *entity.Actor {
	return &entity.Actor{ID: uuid.New(), Role: role, Status: entity.StatusActive}
}

func newUser(username string) *entity.User {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return &entity.User{
		ID:           uuid.New(),
		Email:        username + "@example.com",
		Username:     username,
		Name:         strings.ToUpper(username[:1]) + username[1:],
		PasswordHash: "$2a$12$hash",
		Role:         entity.RoleUser,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newLink(title string, order int) *entity.Link {
	return &entity.Link{
		ID:       uuid.New(),
		Title:    title,
		URL:      "https://example.com/" + strings.ToLower(title),
		Order:    order,
		IsActive: true,
	}
}
