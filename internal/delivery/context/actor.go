package context

import (
	"linkforge/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyActor is the key for storing the authenticated actor in echo.Context.
const KeyActor ContextKey = "actor"

// SetActor stores the authenticated actor in echo.Context.
func SetActor(c echo.Context, actor *entity.Actor) {
	c.Set(string(KeyActor), actor)
}

// GetActor returns the authenticated actor, or nil for anonymous requests.
func GetActor(c echo.Context) *entity.Actor {
	actor, _ := c.Get(string(KeyActor)).(*entity.Actor)

	return actor
}
