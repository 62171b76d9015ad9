package middlewares

import (
	"github.com/labstack/echo/v4"

	"todo-service/app/server/models"
)

const identityContextKey = "identity"

// Identity is the caller reconstructed from a validated token. It lives for
// a single request and is never persisted.
type Identity struct {
	Username string
	UserID   uint
	Role     models.Role
}

func GetIdentity(c echo.Context) (*Identity, bool) {
	identity, ok := c.Get(identityContextKey).(*Identity)
	return identity, ok && identity != nil
}
