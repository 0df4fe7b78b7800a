package context

import (
	"pawtag/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeySession is the key for storing the authenticated session in context.
	KeySession ContextKey = "session"
)

// SetSession stores the authenticated session in echo.Context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession extracts the authenticated session from echo.Context.
// Returns nil when the request was not authenticated.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(string(KeySession)).(*entity.Session); ok {
		return session
	}

	return nil
}
