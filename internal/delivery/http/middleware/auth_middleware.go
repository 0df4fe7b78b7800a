package middleware

import (
	"net/http"
	"strconv"
	"strings"

	deliverycontext "pawtag/internal/delivery/context"
	"pawtag/internal/domain/entity"
	"pawtag/internal/domain/service"
	"pawtag/internal/infra/location"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderDeviceLatitude carries the device's current latitude fix.
	HeaderDeviceLatitude = "X-Device-Latitude"
	// HeaderDeviceLongitude carries the device's current longitude fix.
	HeaderDeviceLongitude = "X-Device-Longitude"
)

// AuthMiddleware validates the auth provider's ID token and builds the
// explicit session carried into every use case.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the Bearer ID token and stores the session on the
// context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		session, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// CaptureDeviceLocation reads the optional device fix headers and stashes
// the coordinates in the request context. Absent or malformed headers leave
// the context untouched; each use case decides whether a missing fix is
// fatal.
func (m *AuthMiddleware) CaptureDeviceLocation(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		latHeader := c.Request().Header.Get(HeaderDeviceLatitude)
		lonHeader := c.Request().Header.Get(HeaderDeviceLongitude)
		if latHeader == "" || lonHeader == "" {
			return next(c)
		}

		lat, latErr := strconv.ParseFloat(latHeader, 64)
		lon, lonErr := strconv.ParseFloat(lonHeader, 64)
		if latErr != nil || lonErr != nil {
			return next(c)
		}

		ctx := location.WithCoordinates(c.Request().Context(), entity.Coordinates{
			Latitude:  lat,
			Longitude: lon,
		})
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetSession extracts the authenticated session from the context.
func GetSession(c echo.Context) (entity.Session, bool) {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return entity.Session{}, false
	}

	return *session, true
}
