package middleware

import (
	"net/http"
	"strings"

	"fivestar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDContextKey is where the authenticated identity is stored on the Echo
// context. Guest requests carry uuid.Nil.
const userIDContextKey = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and rejects requests without a
// signed-in identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set(userIDContextKey, claims.UserID)

		return next(c)
	}
}

// AuthenticateOptional resolves the identity when an access token is present
// but lets anonymous requests through as guests. A malformed token is still
// rejected rather than silently downgraded.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			c.Set(userIDContextKey, uuid.Nil)

			return next(c)
		}

		return m.Authenticate(next)(c)
	}
}

// UserID returns the identity resolved by the auth middleware. uuid.Nil
// means guest.
func UserID(c echo.Context) uuid.UUID {
	if userID, ok := c.Get(userIDContextKey).(uuid.UUID); ok {
		return userID
	}

	return uuid.Nil
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format, must be Bearer token")
	}

	return tokenString, nil
}
