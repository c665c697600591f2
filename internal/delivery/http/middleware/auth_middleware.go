package middleware

import (
	"net/http"
	"strings"

	"tienda/internal/domain/service"
	"tienda/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyClientID is where Authenticate stores the caller's id on the
// echo context.
const ContextKeyClientID = "clientID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		clientID, err := m.clientIDFromHeader(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		c.Set(ContextKeyClientID, clientID)

		return next(c)
	}
}

// AuthenticateOptional attaches the caller's identity when a valid bearer
// token is present and lets the request through anonymously otherwise. The
// checkout preview uses it to bind a quote to a logged-in client.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if clientID, err := m.clientIDFromHeader(c); err == nil {
			c.Set(ContextKeyClientID, clientID)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) clientIDFromHeader(c echo.Context) (uuid.UUID, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, errors.New("Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return uuid.Nil, errors.New("Invalid token format, must be Bearer token")
	}

	token, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil || !token.Valid {
		return uuid.Nil, errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("Failed to parse token claims")
	}

	clientIDStr, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("Client ID missing from token")
	}
	clientID, err := uuid.Parse(clientIDStr)
	if err != nil {
		return uuid.Nil, errors.New("Invalid client ID format in token")
	}

	return clientID, nil
}

// ClientIDFromContext reads the authenticated client's id set by Authenticate.
func ClientIDFromContext(c echo.Context) (uuid.UUID, bool) {
	clientID, ok := c.Get(ContextKeyClientID).(uuid.UUID)

	return clientID, ok
}
