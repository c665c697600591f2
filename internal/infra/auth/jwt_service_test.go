package auth

import (
	"testing"

	"tienda/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	clientID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(clientID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	token, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, clientID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])

	// Validate refresh token
	token, err = jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	claims, ok = token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
}

func TestJWTService_TokenTypeMismatch(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	clientID := uuid.New()
	accessToken, refreshToken, err := jwtService.GenerateTokens(clientID)
	require.NoError(t, err)

	// A refresh token must not pass access validation and vice versa.
	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
