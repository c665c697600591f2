package auth

import (
	"testing"

	"tienda/config"

	"github.com/stretchr/testify/assert"
)

func newTestHasherConfig(policy *config.PasswordStrengthConfig) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4} // Minimum cost keeps tests fast.
	cfg.PasswordStrength = policy

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(nil))

	password := "clave-segura-123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("otra-clave-123", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength_DefaultPolicy(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(nil))

	// Registration only requires 8 characters when no policy is configured.
	assert.NoError(t, hasher.ValidatePasswordStrength("12345678"))
	assert.Error(t, hasher.ValidatePasswordStrength("1234567"))
}

func TestBcryptHasher_ValidatePasswordStrength_ConfiguredPolicy(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(&config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        72,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}))

	// Valid password satisfying every requirement
	assert.NoError(t, hasher.ValidatePasswordStrength("StrongPass123!"))

	invalidPasswords := []string{
		"Sh0rt!",        // Too short
		"PASSWORD123!",  // No lowercase
		"password123!",  // No uppercase
		"PasswordABC!",  // No numbers
		"Password12345", // No special characters
	}

	for _, password := range invalidPasswords {
		assert.Error(t, hasher.ValidatePasswordStrength(password), "expected error for password: %s", password)
	}
}
