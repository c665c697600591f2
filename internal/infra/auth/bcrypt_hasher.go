// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"tienda/config"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:     cost,
		strength: cfg.PasswordStrength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength verifies the password against the configured policy.
// With no policy configured only a minimum length of 8 is enforced, matching
// the registration rule of the storefront.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	policy := h.strength
	if policy == nil {
		if len(password) < 8 {
			return domainerrors.ErrPasswordStrength.WrapMessage("password shorter than 8 characters")
		}

		return nil
	}

	if policy.MinLength > 0 && len(password) < policy.MinLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password too short")
	}
	if policy.MaxLength > 0 && len(password) > policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if policy.RequireUppercase && !hasUpper {
		return domainerrors.ErrPasswordStrength.WrapMessage("password missing uppercase letter")
	}
	if policy.RequireLowercase && !hasLower {
		return domainerrors.ErrPasswordStrength.WrapMessage("password missing lowercase letter")
	}
	if policy.RequireNumbers && !hasNumber {
		return domainerrors.ErrPasswordStrength.WrapMessage("password missing number")
	}
	if policy.RequireSpecial && !hasSpecial {
		return domainerrors.ErrPasswordStrength.WrapMessage("password missing special character")
	}

	return nil
}
