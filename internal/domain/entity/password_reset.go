package entity

import "time"

// PasswordReset is the single active reset record for an email address.
// TokenHash is the sha256 hex of the high-entropy token handed to the caller;
// Code is the 6-digit verification code mailed to the account. The record is
// single use and expires one hour after CreatedAt.
type PasswordReset struct {
	Email     string
	TokenHash string
	Code      string
	CreatedAt time.Time
}
