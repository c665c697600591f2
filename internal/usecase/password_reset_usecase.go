package usecase

import "context"

// RequestResetInput starts a password reset for an account.
type RequestResetInput struct {
	Email string
}

// RequestResetOutput returns the reset token the caller must present in the
// following steps. Code is echoed only when the service runs in debug mode
// with code exposure enabled; otherwise it travels by mail alone.
type RequestResetOutput struct {
	Token string
	Code  string
}

// VerifyCodeInput checks the mailed 6-digit code against the stored record.
type VerifyCodeInput struct {
	Email string
	Code  string
	Token string
}

// VerifyCodeOutput echoes the token back on success so the client can proceed
// to the reset step.
type VerifyCodeOutput struct {
	Token string
}

// ResetPasswordInput sets the new password after a verified reset.
type ResetPasswordInput struct {
	Email                string
	Token                string
	Password             string
	PasswordConfirmation string
}

// PasswordResetUsecase defines the three-step code-based password reset.
type PasswordResetUsecase interface {
	RequestReset(ctx context.Context, input *RequestResetInput) (*RequestResetOutput, error)
	VerifyCode(ctx context.Context, input *VerifyCodeInput) (*VerifyCodeOutput, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
