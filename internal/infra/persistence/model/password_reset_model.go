package model

import "time"

// PasswordResetModel mirrors the 'password_resets' table. Email is the primary
// key: at most one live reset per account, a new request replaces the old row.
// The token is stored as its sha256 hex digest.
type PasswordResetModel struct {
	Email     string    `gorm:"type:varchar(255);primary_key"`
	TokenHash string    `gorm:"type:varchar(64);not null;column:token"`
	Code      string    `gorm:"type:varchar(6);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetModel) TableName() string {
	return "password_resets"
}
