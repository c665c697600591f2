package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel mirrors the 'refresh_tokens' table. Tokens are stored as
// sha256 hex digests, never in the clear.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null;column:token"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time

	Client *ClientModel `gorm:"foreignKey:ClientID"`
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
