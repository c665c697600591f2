// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel mirrors the 'clients' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ClientModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null;column:password"`
	Phone        string    `gorm:"type:varchar(20)"`
	Address      string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100)"`
	State        string    `gorm:"type:varchar(100)"`
	PostalCode   string    `gorm:"type:varchar(20)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Purchases     []PurchaseModel     `gorm:"foreignKey:ClientID"`
	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:ClientID"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}
