package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PurchaseModel mirrors the 'purchases' table. The line items are denormalized
// into a JSON column so a sale keeps the prices and names it was confirmed with
// even after the catalog changes.
type PurchaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID  *uuid.UUID     `gorm:"type:uuid;index"`
	Items     datatypes.JSON `gorm:"type:jsonb;not null;column:productos"`
	Total     float64        `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Client *ClientModel `gorm:"foreignKey:ClientID"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
