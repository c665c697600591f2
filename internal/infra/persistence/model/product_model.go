package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. The image collection is stored as an
// ordered JSON array; legacy_image keeps the single-image column from before the
// collection migration so old rows keep rendering.
type ProductModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Price       float64        `gorm:"type:numeric(12,2);not null"`
	Stock       int            `gorm:"not null;default:0"`
	Images      datatypes.JSON `gorm:"type:jsonb"`
	LegacyImage string         `gorm:"type:varchar(512);column:image"`
	TipoID      *uuid.UUID     `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Tipo *TipoModel `gorm:"foreignKey:TipoID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
