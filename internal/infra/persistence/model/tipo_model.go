package model

import (
	"time"

	"github.com/google/uuid"
)

// TipoModel mirrors the 'tipos' table, the product category catalog.
type TipoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Products []ProductModel `gorm:"foreignKey:TipoID"`
}

// TableName explicitly sets the table name for GORM.
func (TipoModel) TableName() string {
	return "tipos"
}
