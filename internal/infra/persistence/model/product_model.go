// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/domain/entity"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// The option schema is stored denormalized as JSONB; variants live in
// their own table.
type ProductModel struct {
	ID             uuid.UUID              `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string                 `gorm:"type:varchar(255);not null"`
	Images         []string               `gorm:"type:jsonb;serializer:json"`
	BasePrice      decimal.Decimal        `gorm:"type:numeric(12,2);not null;default:0"`
	Options        []entity.ProductOption `gorm:"type:jsonb;serializer:json"`
	TracksQuantity bool                   `gorm:"not null;default:false"`
	Active         bool                   `gorm:"not null;default:true;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
