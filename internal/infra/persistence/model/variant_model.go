package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/domain/entity"
)

// VariantModel is the GORM-specific struct for the 'product_variants' table.
// Each row is one sellable combination of option values for a product.
type VariantModel struct {
	ID             uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID      uuid.UUID            `gorm:"type:uuid;not null;index"`
	Price          decimal.Decimal      `gorm:"type:numeric(12,2);not null;default:0"`
	CompareAtPrice *decimal.Decimal     `gorm:"type:numeric(12,2)"`
	PointsPrice    int                  `gorm:"not null;default:0"`
	Quantity       int                  `gorm:"not null;default:0"`
	Options        []entity.OptionValue `gorm:"type:jsonb;serializer:json"`
	Active         bool                 `gorm:"not null;default:true;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (VariantModel) TableName() string {
	return "product_variants"
}
