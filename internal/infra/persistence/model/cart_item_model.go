package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// One row per (customer, variant); Position preserves insertion order.
type CartItemModel struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID  uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_customer_variant,priority:1"`
	VariantID   uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_customer_variant,priority:2"`
	ProductID   uuid.UUID            `gorm:"type:uuid;not null"`
	Name        string               `gorm:"type:varchar(255);not null"`
	Image       string               `gorm:"type:varchar(512)"`
	UnitPrice   decimal.Decimal      `gorm:"type:numeric(12,2);not null"`
	Quantity    int                  `gorm:"not null;default:1"`
	MaxQuantity int                  `gorm:"not null"`
	Options     []entity.OptionValue `gorm:"type:jsonb;serializer:json"`
	Position    int                  `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
