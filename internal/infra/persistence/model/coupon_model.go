package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CouponModel is the GORM-specific struct for the 'coupons' table.
type CouponModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code      string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Value     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
