package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventModel is the GORM-specific struct for the 'product_events' table.
// A product with an attached event is fulfilled intangibly (ticket,
// admission) and needs no delivery address at checkout.
type EventModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	StartsAt  time.Time `gorm:"not null"`
	EndsAt    time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "product_events"
}
