package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerDevice is a registered mobile device that receives order push notifications.
type CustomerDevice struct {
	ID         uuid.UUID `json:"id"`          // The unique identifier for the device registration.
	CustomerID uuid.UUID `json:"customer_id"` // The owning customer.
	FCMToken   string    `json:"fcm_token"`   // Firebase Cloud Messaging registration token.
	DeviceID   string    `json:"device_id"`   // Client-generated stable device identifier.
	Platform   string    `json:"platform"`    // "ios" or "android".
	IsActive   bool      `json:"is_active"`   // Inactive devices are skipped when sending.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when the device was registered.
	UpdatedAt  time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
