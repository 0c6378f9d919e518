package service

import "context"

// NotificationService sends push notifications to customer devices.
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error

	// SendBatchNotification sends push notifications to multiple device tokens.
	// Returns counts plus the tokens the provider reported as invalid so the
	// caller can deactivate them.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
