package contract

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ChannelClient defines the messaging transport used to deliver reminders.
// This allows mocking in tests while keeping the real implementation simple
type ChannelClient interface {
	// GetUpdates returns recent inbound activity, used to discover the destination chat
	GetUpdates(ctx context.Context) ([]tgbotapi.Update, error)

	// SendMessage sends a plain text message to a chat
	SendMessage(ctx context.Context, chatID int64, text string) error
}
