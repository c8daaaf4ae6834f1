package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/diegoclair/task-reminder-bot/internal/domain"
	"github.com/diegoclair/task-reminder-bot/internal/domain/contract"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// destination resolves the one chat every reminder is sent to. The settings
// table is the only cache: once a chat id is stored, no discovery call is made.
type destination struct {
	dm      contract.DataManager
	channel contract.ChannelClient
}

func newDestination(dm contract.DataManager, channel contract.ChannelClient) *destination {
	return &destination{
		dm:      dm,
		channel: channel,
	}
}

// Resolve returns the stored chat id, or discovers it from the bot's recent
// updates. ok is false when no chat is known yet; discovery is then retried
// on the next call.
func (d *destination) Resolve(ctx context.Context) (int64, bool) {
	value, err := d.dm.Setting().Get(ctx, domain.SettingChatID)
	if err != nil {
		log.WithError(err).Error("failed to read destination setting")
		return 0, false
	}

	if value = strings.TrimSpace(value); value != "" {
		chatID, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return chatID, true
		}
		log.WithField("value", value).Warn("stored chat id is not numeric, discovering it again")
	}

	return d.discover(ctx)
}

func (d *destination) discover(ctx context.Context) (int64, bool) {
	updates, err := d.channel.GetUpdates(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to fetch updates for destination discovery")
		return 0, false
	}

	for _, update := range updates {
		chatID, ok := updateChatID(update)
		if !ok {
			continue
		}

		if err := d.dm.Setting().Upsert(ctx, domain.SettingChatID, strconv.FormatInt(chatID, 10)); err != nil {
			log.WithError(err).WithField("chat_id", chatID).Error("failed to save discovered chat id")
			return 0, false
		}

		log.WithField("chat_id", chatID).Info("destination chat discovered")
		return chatID, true
	}

	log.Debug("no inbound messages yet, destination unknown")
	return 0, false
}

// updateChatID returns the chat of the update's message, falling back to the
// edited message when there is no new one.
func updateChatID(update tgbotapi.Update) (int64, bool) {
	msg := update.Message
	if msg == nil {
		msg = update.EditedMessage
	}
	if msg == nil || msg.Chat == nil {
		return 0, false
	}
	return msg.Chat.ID, true
}
