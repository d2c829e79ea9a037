package bot

import (
	"context"
	"errors"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/entity"
	"github.com/vybenetwork/vybebot/queue"
	"github.com/vybenetwork/vybebot/store"
)

var registerOnce sync.Once

// RegisterBot records the resolved identity and instance so shared
// paths, the broadcast pusher included, can reach the running bot.
func RegisterBot(cfg entity.BotConfig, b *bot.Bot) {
	registerOnce.Do(func() {
		entity.MainBotConfig = cfg
		entity.BotMap[cfg.Id] = b
	})
}

// SendMessage pushes one announcement to a chat, going through the
// retry queue when Telegram throttles.
func SendMessage(chatID int64, message string) (*models.Message, error) {
	b := entity.BotMap[entity.MainBotConfig.Id]
	if b == nil {
		return nil, errors.New("bot not registered")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sendParams := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      message,
		ParseMode: "HTML",
		LinkPreviewOptions: &models.LinkPreviewOptions{
			IsDisabled: bot.True(),
		},
	}

	store.BotMessageAdd()
	msg, err := b.SendMessage(ctx, sendParams)
	if err != nil {
		if bot.IsTooManyRequestsError(err) {
			queue.RetryPushMessage(sendParams)
		}
		log.Error().Err(err).Send()
		return nil, err
	}

	return msg, nil
}
