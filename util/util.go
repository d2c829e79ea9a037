package util

import (
	"os"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/vybenetwork/vybebot/config"
)

// EffectId pulls the acting user's id out of whichever part of the
// update Telegram populated.
func EffectId(update *models.Update) int64 {
	if update == nil {
		return 0
	}
	switch {
	case update.Message != nil:
		return update.Message.From.ID
	case update.EditedMessage != nil:
		return update.EditedMessage.From.ID
	case update.CallbackQuery != nil:
		return update.CallbackQuery.From.ID
	case update.InlineQuery != nil:
		return update.InlineQuery.From.ID
	case update.ChosenInlineResult != nil:
		return update.ChosenInlineResult.From.ID
	case update.ChannelPost != nil:
		return update.ChannelPost.From.ID
	case update.ShippingQuery != nil:
		return update.ShippingQuery.From.ID
	case update.PreCheckoutQuery != nil:
		return update.PreCheckoutQuery.From.ID
	}
	return 0
}

func IsCommand(text string) bool {
	return strings.HasPrefix(text, "/")
}

// IsDebug switches the api layer onto canned fixtures, via either the
// DEBUG env var or the yaml env block.
func IsDebug() bool {
	return os.Getenv("DEBUG") == "true" || config.YmlConfig.Env.Debug == "true"
}
