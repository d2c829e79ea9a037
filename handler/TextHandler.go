package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/vybenetwork/vybebot/store"
	"github.com/vybenetwork/vybebot/util"
)

func TextHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}

	if util.IsCommand(update.Message.Text) {
		CommandHandler(ctx, b, update)
		return
	}

	// a flow prompt waiting on input consumes the message
	if FlowHandler(ctx, b, update) {
		return
	}

	// a bare address outside any flow reads as a token lookup
	text := strings.TrimSpace(update.Message.Text)
	if err := util.CheckSolanaAddress(text); err == nil {
		userID := util.EffectId(update)
		store.PushRecentLookup(userID, store.KindMint, text)
		TokenDetailsReport(ctx, b, userID, text)
		return
	}

	util.QuickMessageWithKeyboard(ctx, b, util.EffectId(update),
		"🤔 I didn't catch that. Pick an option below:", util.MainMenuKeyboard())
}
