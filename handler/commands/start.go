package commands

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/model"
	"github.com/vybenetwork/vybebot/session"
	"github.com/vybenetwork/vybebot/store"
	"github.com/vybenetwork/vybebot/template"
	"github.com/vybenetwork/vybebot/util"
)

func StartHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := util.EffectId(update)

	store.TrackUser(chatID)
	session.ClearFlow(chatID)
	session.GetSessionManager().Delete(chatID, session.UserMenuStack)
	store.Delete(chatID, store.FlowDraft)

	firstName := "there"
	if update.Message != nil && update.Message.From != nil && update.Message.From.FirstName != "" {
		firstName = update.Message.From.FirstName
	} else if update.CallbackQuery != nil && update.CallbackQuery.From.FirstName != "" {
		firstName = update.CallbackQuery.From.FirstName
	}

	text, err := template.RanderStart(firstName)
	if err != nil {
		log.Error().Err(err).Send()
		util.QuickMessage(ctx, b, chatID, template.ErrRander.Error())
		return
	}

	message, err := util.MenuMessage(ctx, b, chatID, text, util.MainMenuKeyboard())
	if err != nil {
		log.Error().Err(err).Send()
		return
	}

	// remember the menu so its buttons can be expired after a restart
	model.NewMessageWrap(chatID, *message)
}

func CancelHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := util.EffectId(update)

	session.ClearFlow(chatID)
	session.GetSessionManager().Delete(chatID, session.UserMenuStack)
	store.Delete(chatID, store.FlowDraft)

	util.QuickMessageWithKeyboard(ctx, b, chatID, "✅ Cancelled. Back to the main menu.", util.MainMenuKeyboard())
}

// StartWrapMiddlewares intercepts deep links of the form
// "/start t_<mint>" and replays them as a pasted mint address, which
// lands in the token details report.
func StartWrapMiddlewares(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		payload, ok := startPayload(update)
		if !ok {
			next(ctx, b, update)
			return
		}

		log.Debug().Str("afterStart", payload).Send()

		// unknown payloads still get the plain welcome
		StartHandler(ctx, b, update)
		if mint, matched := MatchTokenDeeplink(payload); matched {
			b.ProcessUpdate(ctx, BuildNewUpdateForTokenAddress(mint, update))
		}
	}
}

// startPayload returns the argument of a "/start <arg>" command message.
func startPayload(update *models.Update) (string, bool) {
	if update.Message == nil || len(update.Message.Entities) == 0 {
		return "", false
	}

	isCommand := false
	for _, ent := range update.Message.Entities {
		if ent.Type == models.MessageEntityTypeBotCommand {
			isCommand = true
			break
		}
	}
	if !isCommand {
		return "", false
	}

	parts := strings.Split(update.Message.Text, " ")
	if parts[0] != "/start" || len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}

// deep link payload: t_<mintAddress>
func MatchTokenDeeplink(link string) (string, bool) {
	if !strings.HasPrefix(link, "t_") {
		return "", false
	}
	mint := strings.TrimPrefix(link, "t_")
	if mint == "" {
		return "", false
	}
	return mint, true
}

func BuildNewUpdateForTokenAddress(address string, u *models.Update) *models.Update {
	newUpdate := &models.Update{
		Message: &models.Message{
			Text: address,
			From: u.Message.From,
			Chat: u.Message.Chat,
			ID:   u.Message.ID,
			Date: int(time.Now().Unix()),
		},
		ID: u.ID,
	}
	return newUpdate
}
