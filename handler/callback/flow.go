package callback

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/vybenetwork/vybebot/session"
	"github.com/vybenetwork/vybebot/store"
	"github.com/vybenetwork/vybebot/util"
)

// startFlow arms the state machine and prompts for the first input.
// Recent lookups of the matching kind become one-tap buttons above the
// back row.
func startFlow(ctx context.Context, b *bot.Bot, update *models.Update, state, text, kind string) {
	userID := util.EffectId(update)

	store.Delete(userID, store.FlowDraft)
	session.SetState(userID, state)

	var kb models.InlineKeyboardMarkup
	if kind != "" {
		if recent := util.RecentKeyboard(userID, kind); recent != nil {
			kb.InlineKeyboard = append(kb.InlineKeyboard, recent.InlineKeyboard...)
		}
	}
	kb.InlineKeyboard = append(kb.InlineKeyboard, util.BackRow())

	util.QuickMessageWithKeyboard(ctx, b, userID, text, kb)
}
