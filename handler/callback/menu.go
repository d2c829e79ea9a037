package callback

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/entity"
	"github.com/vybenetwork/vybebot/session"
	"github.com/vybenetwork/vybebot/store"
	"github.com/vybenetwork/vybebot/template"
	"github.com/vybenetwork/vybebot/util"
)

const (
	tokenMenuText   = "🪙 <b>Token Analysis</b>\n\nInspect any SPL token: live details, whale holders, transfer volume and candles."
	nftMenuText     = "🖼 <b>NFT Analysis</b>\n\nCollection ownership and wallet NFT holdings."
	programMenuText = "🛠 <b>Program Analysis</b>\n\nUsage, transactions and TVL for any Solana program."
	walletMenuText  = "👛 <b>Wallet Tracking</b>\n\nPnL, portfolio and balance history for any wallet."
)

func menuStack(userID int64) []string {
	v, ok := session.GetSessionManager().Get(userID, session.UserMenuStack)
	if !ok {
		return nil
	}
	stack, ok := v.([]string)
	if !ok {
		return nil
	}
	return stack
}

func pushMenu(userID int64, code string) {
	stack := menuStack(userID)
	if len(stack) > 0 && stack[len(stack)-1] == code {
		return
	}
	session.GetSessionManager().Set(userID, session.UserMenuStack, append(stack, code))
}

func popMenu(userID int64) {
	stack := menuStack(userID)
	if len(stack) == 0 {
		return
	}
	session.GetSessionManager().Set(userID, session.UserMenuStack, stack[:len(stack)-1])
}

func resetMenu(userID int64) {
	session.GetSessionManager().Delete(userID, session.UserMenuStack)
}

func showMenu(ctx context.Context, b *bot.Bot, userID int64, code string) {
	switch code {
	case entity.TOKEN_MENU:
		util.QuickMessageWithKeyboard(ctx, b, userID, tokenMenuText, util.TokenMenuKeyboard())
	case entity.NFT_MENU:
		util.QuickMessageWithKeyboard(ctx, b, userID, nftMenuText, util.NftMenuKeyboard())
	case entity.PROGRAM_MENU:
		util.QuickMessageWithKeyboard(ctx, b, userID, programMenuText, util.ProgramMenuKeyboard())
	case entity.WALLET_MENU:
		util.QuickMessageWithKeyboard(ctx, b, userID, walletMenuText, util.WalletMenuKeyboard())
	default:
		util.QuickMessageWithKeyboard(ctx, b, userID, "🏠 <b>Main Menu</b>\n\nChoose a category:", util.MainMenuKeyboard())
	}
}

func MainMenuHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	userID := util.EffectId(update)
	session.ClearFlow(userID)
	store.Delete(userID, store.FlowDraft)
	resetMenu(userID)

	firstName := "there"
	if update.CallbackQuery != nil && update.CallbackQuery.From.FirstName != "" {
		firstName = update.CallbackQuery.From.FirstName
	} else if update.Message != nil && update.Message.From != nil && update.Message.From.FirstName != "" {
		firstName = update.Message.From.FirstName
	}

	text, err := template.RanderStart(firstName)
	if err != nil {
		log.Error().Err(err).Send()
		util.QuickMessage(ctx, b, userID, template.ErrRander.Error())
		return
	}

	util.QuickMessageWithKeyboard(ctx, b, userID, text, util.MainMenuKeyboard())
}

func TokenMenuHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	userID := util.EffectId(update)
	session.ClearFlow(userID)
	pushMenu(userID, entity.TOKEN_MENU)
	showMenu(ctx, b, userID, entity.TOKEN_MENU)
}

func NftMenuHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	userID := util.EffectId(update)
	session.ClearFlow(userID)
	pushMenu(userID, entity.NFT_MENU)
	showMenu(ctx, b, userID, entity.NFT_MENU)
}

func ProgramMenuHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	userID := util.EffectId(update)
	session.ClearFlow(userID)
	pushMenu(userID, entity.PROGRAM_MENU)
	showMenu(ctx, b, userID, entity.PROGRAM_MENU)
}

func WalletMenuHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	userID := util.EffectId(update)
	session.ClearFlow(userID)
	pushMenu(userID, entity.WALLET_MENU)
	showMenu(ctx, b, userID, entity.WALLET_MENU)
}

// BackHandler leaves a half-finished prompt without popping, so the user
// lands on the menu the prompt came from. A plain back pops one level.
func BackHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	userID := util.EffectId(update)

	if _, inFlow := session.State(userID); inFlow {
		session.ClearFlow(userID)
		store.Delete(userID, store.FlowDraft)
	} else {
		popMenu(userID)
	}

	stack := menuStack(userID)
	if len(stack) == 0 {
		MainMenuHandler(ctx, b, update)
		return
	}
	showMenu(ctx, b, userID, stack[len(stack)-1])
}

func Alert(ctx context.Context, b *bot.Bot, update *models.Update) {
	userID := util.EffectId(update)
	util.QuickMessage(ctx, b, userID, "⏳ The bot is handling a lot of requests right now, give it a second.")
}
