package callback

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/vybenetwork/vybebot/session"
	"github.com/vybenetwork/vybebot/store"
)

func WalletPnlHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitPnlWallet,
		"📬 Send the <b>wallet address</b> to analyze its trading PnL.", store.KindWallet)
}

func WalletPortfolioHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitPortfolioWallet,
		"📬 Send the <b>wallet address</b> for a full portfolio overview.", store.KindWallet)
}

func BalancesChartHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitBalancesWallet,
		"📬 Send the <b>wallet address</b> for its balance history.", store.KindWallet)
}
