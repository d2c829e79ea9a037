package callback

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/vybenetwork/vybebot/session"
	"github.com/vybenetwork/vybebot/store"
)

func ProgramDetailsHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitProgramAddr,
		"📬 Send the <b>program address</b>.", store.KindProgram)
}

func TopWalletsHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitTopWalletsAddr,
		"📬 Send the <b>program address</b> to rank its most active wallets.", store.KindProgram)
}

func ActiveUsersChartHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitUsersChartAddr,
		"📬 Send the <b>program address</b> for its active users history.", store.KindProgram)
}

func TxChartHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitTxChartAddr,
		"📬 Send the <b>program address</b> for its transaction history.", store.KindProgram)
}

func TvlChartHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitTvlChartAddr,
		"📬 Send the <b>program address</b> for its TVL history.", store.KindProgram)
}
