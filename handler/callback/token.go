package callback

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/vybenetwork/vybebot/session"
	"github.com/vybenetwork/vybebot/store"
)

func TokenInfoHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitTokenMint,
		"📬 Send the token <b>mint address</b>.", store.KindMint)
}

func TopHoldersHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitTopHoldersMint,
		"📬 Send the token <b>mint address</b> to list its top holders.", store.KindMint)
}

func HoldersChartHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitHoldersMint,
		"📬 Send the token <b>mint address</b> for the holders history.", store.KindMint)
}

func VolumeChartHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitVolumeMint,
		"📬 Send the token <b>mint address</b> for its transfer volume.", store.KindMint)
}

func OhlcvHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitOhlcvMint,
		"📬 Send the token <b>mint address</b> for OHLCV candles.", store.KindMint)
}
