package callback

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/vybenetwork/vybebot/session"
	"github.com/vybenetwork/vybebot/store"
)

func CollectionOwnersHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitCollectionAddr,
		"📬 Send the NFT <b>collection address</b>.", store.KindCollection)
}

func NftPortfolioHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	startFlow(ctx, b, update, session.AwaitNftWallet,
		"📬 Send the <b>wallet address</b> for its NFT holdings.", store.KindWallet)
}
