package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/vybenetwork/vybebot/api"
	"github.com/vybenetwork/vybebot/template"
	"github.com/vybenetwork/vybebot/util"
)

func CollectionOwnersReport(ctx context.Context, b *bot.Bot, userID int64, collection string) {
	data, err := api.GetCollectionOwners(collection)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}
	if len(data.Data) == 0 {
		util.QuickMessage(ctx, b, userID, "⚠️ No owners found for that collection.")
		afterReport(ctx, b, userID, util.NftMenuKeyboard())
		return
	}

	text, err := template.RanderCollectionOwners(data, collection)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}

	util.SendLongMessage(ctx, b, userID, text)
	afterReport(ctx, b, userID, util.NftMenuKeyboard())
}

func NftPortfolioReport(ctx context.Context, b *bot.Bot, userID int64, wallet string) {
	data, err := api.GetNftBalance(wallet)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}

	text, err := template.RanderNftPortfolio(data)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}

	util.SendLongMessage(ctx, b, userID, text)
	afterReport(ctx, b, userID, util.NftMenuKeyboard())
}
