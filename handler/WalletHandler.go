package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/spf13/cast"
	"github.com/vybenetwork/vybebot/api"
	"github.com/vybenetwork/vybebot/chart"
	"github.com/vybenetwork/vybebot/model"
	"github.com/vybenetwork/vybebot/template"
	"github.com/vybenetwork/vybebot/util"
)

func WalletPnlReport(ctx context.Context, b *bot.Bot, userID int64, wallet string, days int) {
	data, err := api.GetWalletPnl(wallet, days)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}
	if data.Empty() {
		util.QuickMessage(ctx, b, userID,
			fmt.Sprintf("⚠️ No trading activity found for this wallet in the last %d days.", days))
		afterReport(ctx, b, userID, util.WalletMenuKeyboard())
		return
	}

	text, err := template.RanderWalletPnl(data, wallet, days)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}

	util.SendLongMessage(ctx, b, userID, text)
	afterReport(ctx, b, userID, util.WalletMenuKeyboard())
}

func PortfolioReport(ctx context.Context, b *bot.Bot, userID int64, wallet string) {
	// a cheap pnl probe screens out addresses the API has never seen
	if _, err := api.GetWalletPnl(wallet, 1); err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}

	tokens, tokensErr := api.GetTokenBalance(wallet)
	nfts, nftsErr := api.GetNftBalance(wallet)
	if tokensErr != nil && nftsErr != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(tokensErr))
		return
	}

	tokenUsd := cast.ToFloat64(tokens.TotalTokenValueUsd)
	nftUsd := cast.ToFloat64(nfts.TotalUsd)

	summary, err := template.RanderPortfolioSummary(wallet, tokenUsd, nftUsd)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}
	util.QuickMessage(ctx, b, userID, summary)

	if tokensErr == nil && len(tokens.Data) > 0 {
		if text, err := template.RanderTokenBalance(tokens); err == nil {
			util.SendLongMessage(ctx, b, userID, text)
		}
	}

	if nftsErr == nil {
		if text, err := template.RanderNftPortfolio(nfts); err == nil {
			util.SendLongMessage(ctx, b, userID, text)
		}
	}

	afterReport(ctx, b, userID, util.WalletMenuKeyboard())
}

func BalancesChartReport(ctx context.Context, b *bot.Bot, userID int64, d *model.QueryDraft) {
	data, err := api.GetTokenBalanceTs(d.Address, d.Days)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}
	if len(data.Data) == 0 {
		util.QuickMessage(ctx, b, userID, noDataText)
		afterReport(ctx, b, userID, util.WalletMenuKeyboard())
		return
	}

	text, err := template.RanderBalanceHistory(d.Address, d.Days, data.Data)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}
	util.SendLongMessage(ctx, b, userID, text)

	labels := make([]string, 0, len(data.Data))
	values := make([]float64, 0, len(data.Data))
	for _, p := range data.Data {
		labels = append(labels, util.FormatDate(p.BlockTime))
		values = append(values, cast.ToFloat64(p.TokenValue))
	}
	if png, err := chart.BalancesPNG(d.Address, labels, values); err == nil {
		util.QuickPhoto(ctx, b, userID, "balances.png", png, "📈 Token Balance Chart")
	}

	afterReport(ctx, b, userID, util.WalletMenuKeyboard())
}
