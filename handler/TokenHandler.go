package handler

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/spf13/cast"
	"github.com/vybenetwork/vybebot/api"
	"github.com/vybenetwork/vybebot/chart"
	"github.com/vybenetwork/vybebot/model"
	"github.com/vybenetwork/vybebot/template"
	"github.com/vybenetwork/vybebot/util"
)

func TokenDetailsReport(ctx context.Context, b *bot.Bot, userID int64, mint string) {
	data, err := api.GetTokenDetailsSwitch(mint)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}

	text, err := template.RanderTokenDetails(data)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}

	util.QuickMessageWithButton(ctx, b, userID, text,
		util.UrlButton("🔍 View on Solscan", util.SolscanTokenUrl(mint)),
		util.UrlButton("📤 Share", util.TokenDeepLink(mint)))
	afterReport(ctx, b, userID, util.TokenMenuKeyboard())
}

func TopHoldersReport(ctx context.Context, b *bot.Bot, userID int64, d *model.QueryDraft) {
	data, err := api.GetTopHolders(d.Mint, d.SortField, d.SortDir, d.Limit)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}
	if len(data.Data) == 0 {
		util.QuickMessage(ctx, b, userID, noDataText)
		afterReport(ctx, b, userID, util.TokenMenuKeyboard())
		return
	}

	text, err := template.RanderTopHolders(data, d.SortField, d.SortDir, d.Limit)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}

	util.SendLongMessage(ctx, b, userID, text)
	afterReport(ctx, b, userID, util.TokenMenuKeyboard())
}

func HoldersChartReport(ctx context.Context, b *bot.Bot, userID int64, d *model.QueryDraft) {
	data, err := api.GetHoldersTs(d.Mint, d.StartTs, d.EndTs)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}
	if len(data.Data) == 0 {
		util.QuickMessage(ctx, b, userID, noDataText)
		afterReport(ctx, b, userID, util.TokenMenuKeyboard())
		return
	}

	rows := make([]template.SeriesRow, 0, len(data.Data))
	labels := make([]string, 0, len(data.Data))
	values := make([]float64, 0, len(data.Data))
	for _, p := range data.Data {
		label := util.FormatDate(p.HoldersTimestamp)
		rows = append(rows, template.SeriesRow{Label: label, Value: p.NHolders})
		labels = append(labels, label)
		values = append(values, cast.ToFloat64(p.NHolders))
	}
	latest := data.Data[len(data.Data)-1].NHolders

	text, err := template.RanderHoldersSummary(d.Mint, d.StartDate, d.EndDate, rows, latest)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}
	util.SendLongMessage(ctx, b, userID, text)

	// windows under two days only hold one or two points
	if d.EndTs-d.StartTs >= 2*86400 {
		if png, err := chart.HoldersPNG(d.StartDate, d.EndDate, labels, values); err == nil {
			util.QuickPhoto(ctx, b, userID, "holders.png", png,
				"📊 Daily Holders Chart | "+template.SolscanTokenLink(d.Mint))
		}
	}

	afterReport(ctx, b, userID, util.TokenMenuKeyboard())
}

func TransferVolumeReport(ctx context.Context, b *bot.Bot, userID int64, d *model.QueryDraft) {
	data, err := api.GetTransferVolume(d.Mint, d.StartTs, d.EndTs, d.Interval)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}
	if len(data.Data) == 0 {
		util.QuickMessage(ctx, b, userID, noDataText)
		afterReport(ctx, b, userID, util.TokenMenuKeyboard())
		return
	}

	rows := make([]template.SeriesRow, 0, len(data.Data))
	times := make([]time.Time, 0, len(data.Data))
	values := make([]float64, 0, len(data.Data))
	for _, p := range data.Data {
		rows = append(rows, template.SeriesRow{Label: util.FormatTime(p.TimeBucketStart), Value: p.Volume})
		times = append(times, time.Unix(p.TimeBucketStart, 0).UTC())
		values = append(values, cast.ToFloat64(p.Volume))
	}

	text, err := template.RanderTransferVolumeSummary(d.Mint, d.Interval, d.StartDate, d.EndDate, rows)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}
	util.SendLongMessage(ctx, b, userID, text)

	if png, err := chart.TransferVolumePNG(util.ShortAddress(d.Mint), d.StartDate, d.EndDate, d.Interval, times, values); err == nil {
		util.QuickPhoto(ctx, b, userID, "volume.png", png,
			"📊 Transfer Volume Chart | "+template.SolscanTokenLink(d.Mint))
	}

	afterReport(ctx, b, userID, util.TokenMenuKeyboard())
}

func OhlcvReport(ctx context.Context, b *bot.Bot, userID int64, d *model.QueryDraft) {
	data, err := api.GetTokenOhlcv(d.Mint, d.Resolution, d.StartTs, d.EndTs)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}
	if len(data.Data) == 0 {
		util.QuickMessage(ctx, b, userID, noDataText)
		afterReport(ctx, b, userID, util.TokenMenuKeyboard())
		return
	}

	text, err := template.RanderTokenOhlcv(data, d.Resolution, d.StartDate, d.EndDate)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}

	util.SendLongMessage(ctx, b, userID, text)
	afterReport(ctx, b, userID, util.TokenMenuKeyboard())
}
