package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/spf13/cast"
	"github.com/vybenetwork/vybebot/api"
	"github.com/vybenetwork/vybebot/chart"
	"github.com/vybenetwork/vybebot/model"
	"github.com/vybenetwork/vybebot/template"
	"github.com/vybenetwork/vybebot/util"
)

const topWalletsLimit = 10

func ProgramDetailsReport(ctx context.Context, b *bot.Bot, userID int64, address string) {
	data, err := api.GetProgramDetails(address)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}

	text, err := template.RanderProgramDetails(data)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}

	util.QuickMessageWithButton(ctx, b, userID, text,
		util.UrlButton("🔍 View on Solscan", util.SolscanAccountUrl(address)))
	afterReport(ctx, b, userID, util.ProgramMenuKeyboard())
}

func TopWalletsReport(ctx context.Context, b *bot.Bot, userID int64, d *model.QueryDraft) {
	data, err := api.GetActiveUsers(d.Address, d.Days, topWalletsLimit)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}
	if len(data.Data) == 0 {
		util.QuickMessage(ctx, b, userID, noDataText)
		afterReport(ctx, b, userID, util.ProgramMenuKeyboard())
		return
	}

	name := api.GetProgramName(d.Address)
	text, err := template.RanderTopWallets(data, name, d.Days, topWalletsLimit)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}

	util.SendLongMessage(ctx, b, userID, text)
	afterReport(ctx, b, userID, util.ProgramMenuKeyboard())
}

func ActiveUsersChartReport(ctx context.Context, b *bot.Bot, userID int64, d *model.QueryDraft) {
	data, err := api.GetActiveUsersTs(d.Address, d.Range)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}
	if len(data.Data) == 0 {
		util.QuickMessage(ctx, b, userID, noDataText)
		afterReport(ctx, b, userID, util.ProgramMenuKeyboard())
		return
	}

	name := api.GetProgramName(d.Address)
	hourly := strings.Contains(d.Range, "h")

	rows := make([]template.SeriesRow, 0, len(data.Data))
	labels := make([]string, 0, len(data.Data))
	values := make([]float64, 0, len(data.Data))
	var total int64
	for _, p := range data.Data {
		label := util.FormatDate(p.BlockTime)
		if hourly {
			label = util.FormatTime(p.BlockTime)
		}
		rows = append(rows, template.SeriesRow{Label: label, Value: p.Dau})
		labels = append(labels, label)
		values = append(values, cast.ToFloat64(p.Dau))
		total += cast.ToInt64(p.Dau)
	}

	text, err := template.RanderActiveUsersSummary(name, d.Range, rows, total)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}
	util.SendLongMessage(ctx, b, userID, text)

	// one or two buckets make a meaningless bar chart
	if rangeValue(d.Range) > 2 {
		if png, err := chart.ActiveUsersPNG(name, d.Range, labels, values); err == nil {
			util.QuickPhoto(ctx, b, userID, "active_users.png", png,
				"📊 Active Users Chart | "+name)
		}
	}

	afterReport(ctx, b, userID, util.ProgramMenuKeyboard())
}

func TxChartReport(ctx context.Context, b *bot.Bot, userID int64, d *model.QueryDraft) {
	data, err := api.GetTransactionsCountTs(d.Address, d.Range)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}
	if len(data.Data) == 0 {
		util.QuickMessage(ctx, b, userID, noDataText)
		afterReport(ctx, b, userID, util.ProgramMenuKeyboard())
		return
	}

	name := api.GetProgramName(d.Address)
	hourly := strings.Contains(d.Range, "h")

	rows := make([]template.SeriesRow, 0, len(data.Data))
	var total int64
	for _, p := range data.Data {
		label := util.FormatDate(p.BlockTime)
		if hourly {
			label = util.FormatTime(p.BlockTime)
		}
		rows = append(rows, template.SeriesRow{Label: label, Value: p.TransactionsCount})
		total += cast.ToInt64(p.TransactionsCount)
	}

	text, err := template.RanderTxCountSummary(name, d.Range, rows, total)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}
	util.SendLongMessage(ctx, b, userID, text)

	n := rangeValue(d.Range)
	var png []byte
	var caption string

	switch {
	case hourly && n <= 1:
		// one hour of data, nothing to draw

	case (hourly && n == 24) || (!hourly && n == 1):
		// a one day window reads better bucketed by hour
		refetched, err := api.GetTransactionsCountTs(d.Address, "24h")
		if err == nil && len(refetched.Data) > 0 {
			labels, values := txSeries(refetched.Data, true)
			png, _ = chart.TransactionsPNG(fmt.Sprintf("Hourly Transactions | %s (1d)", name), labels, values)
			caption = fmt.Sprintf("📈 Hourly Chart | %s (1d)", name)
		}

	case hourly:
		labels, values := txSeries(data.Data, true)
		png, _ = chart.TransactionsPNG(fmt.Sprintf("Hourly Transactions | %s (%s)", name, d.Range), labels, values)
		caption = fmt.Sprintf("📈 Hourly Chart | %s (%s)", name, d.Range)

	default:
		labels, values := txSeries(data.Data, false)
		png, _ = chart.TransactionsPNG(fmt.Sprintf("Transactions | %s (%s)", name, d.Range), labels, values)
		caption = fmt.Sprintf("📈 Transaction Chart | %s (%s)", name, d.Range)
	}

	if len(png) > 0 {
		util.QuickPhoto(ctx, b, userID, "transactions.png", png, caption)
	}

	afterReport(ctx, b, userID, util.ProgramMenuKeyboard())
}

func txSeries(points []model.TxCountTsPoint, hourly bool) ([]string, []float64) {
	labels := make([]string, 0, len(points))
	values := make([]float64, 0, len(points))
	for _, p := range points {
		if hourly {
			labels = append(labels, util.FormatTime(p.BlockTime))
		} else {
			labels = append(labels, util.FormatDate(p.BlockTime))
		}
		values = append(values, cast.ToFloat64(p.TransactionsCount))
	}
	return labels, values
}

func TvlChartReport(ctx context.Context, b *bot.Bot, userID int64, d *model.QueryDraft) {
	if err := util.CheckResolution(d.Resolution); err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}

	data, err := api.GetProgramTvl(d.Address, d.Resolution)
	if err != nil {
		util.QuickMessage(ctx, b, userID, apiErrorText(err))
		return
	}

	name := api.GetProgramName(d.Address)

	rows := make([]template.SeriesRow, 0, len(data.Data))
	times := make([]time.Time, 0, len(data.Data))
	values := make([]float64, 0, len(data.Data))
	for _, p := range data.Data {
		t, ok := util.ParseISOTime(p.Time)
		if !ok {
			continue
		}
		rows = append(rows, template.SeriesRow{Label: util.TimestampToDate(t.Unix()), Value: p.Tvl})
		times = append(times, t)
		values = append(values, cast.ToFloat64(p.Tvl))
	}
	if len(rows) == 0 {
		util.QuickMessage(ctx, b, userID, noDataText)
		afterReport(ctx, b, userID, util.ProgramMenuKeyboard())
		return
	}

	text, err := template.RanderTvlSummary(name, d.Resolution, rows)
	if err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return
	}
	util.SendLongMessage(ctx, b, userID, text)

	if png, err := chart.TvlPNG(name, d.Resolution, times, values); err == nil {
		util.QuickPhoto(ctx, b, userID, "tvl.png", png, "📈 TVL Chart | "+name)
	}

	afterReport(ctx, b, userID, util.ProgramMenuKeyboard())
}
