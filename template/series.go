package template

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/model"
)

// SeriesRow is one already-labelled point of a time series summary.
type SeriesRow struct {
	Label string
	Value any
}

func randerSeries(source string, ctx pongo2.Context) (string, error) {
	tpl, err := pongo2.FromString(source)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	out, err := tpl.Execute(ctx)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return strings.TrimSpace(out), nil
}

var activeUsersSummaryTemplate = `📊 <b>Active Users Over <code>{{ timeRange }}</code></b>
🧾 <b>Program:</b> {{ programName }}
──────────────────────────────
{% for r in rows %}🕒 {{ r.Label }} → 👥 {{ r.Value | integer }}
{% endfor %}──────────────────────────────
✅ <b>Total Active Users:</b> {{ total | comma }}`

func RanderActiveUsersSummary(programName, timeRange string, rows []SeriesRow, total int64) (string, error) {
	return randerSeries(activeUsersSummaryTemplate, pongo2.Context{
		"programName": programName,
		"timeRange":   timeRange,
		"rows":        rows,
		"total":       total,
	})
}

var txCountSummaryTemplate = `📊 <b>Transactions Over <code>{{ timeRange }}</code></b>
🧾 <b>Program:</b> {{ programName }}
──────────────────────────────
{% for r in rows %}🕒 {{ r.Label }} → 🔁 {{ r.Value | comma }}
{% endfor %}──────────────────────────────
✅ <b>Total Transactions:</b> {{ total | comma }}`

func RanderTxCountSummary(programName, timeRange string, rows []SeriesRow, total int64) (string, error) {
	return randerSeries(txCountSummaryTemplate, pongo2.Context{
		"programName": programName,
		"timeRange":   timeRange,
		"rows":        rows,
		"total":       total,
	})
}

var tvlSummaryTemplate = `📊 <b>TVL Data for</b> <code>{{ programName }}</code> ({{ resolution }})
──────────────────────────────
{% for r in rows %}🕒 {{ r.Label }} → 💰 ${{ r.Value | money }}
{% endfor %}`

func RanderTvlSummary(programName, resolution string, rows []SeriesRow) (string, error) {
	return randerSeries(tvlSummaryTemplate, pongo2.Context{
		"programName": programName,
		"resolution":  resolution,
		"rows":        rows,
	})
}

var holdersSummaryTemplate = `📊 <b>Daily Holders Count</b>
🔑 <b>Mint:</b> <code>{{ mint }}</code>
📆 <b>Range:</b> {{ startDate }} → {{ endDate }}

{% for r in rows %}🗓️ {{ r.Label }} → 👥 {{ r.Value | comma }}
{% endfor %}
✅ <b>Latest Total Holders:</b> {{ latest | comma }}`

func RanderHoldersSummary(mint, startDate, endDate string, rows []SeriesRow, latest any) (string, error) {
	return randerSeries(holdersSummaryTemplate, pongo2.Context{
		"mint":      mint,
		"startDate": startDate,
		"endDate":   endDate,
		"rows":      rows,
		"latest":    latest,
	})
}

var transferVolumeSummaryTemplate = `📋 <b>Transfer Volume Data</b> ({{ interval }})
🪙 <b>Mint:</b> {{ mint }}
📆 <b>Range:</b> {{ startDate }} ➡ {{ endDate }}
────────────────────────────
{% for r in rows %}🕒 {{ r.Label }} → 📦 {{ r.Value | money }}
{% endfor %}────────────────────────────`

func RanderTransferVolumeSummary(mint, interval, startDate, endDate string, rows []SeriesRow) (string, error) {
	return randerSeries(transferVolumeSummaryTemplate, pongo2.Context{
		"mint":      mint,
		"interval":  interval,
		"startDate": startDate,
		"endDate":   endDate,
		"rows":      rows,
	})
}

var balanceHistoryTemplate = `📊 <b>Token Balance History</b> (<code>{{ days }}d</code>)
👛 <b>Wallet:</b> <code>{{ wallet }}</code>
────────────────────────────
{% for p in points %}📅 {{ p.BlockTime | formatDate }}
💰 Token Value: ${{ p.TokenValue | money }}
🔒 Stake Value: ${{ p.StakeValue | money }}
🛠️ System Value: ${{ p.SystemValue | money }}
🧊 Stake (SOL): {{ p.StakeValueSol | fixed:2 }}
────────────────────────────
{% endfor %}`

func RanderBalanceHistory(wallet string, days int, points []model.BalanceTsPoint) (string, error) {
	return randerSeries(balanceHistoryTemplate, pongo2.Context{
		"wallet": wallet,
		"days":   days,
		"points": points,
	})
}
