package template

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/vybenetwork/vybebot/model"
)

var walletPnlTemplate = `💥 <b>PnL Summary ({{ days }}d)</b>
👛 Wallet: <code>{{ wallet }}</code>
💵 <b>Realized PnL:</b> ${{ s.RealizedPnlUsd | fixed:2 }}
📉 <b>Unrealized PnL:</b> ${{ s.UnrealizedPnlUsd | fixed:2 }}
🔁 <b>Trade Volume:</b> ${{ s.TradesVolumeUsd | fixed:2 }}
📊 <b>Total Trades:</b> {{ s.TradesCount | integer }}
📦 <b>Avg. Trade Size:</b> ${{ s.AverageTradeUsd | fixed:2 }}
🏆 <b>Win Rate:</b> {{ s.WinRate | formatPer }}
{% if tokens %}
📌 <b>Token Metrics:</b>
{% for t in tokens %}
🪙 <b>{{ t.TokenSymbol | default:"N/A" }}</b>
💰 Realized: ${{ t.RealizedPnlUsd | fixed:2 }}
📉 Unrealized: ${{ t.UnrealizedPnlUsd | fixed:2 }}
🛒 Buys: ${{ t.Buys.VolumeUsd | fixed:2 }} | {{ t.Buys.TransactionCount | integer }} txs
🏷️ Sells: ${{ t.Sells.VolumeUsd | fixed:2 }} | {{ t.Sells.TransactionCount | integer }} txs
{% endfor %}{% endif %}`

func RanderWalletPnl(data model.WalletPnl, wallet string, days int) (string, error) {
	tpl, err := pongo2.FromString(walletPnlTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	out, err := tpl.Execute(pongo2.Context{
		"s":      data.Summary,
		"tokens": data.TokenMetrics,
		"wallet": wallet,
		"days":   days,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return strings.TrimSpace(out), nil
}

type tokenBalanceRowView struct {
	model.TokenBalanceRow
	Emoji string
}

var tokenBalanceTemplate = `🧾 <b>Wallet Token Summary</b>
👛 Wallet: <code>{{ data.OwnerAddress | default:"N/A" }}</code>
💰 Total Token Value (USD): ${{ data.TotalTokenValueUsd | money }}
🔒 Staked SOL (USD): ${{ data.StakedSolBalanceUsd | money }}
🪙 Token Count: {{ data.TotalTokenCount | integer }}

📊 <b>Tokens:</b>
{% for token in rows %}
{{ token.Emoji }} <b>{{ token.Symbol | default:"N/A" }}</b> ({{ token.Name | default:"N/A" }})
🔗 Mint: <code>{{ token.MintAddress | default:"N/A" }}</code>
📈 24h Price Change: {{ token.PriceUsd1dChange | fixed:2 }}%
💸 24h Value Change: ${{ token.ValueUsd1dChange | fixed:2 }}
📦 Amount: {{ token.Amount }}
💵 Value: ${{ token.ValueUsd | money }}
✔️ Verified: {% if token.Verified %}✅{% else %}❌{% endif %}
{% endfor %}`

func RanderTokenBalance(data model.TokenBalance) (string, error) {
	tpl, err := pongo2.FromString(tokenBalanceTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	rows := make([]tokenBalanceRowView, 0, len(data.Data))
	for _, row := range data.Data {
		emoji := "⚪️"
		if change := cast.ToFloat64(row.ValueUsd1dChange); change > 0 {
			emoji = "🟢"
		} else if change < 0 {
			emoji = "🔴"
		}
		rows = append(rows, tokenBalanceRowView{TokenBalanceRow: row, Emoji: emoji})
	}

	out, err := tpl.Execute(pongo2.Context{
		"data": data,
		"rows": rows,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return strings.TrimSpace(out), nil
}

var portfolioSummaryTemplate = `📊 <b>Portfolio Summary</b>
👛 Wallet: <code>{{ wallet }}</code>

💼 <b>Token Value:</b> ${{ tokenUsd | money }}
🎨 <b>NFT Value:</b> ${{ nftUsd | money }}
🧾 <b>Total Portfolio:</b> 💵 ${{ total | money }}`

func RanderPortfolioSummary(wallet string, tokenUsd, nftUsd float64) (string, error) {
	tpl, err := pongo2.FromString(portfolioSummaryTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	out, err := tpl.Execute(pongo2.Context{
		"wallet":   wallet,
		"tokenUsd": tokenUsd,
		"nftUsd":   nftUsd,
		"total":    tokenUsd + nftUsd,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return out, nil
}
