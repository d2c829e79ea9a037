package template

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/model"
	"github.com/vybenetwork/vybebot/util"
)

var tokenDetailsTemplate = `📄 <b>Full Token Info</b>

🔘 <b>Symbol:</b> {{ data.Symbol | default:"N/A" }}
🏷️ <b>Name:</b> {{ data.Name | default:"N/A" }}
🔑 <b>Mint:</b> <code>{{ data.MintAddress | default:"N/A" }}</code>

💵 <b>Price Info</b>
💰 <b>Current Price:</b> ${{ data.Price | fixed:4 }}
📅 <b>1d Ago:</b> ${{ data.Price1d | fixed:4 }} ({{ delta1d }})
🗓️ <b>7d Ago:</b> ${{ data.Price7d | fixed:4 }} ({{ delta7d }})

🔍 <b>Details</b>
🧬 <b>Decimals:</b> {{ data.Decimal | integer }}
✅ <b>Verified:</b> {{ data.Verified | yesno:"True,False" }}
📂 <b>Category:</b> {{ data.Category | default:"N/A" }}
📁 <b>Subcategory:</b> {{ data.Subcategory | default:"N/A" }}

⏱️ <b>Last Updated:</b>
{{ data.UpdateTime | formatTimeFull }}

📦 <b>Supply &amp; Market</b>
📦 <b>Supply:</b> {{ data.CurrentSupply | fixed:4 }}
💰 <b>Market Cap:</b> ${{ data.MarketCap | formatNumber }}

📊 <b>24h Volume</b>
🔄 <b>Token:</b> {{ data.TokenAmountVolume24h | formatNumber }}
💸 <b>USD:</b> ${{ data.UsdValueVolume24h | formatNumber }}`

func RanderTokenDetails(data model.TokenDetails) (string, error) {
	tpl, err := pongo2.FromString(tokenDetailsTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	out, err := tpl.Execute(pongo2.Context{
		"data":    data,
		"delta1d": util.PriceDelta(data.Price, data.Price1d),
		"delta7d": util.PriceDelta(data.Price, data.Price7d),
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return out, nil
}

var topHoldersTemplate = `📋 <b>Top {{ limit }} Token Holders</b> (Sorted by <b>{{ sortBy }}</b>, <code>{{ sortDir | upper }}</code>):
{% for holder in holders %}
🏅 <b>Rank:</b> {{ holder.Rank }}
👤 <b>Owner:</b> {{ holder.OwnerName | default:"N/A" }} (<code>{{ holder.OwnerAddress }}</code>)
📦 <b>Balance:</b> {{ holder.Balance }}
💵 <b>Value (USD):</b> ${{ holder.ValueUsd | fixed:2 }}
📈 <b>Supply Held:</b> {{ holder.PercentageOfSupplyHeld | formatPer }}
🔘 <b>Token Symbol:</b> {{ holder.TokenSymbol | default:"N/A" }}
{% endfor %}`

func RanderTopHolders(data model.TopHolders, sortBy, sortDir string, limit int) (string, error) {
	tpl, err := pongo2.FromString(topHoldersTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	out, err := tpl.Execute(pongo2.Context{
		"holders": data.Data,
		"sortBy":  sortBy,
		"sortDir": sortDir,
		"limit":   limit,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return strings.TrimSpace(out), nil
}

// SolscanTokenLink makes the mint clickable in captions.
func SolscanTokenLink(mint string) string {
	return `<a href="` + util.SolscanTokenUrl(mint) + `">` + util.ShortAddress(mint) + `</a>`
}
