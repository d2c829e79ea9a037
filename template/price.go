package template

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/model"
)

var tokenOhlcvTemplate = `📈 <b>Token OHLCV Data</b> ({{ resolution }} candles)
🗓️ <b>Range:</b> {{ startDate }} → {{ endDate }}
{% for c in candles %}
🕒 <b>Time:</b> {{ c.Time | formatTimeFull }}
🔓 Open: {{ c.Open }}
📈 High: {{ c.High }}
📉 Low: {{ c.Low }}
🔒 Close: {{ c.Close }}
📦 Volume: {{ c.Volume }}
💵 Volume (USD): {{ c.VolumeUsd }}
🧾 Count: {{ c.Count | integer }}
────────────────────────────
{% endfor %}`

// RanderTokenOhlcv prints the first ten candles so the message stays
// readable.
func RanderTokenOhlcv(data model.TokenOhlcv, resolution, startDate, endDate string) (string, error) {
	tpl, err := pongo2.FromString(tokenOhlcvTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	candles := data.Data
	if len(candles) > 10 {
		candles = candles[:10]
	}

	out, err := tpl.Execute(pongo2.Context{
		"candles":    candles,
		"resolution": resolution,
		"startDate":  startDate,
		"endDate":    endDate,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return strings.TrimSpace(out), nil
}
