package template

import (
	"github.com/flosch/pongo2/v6"
	"github.com/rs/zerolog/log"
)

var StartTemPlate = `👋 Hello {{ firstName }}!

Welcome to <b>VybeBot</b> – your on-chain insights assistant.
Use the menu buttons below to explore analytics across NFTs, programs, tokens, and wallets.

📌 Press ❓ <b>Help</b> at any time to view the full feature guide.`

func RanderStart(firstName string) (string, error) {
	tpl, err := pongo2.FromString(StartTemPlate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	out, err := tpl.Execute(pongo2.Context{
		"firstName": firstName,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return out, nil
}

var alphaTemplate = `🔍 <b>Want more alpha?</b>

Dive into powerful token analytics, wallet insights, and real-time market data on AlphaVybe:

🌐 {{ alphaUrl }}

📊 Track trending tokens
🐋 Follow whales and top wallets
📈 Monitor live price action
💼 Break down PnL and portfolio flows

<i>Alpha starts here.</i>`

func RanderAlpha(alphaUrl string) (string, error) {
	tpl, err := pongo2.FromString(alphaTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	out, err := tpl.Execute(pongo2.Context{
		"alphaUrl": alphaUrl,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return out, nil
}
