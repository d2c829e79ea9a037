package template

import (
	"github.com/flosch/pongo2/v6"
	"github.com/rs/zerolog/log"
)

var helpTemplate = `🆘 <b>VybeBot Help Menu</b>

Welcome to <b>VybeBot</b> – your all-in-one assistant for on-chain analytics and insights across NFTs, tokens, wallets, and programs!

👇 Use the menu buttons or commands to explore features:

<b>🖼 NFT Analysis</b>
• 👥 Collection Owners – See top holders of any NFT collection (up to 🔟).
• 🖼 NFT Portfolio – View a wallet's full NFT portfolio.

<b>🛠 Program Analysis</b>
• 📋 Details – Get stats, description &amp; logo of any program.
• 🏆 Top Wallets – View most active wallets in the past X days.
• 📊 Transactions – Chart transaction counts over time.
• 📈 Active Users – Visualize DAU trends with charts.
• 💰 TVL – View historical Total Value Locked.

<b>🪙 Token Analysis</b>
• ℹ️ Info – Fetch full token details by mint.
• 🕯 OHLCV – Get open/high/low/close/volume data with resolution options.
• 📊 Volume – Analyze transfer volumes (hour/day).
• 📈 Daily Holders – Chart holder count growth.
• 🐳 Top Holders – Rank by balance, value, or supply %.

<b>👛 Wallet Tracking</b>
• 💼 Portfolio – View total token + NFT value in a wallet.
• 💹 PnL – Track wallet profit/loss over 1, 7, or 30 days.
• 📉 Balances – View wallet token balances over time.

<b>📈 AlphaVybe</b>
🔗 Dashboards: <a href="{{ alphaUrl }}">vybe.fyi</a>
Live market metrics, whale activity &amp; token insights.

<b>🔙 Back / 🏠 Main Menu</b>
Use these to navigate between menus.

💡 <b>Need Help?</b> Just press ❓ Help anytime.

Happy analyzing with VybeBot! 🚀📊`

func RanderHelp(alphaUrl string) (string, error) {
	tpl, err := pongo2.FromString(helpTemplate)
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
