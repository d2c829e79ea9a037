package entity

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"
)

type BOT_CALLBACK_DATA_CODE = string

const (
	NFT_MENU     BOT_CALLBACK_DATA_CODE = "code::nft_menu"
	TOKEN_MENU   BOT_CALLBACK_DATA_CODE = "code::token_menu"
	PROGRAM_MENU BOT_CALLBACK_DATA_CODE = "code::program_menu"
	WALLET_MENU  BOT_CALLBACK_DATA_CODE = "code::wallet_menu"

	COLLECTION_OWNERS BOT_CALLBACK_DATA_CODE = "code::collection_owners"
	NFT_PORTFOLIO     BOT_CALLBACK_DATA_CODE = "code::nft_portfolio"

	TOKEN_INFO    BOT_CALLBACK_DATA_CODE = "code::token_info"
	TOP_HOLDERS   BOT_CALLBACK_DATA_CODE = "code::top_holders"
	HOLDERS_CHART BOT_CALLBACK_DATA_CODE = "code::holders_chart"
	VOLUME_CHART  BOT_CALLBACK_DATA_CODE = "code::volume_chart"
	OHLCV         BOT_CALLBACK_DATA_CODE = "code::ohlcv"

	PROGRAM_DETAILS    BOT_CALLBACK_DATA_CODE = "code::program_details"
	TOP_WALLETS        BOT_CALLBACK_DATA_CODE = "code::top_wallets"
	ACTIVE_USERS_CHART BOT_CALLBACK_DATA_CODE = "code::active_users_chart"
	TX_CHART           BOT_CALLBACK_DATA_CODE = "code::tx_chart"
	TVL_CHART          BOT_CALLBACK_DATA_CODE = "code::tvl_chart"

	WALLET_PNL       BOT_CALLBACK_DATA_CODE = "code::wallet_pnl"
	WALLET_PORTFOLIO BOT_CALLBACK_DATA_CODE = "code::wallet_portfolio"
	BALANCES_CHART   BOT_CALLBACK_DATA_CODE = "code::balances_chart"

	HELP                          BOT_CALLBACK_DATA_CODE = "code::help"
	ALPHA                         BOT_CALLBACK_DATA_CODE = "code::alpha"
	MAIN_MENU                     BOT_CALLBACK_DATA_CODE = "code::main_menu"
	BACK                          BOT_CALLBACK_DATA_CODE = "code::back"
	_BOT_CALLBACK_DATA_CODE_COUNT                        = iota
)

var CallbackTextMap = map[BOT_CALLBACK_DATA_CODE]string{
	NFT_MENU:     "🖼 NFT Analysis",
	TOKEN_MENU:   "🪙 Token Analysis",
	PROGRAM_MENU: "🛠 Program Analysis",
	WALLET_MENU:  "👛 Wallet Tracking",

	COLLECTION_OWNERS: "👥 Collection Owners",
	NFT_PORTFOLIO:     "🖼 NFT Portfolio",

	TOKEN_INFO:    "ℹ️ Token Info",
	TOP_HOLDERS:   "🐳 Top Token Holders",
	HOLDERS_CHART: "📈 Daily Holders Chart",
	VOLUME_CHART:  "📊 Transfer Volume Chart",
	OHLCV:         "🕯 OHLCV Data",

	PROGRAM_DETAILS:    "📋 Program Details",
	TOP_WALLETS:        "🏆 Top Active Wallets",
	ACTIVE_USERS_CHART: "📈 Active Users Chart",
	TX_CHART:           "📊 Transactions Chart",
	TVL_CHART:          "💰 TVL Chart",

	WALLET_PNL:       "💹 PnL Analysis",
	WALLET_PORTFOLIO: "💼 Wallet Portfolio",
	BALANCES_CHART:   "📉 Balances Chart",

	HELP:      "❓ Help",
	ALPHA:     "📈 AlphaVybe",
	MAIN_MENU: "🏠 Main Menu",
	BACK:      "🔙 Back",
}

// check text map and code count
var _ = func() any {
	if len(CallbackTextMap) != _BOT_CALLBACK_DATA_CODE_COUNT {
		panic(fmt.Sprintf(
			"CallbackTextMap size mismatch: got %d, want %d",
			len(CallbackTextMap),
			_BOT_CALLBACK_DATA_CODE_COUNT,
		))
	}
	return nil
}()

// PNL_DAYS_PREFIX carries the picked day window after it, so the
// handler matches it by prefix instead of through the text map.
const PNL_DAYS_PREFIX = "pnlDays::"

type CallbackButton = models.InlineKeyboardButton

// build callback button
func GetCallbackButton(code BOT_CALLBACK_DATA_CODE) CallbackButton {
	return CallbackButton{
		CallbackData: code,
		Text:         CallbackTextMap[code],
	}
}

// split callback data
func SplitCallbackData(code BOT_CALLBACK_DATA_CODE) []string {
	return strings.Split(code, "::")
}
