package util

import (
	"fmt"

	"github.com/vybenetwork/vybebot/entity"
)

const solscanBase = "https://solscan.io"

func SolscanTokenUrl(mint string) string {
	return fmt.Sprintf("%s/token/%s", solscanBase, mint)
}

func SolscanAccountUrl(address string) string {
	return fmt.Sprintf("%s/account/%s", solscanBase, address)
}

// TokenDeepLink builds the share link that lands back in the token
// details report, the same "t_<mint>" payload the start handler matches.
func TokenDeepLink(mint string) string {
	return fmt.Sprintf("https://t.me/%s?start=t_%s", entity.MainBotConfig.BotName, mint)
}
