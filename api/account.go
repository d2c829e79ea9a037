package api

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/vybenetwork/vybebot/model"
)

// GetWalletPnl summarises trading performance over the last N days. The
// endpoint expresses the window as a resolution like "7d".
func GetWalletPnl(wallet string, days int) (model.WalletPnl, error) {
	var result model.WalletPnl

	query := url.Values{}
	query.Set("resolution", fmt.Sprintf("%dd", days))

	data, err := doGet("/account/pnl/"+wallet, query)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal wallet pnl err")
		return result, err
	}

	return result, nil
}

func GetTokenBalance(wallet string) (model.TokenBalance, error) {
	var result model.TokenBalance

	data, err := doGet("/account/token-balance/"+wallet, nil)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal token balance err")
		return result, err
	}

	return result, nil
}

func GetTokenBalanceTs(wallet string, days int) (model.TokenBalanceTs, error) {
	var result model.TokenBalanceTs

	query := url.Values{}
	query.Set("days", cast.ToString(days))

	data, err := doGet("/account/token-balance-ts/"+wallet, query)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal balance series err")
		return result, err
	}

	return result, nil
}
