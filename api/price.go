package api

import (
	"encoding/json"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/vybenetwork/vybebot/model"
)

// GetTokenOhlcv pulls candles. This endpoint names its window params
// timeStart/timeEnd, unlike the token series endpoints.
func GetTokenOhlcv(mint, resolution string, startTs, endTs int64) (model.TokenOhlcv, error) {
	var result model.TokenOhlcv

	query := url.Values{}
	query.Set("resolution", resolution)
	query.Set("timeStart", cast.ToString(startTs))
	query.Set("timeEnd", cast.ToString(endTs))

	data, err := doGet("/price/"+mint+"/token-ohlcv", query)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal ohlcv err")
		return result, err
	}

	return result, nil
}
