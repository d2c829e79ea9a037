package api

import (
	"encoding/json"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/vybenetwork/vybebot/model"
	test_data "github.com/vybenetwork/vybebot/testData"
	"github.com/vybenetwork/vybebot/util"
)

// GetTokenDetailsSwitch serves a canned payload in debug mode so the bot
// runs without upstream credentials.
func GetTokenDetailsSwitch(mint string) (model.TokenDetails, error) {
	if util.IsDebug() {
		var data model.TokenDetails
		if err := json.Unmarshal([]byte(test_data.TokenDetails_test), &data); err != nil {
			return model.TokenDetails{}, err
		}
		return data, nil
	}

	return GetTokenDetails(mint)
}

func GetTokenDetails(mint string) (model.TokenDetails, error) {
	var result model.TokenDetails

	data, err := doGet("/token/"+mint, nil)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal token details err")
		return result, err
	}

	return result, nil
}

func GetTopHolders(mint, sortBy, sortDirection string, limit int) (model.TopHolders, error) {
	var result model.TopHolders

	query := url.Values{}
	query.Set("limit", cast.ToString(limit))
	query.Set("sortBy", sortBy)
	query.Set("sortDirection", sortDirection)

	data, err := doGet("/token/"+mint+"/top-holders", query)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal top holders err")
		return result, err
	}

	return result, nil
}

func GetHoldersTs(mint string, startTs, endTs int64) (model.HoldersTs, error) {
	var result model.HoldersTs

	data, err := doGet("/token/"+mint+"/holders-ts", rangeQuery(startTs, endTs))
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal holders series err")
		return result, err
	}

	return result, nil
}

func GetTransferVolume(mint string, startTs, endTs int64, interval string) (model.TransferVolume, error) {
	var result model.TransferVolume

	query := rangeQuery(startTs, endTs)
	query.Set("interval", interval)

	data, err := doGet("/token/"+mint+"/transfer-volume", query)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal transfer volume err")
		return result, err
	}

	return result, nil
}
