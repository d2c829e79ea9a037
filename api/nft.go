package api

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/model"
)

func GetCollectionOwners(collection string) (model.CollectionOwners, error) {
	var result model.CollectionOwners

	data, err := doGet("/nft/collection-owners/"+collection, nil)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal collection owners err")
		return result, err
	}

	return result, nil
}

func GetNftBalance(wallet string) (model.NftBalance, error) {
	var result model.NftBalance

	data, err := doGet("/account/nft-balance/"+wallet, nil)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal nft balance err")
		return result, err
	}

	return result, nil
}
