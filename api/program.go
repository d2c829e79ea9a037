package api

import (
	"encoding/json"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/vybenetwork/vybebot/model"
)

func GetProgramDetails(address string) (model.ProgramDetails, error) {
	var result model.ProgramDetails

	data, err := doGet("/program/"+address, nil)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal program details err")
		return result, err
	}

	return result, nil
}

// GetProgramName resolves a display name for chart titles. Falls back to
// the raw address when the program is unknown.
func GetProgramName(address string) string {
	details, err := GetProgramDetails(address)
	if err != nil {
		return address
	}
	return details.DisplayName()
}

func GetActiveUsers(address string, days, limit int) (model.ActiveUsers, error) {
	var result model.ActiveUsers

	query := url.Values{}
	query.Set("days", cast.ToString(days))
	query.Set("limit", cast.ToString(limit))

	data, err := doGet("/program/"+address+"/active-users", query)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal active users err")
		return result, err
	}

	return result, nil
}

func GetActiveUsersTs(address, timeRange string) (model.ActiveUsersTs, error) {
	var result model.ActiveUsersTs

	query := url.Values{}
	query.Set("range", timeRange)

	data, err := doGet("/program/"+address+"/active-users-ts", query)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal active users series err")
		return result, err
	}

	return result, nil
}

func GetTransactionsCountTs(address, timeRange string) (model.TransactionsCountTs, error) {
	var result model.TransactionsCountTs

	query := url.Values{}
	query.Set("range", timeRange)

	data, err := doGet("/program/"+address+"/transactions-count-ts", query)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal transactions series err")
		return result, err
	}

	return result, nil
}

func GetProgramTvl(address, resolution string) (model.ProgramTvl, error) {
	var result model.ProgramTvl

	query := url.Values{}
	query.Set("resolution", resolution)

	data, err := doGet("/program/"+address+"/tvl", query)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Error().Err(err).Msg("unmarshal tvl series err")
		return result, err
	}

	return result, nil
}
