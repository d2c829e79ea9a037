package util

import (
	"errors"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

var (
	addressPattern       = regexp.MustCompile(`^[a-zA-Z0-9]{32,46}$`)
	rangePattern         = regexp.MustCompile(`^\d+(h|d)$`)
	resolutionPattern    = regexp.MustCompile(`^\d+(s|m|h|d|w|mo|y)$`)
	tvlResolutionPattern = regexp.MustCompile(`^\d+(s|h|d|w)$`)
)

// OhlcvResolutions is the set the price endpoint accepts.
var OhlcvResolutions = []string{
	"1s", "1m", "3m", "5m", "15m", "30m",
	"1h", "2h", "3h", "4h", "1d", "1w", "1mo", "1y",
}

// TopHolderSortFields mirrors the sortable columns of the top-holders endpoint.
var TopHolderSortFields = []string{
	"rank", "ownerName", "ownerAddress", "valueUsd", "balance", "percentageOfSupplyHeld",
}

var (
	ErrNotAnAddress = errors.New("❌ That doesn't look like a Solana address. Please check it and try again.")
	ErrEvmAddress   = errors.New("❌ That looks like an EVM address. Vybe serves Solana, send a base58 address.")
)

// CheckSolanaAddress validates mint, program, collection and wallet input.
// The hex check runs first so pasted 0x addresses get a pointed hint rather
// than a generic failure.
func CheckSolanaAddress(address string) error {
	if common.IsHexAddress(address) {
		return ErrEvmAddress
	}
	if !addressPattern.MatchString(address) {
		return ErrNotAnAddress
	}
	if _, err := solana.PublicKeyFromBase58(address); err != nil {
		return ErrNotAnAddress
	}
	return nil
}

// CheckRange validates window strings like "24h" or "7d".
func CheckRange(r string) error {
	if !rangePattern.MatchString(r) {
		return errors.New("❌ Invalid range. Use a number followed by h or d, like 24h or 7d.")
	}
	return nil
}

// CheckResolution validates interval strings like "1h", "1d", "1mo".
func CheckResolution(res string) error {
	if !resolutionPattern.MatchString(res) {
		return errors.New("❌ Invalid resolution. Use a number followed by s, m, h, d, w, mo or y.")
	}
	return nil
}

// CheckTvlResolution validates the narrower set the TVL endpoint accepts.
func CheckTvlResolution(res string) error {
	if !tvlResolutionPattern.MatchString(res) {
		return errors.New("❌ Invalid resolution. Use a number followed by s, h, d or w, like 1d.")
	}
	return nil
}

// CheckOhlcvResolution validates against the fixed candle sizes.
func CheckOhlcvResolution(res string) error {
	if !lo.Contains(OhlcvResolutions, res) {
		return errors.New("❌ Invalid resolution. Pick one of: " + strings.Join(OhlcvResolutions, ", "))
	}
	return nil
}

// CheckDays parses a day count and keeps it in the 1..30 window the API allows.
func CheckDays(value string) (int, error) {
	days, err := cast.ToIntE(value)
	if err != nil || days < 1 || days > 30 {
		return 0, errors.New("❌ Invalid number of days. Send a number between 1 and 30.")
	}
	return days, nil
}

// CheckLimit parses a positive row limit, capped at 100.
func CheckLimit(value string) (int, error) {
	limit, err := cast.ToIntE(value)
	if err != nil || limit <= 0 {
		return 0, errors.New("❌ Invalid limit. Send a positive number.")
	}
	if limit > 100 {
		limit = 100
	}
	return limit, nil
}

// CheckSortField validates a top-holders sort column.
func CheckSortField(field string) error {
	if !lo.Contains(TopHolderSortFields, field) {
		return errors.New("❌ Invalid sort field. Pick one of: " + strings.Join(TopHolderSortFields, ", "))
	}
	return nil
}

// CheckSortDirection normalizes asc/desc to the capitalized form the API
// expects in its query parameter names.
func CheckSortDirection(dir string) (string, error) {
	switch strings.ToLower(dir) {
	case "asc":
		return "Asc", nil
	case "desc":
		return "Desc", nil
	}
	return "", errors.New("❌ Invalid order. Send asc or desc.")
}

// CheckInterval validates the transfer-volume bucket size.
func CheckInterval(interval string) error {
	if interval != "hour" && interval != "day" {
		return errors.New("❌ Invalid interval. Send hour or day.")
	}
	return nil
}

// CheckDateRange validates that both dates parse and start is not after end.
func CheckDateRange(start, end string) (int64, int64, error) {
	startTs, ok := DateToTimestamp(start)
	if !ok {
		return 0, 0, errors.New("❌ Invalid start date. Use YYYY-MM-DD.")
	}
	endTs, ok := DateToTimestamp(end)
	if !ok {
		return 0, 0, errors.New("❌ Invalid end date. Use YYYY-MM-DD.")
	}
	if startTs > endTs {
		return 0, 0, errors.New("❌ The start date is after the end date.")
	}
	return startTs, endTs, nil
}
