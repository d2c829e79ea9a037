package util

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckSolanaAddress(t *testing.T) {
	valid := []string{
		"So11111111111111111111111111111111111111112",
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"11111111111111111111111111111111",
	}
	for _, addr := range valid {
		if err := CheckSolanaAddress(addr); err != nil {
			t.Errorf("CheckSolanaAddress(%q) = %v, want nil", addr, err)
		}
	}

	evm := []string{
		"0x6B175474E89094C44Da98b954EedeAC495271d0F",
		"6B175474E89094C44Da98b954EedeAC495271d0F",
	}
	for _, addr := range evm {
		if err := CheckSolanaAddress(addr); !errors.Is(err, ErrEvmAddress) {
			t.Errorf("CheckSolanaAddress(%q) = %v, want ErrEvmAddress", addr, err)
		}
	}

	invalid := []string{
		"",
		"abc",
		strings.Repeat("a", 47),
		"not an address at all!!",
		strings.Repeat("I", 33),
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1va",
	}
	for _, addr := range invalid {
		if err := CheckSolanaAddress(addr); !errors.Is(err, ErrNotAnAddress) {
			t.Errorf("CheckSolanaAddress(%q) = %v, want ErrNotAnAddress", addr, err)
		}
	}
}

func TestCheckRange(t *testing.T) {
	for _, r := range []string{"1h", "24h", "7d", "30d"} {
		if err := CheckRange(r); err != nil {
			t.Errorf("CheckRange(%q) = %v, want nil", r, err)
		}
	}
	for _, r := range []string{"", "24", "h", "7w", "d7", "24 h"} {
		if err := CheckRange(r); err == nil {
			t.Errorf("CheckRange(%q) = nil, want error", r)
		}
	}
}

func TestCheckResolution(t *testing.T) {
	for _, r := range []string{"1s", "30m", "1h", "1d", "2w", "1mo", "1y"} {
		if err := CheckResolution(r); err != nil {
			t.Errorf("CheckResolution(%q) = %v, want nil", r, err)
		}
	}
	for _, r := range []string{"", "mo", "h1", "1x", "1hh"} {
		if err := CheckResolution(r); err == nil {
			t.Errorf("CheckResolution(%q) = nil, want error", r)
		}
	}
}

func TestCheckTvlResolution(t *testing.T) {
	for _, r := range []string{"30s", "4h", "1d", "1w"} {
		if err := CheckTvlResolution(r); err != nil {
			t.Errorf("CheckTvlResolution(%q) = %v, want nil", r, err)
		}
	}
	for _, r := range []string{"1m", "1mo", "1y", "d"} {
		if err := CheckTvlResolution(r); err == nil {
			t.Errorf("CheckTvlResolution(%q) = nil, want error", r)
		}
	}
}

func TestCheckOhlcvResolution(t *testing.T) {
	for _, r := range []string{"1s", "1m", "15m", "4h", "1d", "1mo", "1y"} {
		if err := CheckOhlcvResolution(r); err != nil {
			t.Errorf("CheckOhlcvResolution(%q) = %v, want nil", r, err)
		}
	}
	// pattern-valid but not an offered candle size
	for _, r := range []string{"7h", "2d", "10m", ""} {
		if err := CheckOhlcvResolution(r); err == nil {
			t.Errorf("CheckOhlcvResolution(%q) = nil, want error", r)
		}
	}
}

func TestCheckDays(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"7", 7, false},
		{"30", 30, false},
		{"0", 0, true},
		{"31", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := CheckDays(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckDays(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("CheckDays(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCheckLimit(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"10", 10, false},
		{"1", 1, false},
		{"100", 100, false},
		{"500", 100, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"ten", 0, true},
	}

	for _, tt := range tests {
		got, err := CheckLimit(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckLimit(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("CheckLimit(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCheckSortField(t *testing.T) {
	for _, f := range TopHolderSortFields {
		if err := CheckSortField(f); err != nil {
			t.Errorf("CheckSortField(%q) = %v, want nil", f, err)
		}
	}
	for _, f := range []string{"", "Rank", "holders", "value_usd"} {
		if err := CheckSortField(f); err == nil {
			t.Errorf("CheckSortField(%q) = nil, want error", f)
		}
	}
}

func TestCheckSortDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"asc", "Asc", false},
		{"ASC", "Asc", false},
		{"desc", "Desc", false},
		{"Desc", "Desc", false},
		{"up", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := CheckSortDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckSortDirection(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("CheckSortDirection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCheckInterval(t *testing.T) {
	for _, iv := range []string{"hour", "day"} {
		if err := CheckInterval(iv); err != nil {
			t.Errorf("CheckInterval(%q) = %v, want nil", iv, err)
		}
	}
	for _, iv := range []string{"", "week", "Hour", "minute"} {
		if err := CheckInterval(iv); err == nil {
			t.Errorf("CheckInterval(%q) = nil, want error", iv)
		}
	}
}

func TestCheckDateRange(t *testing.T) {
	start, end, err := CheckDateRange("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("CheckDateRange valid window: %v", err)
	}
	if start != 1704067200 || end != 1706659200 {
		t.Errorf("CheckDateRange = (%d, %d), want (1704067200, 1706659200)", start, end)
	}

	if _, _, err := CheckDateRange("2024-01-01", "2024-01-01"); err != nil {
		t.Errorf("CheckDateRange same-day window: %v, want nil", err)
	}

	if _, _, err := CheckDateRange("2024-01-31", "2024-01-01"); err == nil {
		t.Error("CheckDateRange accepted a reversed window")
	}
	if _, _, err := CheckDateRange("not-a-date", "2024-01-01"); err == nil {
		t.Error("CheckDateRange accepted a bad start date")
	}
	if _, _, err := CheckDateRange("2024-01-01", "2024-99-01"); err == nil {
		t.Error("CheckDateRange accepted a bad end date")
	}
}
