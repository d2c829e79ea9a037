package template

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/vybenetwork/vybebot/model"
	test_data "github.com/vybenetwork/vybebot/testData"
)

func TestRanderTokenOhlcv(t *testing.T) {
	var data model.TokenOhlcv
	if err := json.Unmarshal([]byte(test_data.TokenOhlcv_test), &data); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	out, err := RanderTokenOhlcv(data, "1d", "2024-01-01", "2024-01-07")
	if err != nil {
		t.Fatalf("RanderTokenOhlcv: %v", err)
	}

	for _, want := range []string{
		"Token OHLCV Data</b> (1d candles)",
		"<b>Range:</b> 2024-01-01 → 2024-01-07",
		"<b>Time:</b> 2024-01-01 00:00:00",
		"Open: 101.52",
		"High: 109.90",
		"Low: 99.87",
		"Close: 108.11",
		"Volume: 2345678.12",
		"Volume (USD): 245678901.23",
		"Count: 128934",
		"<b>Time:</b> 2024-01-02 00:00:00",
		"Close: 110.77",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ohlcv output missing %q\n%s", want, out)
		}
	}
}

func TestRanderTokenOhlcvTruncates(t *testing.T) {
	var data model.TokenOhlcv
	for i := 1; i <= 12; i++ {
		data.Data = append(data.Data, model.OhlcvPoint{
			Time:  1704067200 + int64(i-1)*86400,
			Open:  fmt.Sprintf("open-%02d", i),
			Close: fmt.Sprintf("close-%02d", i),
			Count: i,
		})
	}

	out, err := RanderTokenOhlcv(data, "1d", "2024-01-01", "2024-01-12")
	if err != nil {
		t.Fatalf("RanderTokenOhlcv: %v", err)
	}

	if !strings.Contains(out, "close-10") {
		t.Errorf("tenth candle should be listed\n%s", out)
	}
	for _, extra := range []string{"close-11", "close-12"} {
		if strings.Contains(out, extra) {
			t.Errorf("candles beyond ten should be cut, found %q\n%s", extra, out)
		}
	}
}
