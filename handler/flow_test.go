package handler

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/vybenetwork/vybebot/api"
	"github.com/vybenetwork/vybebot/model"
)

func TestApiErrorText(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", api.ErrNotFound, "Nothing found"},
		{"wrapped not found", fmt.Errorf("get token: %w", api.ErrNotFound), "Nothing found"},
		{"unauthorized", api.ErrUnauthorized, "rejected our credentials"},
		{"anything else", errors.New("boom"), "unavailable right now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apiErrorText(tt.err)
			if !strings.Contains(got, tt.want) {
				t.Errorf("apiErrorText(%v) = %q, want it to mention %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestRangeValue(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"24h", 24},
		{"7d", 7},
		{"12h", 12},
		{"1d", 1},
		{"30d", 30},
		{"d", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := rangeValue(tt.in); got != tt.want {
			t.Errorf("rangeValue(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFlowDraftRoundTrip(t *testing.T) {
	const userID int64 = 99911
	t.Cleanup(func() { finishFlow(userID) })

	d := flowDraft(userID)
	if d == nil {
		t.Fatal("flowDraft should never return nil")
	}
	if d.Mint != "" || d.Limit != 0 {
		t.Fatalf("fresh draft should be zero valued: %+v", d)
	}

	d.Mint = "So11111111111111111111111111111111111111112"
	d.Limit = 25
	saveDraft(userID, d)

	if got := flowDraft(userID); got != d {
		t.Error("saved draft should come back on the next lookup")
	}

	finishFlow(userID)
	if got := flowDraft(userID); got.Mint != "" {
		t.Error("finished flow should drop the draft")
	}
}

func TestTxSeries(t *testing.T) {
	points := []model.TxCountTsPoint{
		{BlockTime: 1704067200, TransactionsCount: 798112},
		{BlockTime: 1704153600, TransactionsCount: "812345"},
	}

	labels, values := txSeries(points, false)
	if len(labels) != 2 || len(values) != 2 {
		t.Fatalf("lengths = %d, %d", len(labels), len(values))
	}
	if labels[0] != "2024-01-01" || labels[1] != "2024-01-02" {
		t.Errorf("daily labels = %v", labels)
	}
	if values[0] != 798112 || values[1] != 812345 {
		t.Errorf("values = %v", values)
	}

	labels, _ = txSeries(points, true)
	if labels[0] != "2024-01-01 00:00" {
		t.Errorf("hourly label = %q", labels[0])
	}
}
