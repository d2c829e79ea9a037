package model

import (
	"encoding/json"
	"testing"

	test_data "github.com/vybenetwork/vybebot/testData"
)

// The API serves numeric fields as numbers or numeric strings depending
// on the endpoint and row. The any-typed fields must preserve whichever
// shape arrived so the formatting layer can coerce it.

func TestTokenDetailsMixedNumerics(t *testing.T) {
	var d TokenDetails
	if err := json.Unmarshal([]byte(test_data.TokenDetails_test), &d); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	if p, ok := d.Price.(float64); !ok || p != 171.23456 {
		t.Errorf("price = %#v, want float64 171.23456", d.Price)
	}
	if s, ok := d.Price7d.(string); !ok || s != "154.3301" {
		t.Errorf("price7d = %#v, want string \"154.3301\"", d.Price7d)
	}
	if m, ok := d.MarketCap.(string); !ok || m != "80001234567.89" {
		t.Errorf("marketCap = %#v, want string", d.MarketCap)
	}
	if d.UpdateTime != 1704103200 {
		t.Errorf("updateTime = %d, want 1704103200", d.UpdateTime)
	}
	if !d.Verified || d.Symbol != "SOL" || d.Category != "Infrastructure" {
		t.Errorf("scalar fields decoded wrong: %+v", d)
	}
}

func TestTopHoldersMixedNumerics(t *testing.T) {
	var h TopHolders
	if err := json.Unmarshal([]byte(test_data.TopHolders_test), &h); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if len(h.Data) != 2 {
		t.Fatalf("rows = %d, want 2", len(h.Data))
	}

	if b, ok := h.Data[0].Balance.(string); !ok || b != "12345678.12345" {
		t.Errorf("row 0 balance = %#v, want string", h.Data[0].Balance)
	}
	if b, ok := h.Data[1].Balance.(float64); !ok || b != 4567890.5 {
		t.Errorf("row 1 balance = %#v, want float64", h.Data[1].Balance)
	}
	if p, ok := h.Data[0].PercentageOfSupplyHeld.(float64); !ok || p != 0.0523 {
		t.Errorf("row 0 supply share = %#v, want float64", h.Data[0].PercentageOfSupplyHeld)
	}
	if p, ok := h.Data[1].PercentageOfSupplyHeld.(string); !ok || p != "0.0191" {
		t.Errorf("row 1 supply share = %#v, want string", h.Data[1].PercentageOfSupplyHeld)
	}
	if h.Data[0].Rank != 1 || h.Data[1].Rank != 2 {
		t.Errorf("ranks decoded wrong: %d, %d", h.Data[0].Rank, h.Data[1].Rank)
	}
}
