package api

import "testing"

func TestGetTokenDetailsSwitchDebug(t *testing.T) {
	t.Setenv("DEBUG", "true")

	data, err := GetTokenDetailsSwitch("So11111111111111111111111111111111111111112")
	if err != nil {
		t.Fatalf("debug switch: %v", err)
	}
	if data.Symbol != "SOL" || data.Name != "Wrapped SOL" {
		t.Errorf("fixture decoded wrong: symbol %q, name %q", data.Symbol, data.Name)
	}
	if data.MintAddress != "So11111111111111111111111111111111111111112" {
		t.Errorf("mint = %q", data.MintAddress)
	}
	if !data.Verified {
		t.Error("fixture token should be verified")
	}
}
