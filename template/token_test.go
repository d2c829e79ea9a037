package template

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vybenetwork/vybebot/model"
	test_data "github.com/vybenetwork/vybebot/testData"
)

func TestRanderTokenDetails(t *testing.T) {
	var data model.TokenDetails
	if err := json.Unmarshal([]byte(test_data.TokenDetails_test), &data); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	out, err := RanderTokenDetails(data)
	if err != nil {
		t.Fatalf("RanderTokenDetails: %v", err)
	}

	for _, want := range []string{
		"Wrapped SOL",
		"<code>So11111111111111111111111111111111111111112</code>",
		"$171.2346",
		"(+1.38%)",
		"(+10.95%)",
		"<b>Decimals:</b> 9",
		"<b>Verified:</b> True",
		"Infrastructure",
		"2024-01-01 10:00:00",
		"$80.00B",
		"12.35M",
		"$2.11B",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("token details output missing %q\n%s", want, out)
		}
	}
}

func TestRanderTopHolders(t *testing.T) {
	var data model.TopHolders
	if err := json.Unmarshal([]byte(test_data.TopHolders_test), &data); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	out, err := RanderTopHolders(data, "valueUsd", "Desc", 2)
	if err != nil {
		t.Fatalf("RanderTopHolders: %v", err)
	}

	for _, want := range []string{
		"Top 2 Token Holders",
		"<b>valueUsd</b>",
		"<code>DESC</code>",
		"Binance Hot Wallet",
		"<code>5tzFkiKscXHK5ZXCGbXZxdw7gTjjD1mBwuoFbhUvuAi9</code>",
		"$2113456789.55",
		"5.23%",
		"1.91%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("top holders output missing %q\n%s", want, out)
		}
	}

	// blank owner names fall back
	if !strings.Contains(out, "N/A") {
		t.Errorf("expected N/A for the unnamed holder\n%s", out)
	}
}

func TestSolscanTokenLink(t *testing.T) {
	link := SolscanTokenLink("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	if !strings.Contains(link, `href="https://solscan.io/token/EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"`) {
		t.Errorf("link target wrong: %s", link)
	}
	if !strings.Contains(link, "EPjFWd...Dt1v") {
		t.Errorf("link label should shorten the mint: %s", link)
	}
}
