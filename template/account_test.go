package template

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vybenetwork/vybebot/model"
	test_data "github.com/vybenetwork/vybebot/testData"
)

func TestRanderWalletPnl(t *testing.T) {
	var data model.WalletPnl
	if err := json.Unmarshal([]byte(test_data.WalletPnl_test), &data); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if data.Empty() {
		t.Fatal("fixture should not read as empty")
	}

	out, err := RanderWalletPnl(data, "HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH", 30)
	if err != nil {
		t.Fatalf("RanderWalletPnl: %v", err)
	}

	for _, want := range []string{
		"PnL Summary (30d)",
		"<code>HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH</code>",
		"<b>Realized PnL:</b> $1234.56",
		"<b>Unrealized PnL:</b> $-210.44",
		"<b>Trade Volume:</b> $98765.43",
		"<b>Total Trades:</b> 87",
		"<b>Win Rate:</b> 63.21%",
		"Token Metrics",
		"<b>SOL</b>",
		"<b>JUP</b>",
		"Buys: $20123.45 | 31 txs",
		"Sells: $8456.77 | 14 txs",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pnl output missing %q\n%s", want, out)
		}
	}
}

func TestWalletPnlEmpty(t *testing.T) {
	var data model.WalletPnl
	if err := json.Unmarshal([]byte(test_data.WalletPnlEmpty_test), &data); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if !data.Empty() {
		t.Error("empty fixture should read as empty")
	}

	if (model.WalletPnl{}).Empty() != true {
		t.Error("zero value should read as empty")
	}
}

func TestRanderTokenBalance(t *testing.T) {
	var data model.TokenBalance
	if err := json.Unmarshal([]byte(test_data.TokenBalance_test), &data); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	out, err := RanderTokenBalance(data)
	if err != nil {
		t.Fatalf("RanderTokenBalance: %v", err)
	}

	for _, want := range []string{
		"Wallet Token Summary",
		"Total Token Value (USD): $4,321.09",
		"Staked SOL (USD): $1,500.55",
		"Token Count: 2",
		"🟢 <b>SOL</b>",
		"🔴 <b>USDC</b>",
		"<code>EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v</code>",
		"Value: $1,350.97",
		"Verified: ✅",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("token balance output missing %q\n%s", want, out)
		}
	}
}

func TestRanderPortfolioSummary(t *testing.T) {
	out, err := RanderPortfolioSummary("HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH", 4321.09, 534.21)
	if err != nil {
		t.Fatalf("RanderPortfolioSummary: %v", err)
	}

	for _, want := range []string{
		"Portfolio Summary",
		"<b>Token Value:</b> $4,321.09",
		"<b>NFT Value:</b> $534.21",
		"<b>Total Portfolio:</b> 💵 $4,855.30",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("portfolio summary output missing %q\n%s", want, out)
		}
	}
}
