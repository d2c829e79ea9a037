package template

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/vybenetwork/vybebot/model"
	test_data "github.com/vybenetwork/vybebot/testData"
)

func TestRanderNftPortfolio(t *testing.T) {
	var data model.NftBalance
	if err := json.Unmarshal([]byte(test_data.NftBalance_test), &data); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	out, err := RanderNftPortfolio(data)
	if err != nil {
		t.Fatalf("RanderNftPortfolio: %v", err)
	}

	for _, want := range []string{
		"NFT Portfolio",
		"<b>Wallet:</b> HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH",
		"<b>Total SOL Value:</b> 3.12 ◎",
		"<b>Total USD Value:</b> $534.21",
		"<b>NFT Collections:</b> 2",
		"<b>Mad Lads</b>",
		"Collection: J1S9H3QjnRtBbbuD4HjPV6RpRhwuk4zKbxsnCHuTgh9w",
		"Value: 2.50 ◎ / $428.05",
		"<b>Tensorians</b>",
		"Price: 0.31 ◎ / $53.08",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("portfolio output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "No NFT collections found") {
		t.Error("non-empty portfolio should not show the empty notice")
	}
}

func TestRanderNftPortfolioEmpty(t *testing.T) {
	out, err := RanderNftPortfolio(model.NftBalance{})
	if err != nil {
		t.Fatalf("RanderNftPortfolio: %v", err)
	}
	if !strings.Contains(out, "⚠️ No NFT collections found.") {
		t.Errorf("empty portfolio should show the notice\n%s", out)
	}
	if !strings.Contains(out, "<b>Wallet:</b> N/A") {
		t.Errorf("missing owner should fall back to N/A\n%s", out)
	}
}

func TestRanderCollectionOwners(t *testing.T) {
	var data model.CollectionOwners
	if err := json.Unmarshal([]byte(test_data.CollectionOwners_test), &data); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	out, err := RanderCollectionOwners(data, "J1S9H3QjnRtBbbuD4HjPV6RpRhwuk4zKbxsnCHuTgh9w")
	if err != nil {
		t.Fatalf("RanderCollectionOwners: %v", err)
	}

	for _, want := range []string{
		"<b>Top Owners of:</b> J1S9H3...gh9w",
		"1️⃣",
		"2️⃣",
		"3️⃣",
		"<b>Owner:</b> 9WzDXw...AWWM",
		"<b>NFTs:</b> 42",
		"<b>NFTs:</b> 17",
		"<b>NFTs:</b> 11",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("owners output missing %q\n%s", want, out)
		}
	}
}

func TestRanderCollectionOwnersTruncates(t *testing.T) {
	var data model.CollectionOwners
	for i := 1; i <= 12; i++ {
		data.Data = append(data.Data, model.CollectionOwner{
			Owner:  fmt.Sprintf("Addr%02d%s", i, strings.Repeat("x", 40)),
			Amount: 100 + i,
		})
	}

	out, err := RanderCollectionOwners(data, "J1S9H3QjnRtBbbuD4HjPV6RpRhwuk4zKbxsnCHuTgh9w")
	if err != nil {
		t.Fatalf("RanderCollectionOwners: %v", err)
	}

	if !strings.Contains(out, "🔟") {
		t.Errorf("tenth owner should get the keycap emoji\n%s", out)
	}
	if !strings.Contains(out, "Addr10") {
		t.Errorf("tenth owner should be listed\n%s", out)
	}
	for _, extra := range []string{"Addr11", "Addr12", "11."} {
		if strings.Contains(out, extra) {
			t.Errorf("owners beyond ten should be cut, found %q\n%s", extra, out)
		}
	}
}
