package util

import (
	"testing"

	"github.com/vybenetwork/vybebot/entity"
)

func TestSolscanUrls(t *testing.T) {
	mint := "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	if got := SolscanTokenUrl(mint); got != "https://solscan.io/token/"+mint {
		t.Errorf("SolscanTokenUrl = %q", got)
	}
	if got := SolscanAccountUrl(mint); got != "https://solscan.io/account/"+mint {
		t.Errorf("SolscanAccountUrl = %q", got)
	}
}

func TestTokenDeepLink(t *testing.T) {
	saved := entity.MainBotConfig
	entity.MainBotConfig.BotName = "vybe_sample_bot"
	t.Cleanup(func() { entity.MainBotConfig = saved })

	got := TokenDeepLink("So11111111111111111111111111111111111111112")
	want := "https://t.me/vybe_sample_bot?start=t_So11111111111111111111111111111111111111112"
	if got != want {
		t.Errorf("TokenDeepLink = %q, want %q", got, want)
	}
}
