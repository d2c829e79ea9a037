package commands

import (
	"testing"

	"github.com/go-telegram/bot/models"
)

func TestMatchTokenDeeplink(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOk bool
	}{
		{"t_So11111111111111111111111111111111111111112", "So11111111111111111111111111111111111111112", true},
		{"t_abc", "abc", true},
		{"t_", "", false},
		{"w_abc", "", false},
		{"", "", false},
		{"start", "", false},
	}
	for _, tt := range tests {
		got, ok := MatchTokenDeeplink(tt.in)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("MatchTokenDeeplink(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestStartPayload(t *testing.T) {
	cmdEnt := []models.MessageEntity{{Type: models.MessageEntityTypeBotCommand, Length: 6}}

	tests := []struct {
		name   string
		update *models.Update
		want   string
		wantOk bool
	}{
		{"deep link", &models.Update{Message: &models.Message{Text: "/start t_abc", Entities: cmdEnt}}, "t_abc", true},
		{"bare start", &models.Update{Message: &models.Message{Text: "/start", Entities: cmdEnt}}, "", false},
		{"other command", &models.Update{Message: &models.Message{Text: "/help now", Entities: cmdEnt}}, "", false},
		{"plain text", &models.Update{Message: &models.Message{Text: "/start t_abc"}}, "", false},
		{"no message", &models.Update{}, "", false},
	}
	for _, tt := range tests {
		got, ok := startPayload(tt.update)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%s: startPayload = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestBuildNewUpdateForTokenAddress(t *testing.T) {
	from := &models.User{ID: 7, FirstName: "Ann"}
	orig := &models.Update{
		ID: 5,
		Message: &models.Message{
			ID:   9,
			Text: "/start t_whatever",
			From: from,
			Chat: models.Chat{ID: 7},
		},
	}

	got := BuildNewUpdateForTokenAddress("So11111111111111111111111111111111111111112", orig)
	if got.Message.Text != "So11111111111111111111111111111111111111112" {
		t.Errorf("text = %q", got.Message.Text)
	}
	if got.Message.From != from {
		t.Error("sender should carry over")
	}
	if got.Message.Chat.ID != 7 {
		t.Errorf("chat id = %d", got.Message.Chat.ID)
	}
	if got.ID != 5 || got.Message.ID != 9 {
		t.Errorf("ids = %d, %d", got.ID, got.Message.ID)
	}
	if got.Message.Date == 0 {
		t.Error("date should be stamped")
	}
}
