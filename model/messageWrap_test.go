package model

import (
	"testing"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/vybenetwork/vybebot/store"
)

func TestMessageWrapExpiry(t *testing.T) {
	fresh := MessageWrap{ExpireTime: time.Now().Unix() + 60}
	if fresh.IsExpired() {
		t.Error("wrap expiring in a minute should not read expired")
	}

	stale := MessageWrap{ExpireTime: time.Now().Unix() - 1}
	if !stale.IsExpired() {
		t.Error("wrap with past expiry should read expired")
	}
}

func TestNewMessageWrapStores(t *testing.T) {
	const userID int64 = 424242
	t.Cleanup(func() { store.Delete(userID, store.MenuSession) })

	wrap := NewMessageWrap(userID, models.Message{ID: 77})
	if wrap.IsExpired() {
		t.Error("fresh wrap should not read expired")
	}

	got, ok := store.Get(userID, store.MenuSession)
	if !ok {
		t.Fatal("menu message should land in the session cache")
	}
	cached, ok := got.(*MessageWrap)
	if !ok {
		t.Fatalf("cached value has type %T", got)
	}
	if cached != wrap {
		t.Error("cache should hold the returned wrap")
	}
	if cached.Message.ID != 77 {
		t.Errorf("message id = %d, want 77", cached.Message.ID)
	}
}
