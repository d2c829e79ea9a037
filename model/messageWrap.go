package model

import (
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/vybenetwork/vybebot/store"
)

// menu buttons go stale after this long; the cache entry outlives the
// logical expiry so IsExpired can still see it.
const menuLifetime = 23 * time.Hour

type MessageWrap struct {
	Message    models.Message
	ExpireTime int64
}

// NewMessageWrap remembers the latest menu message for a user so stale
// menus can be cleaned up when a fresh one is sent.
func NewMessageWrap(userID int64, message models.Message) *MessageWrap {
	w := &MessageWrap{
		Message:    message,
		ExpireTime: time.Now().Add(menuLifetime).Unix(),
	}
	store.Set(userID, store.MenuSession, w, menuLifetime+2*time.Hour)
	return w
}

func (m *MessageWrap) IsExpired() bool {
	return time.Now().Unix() > m.ExpireTime
}
