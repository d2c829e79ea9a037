package store

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// Per-user scratch space. Flow drafts and menu bookkeeping live here,
// so a restart simply forgets in-progress input.
const (
	FlowDraft   = "flowDraft"
	MenuSession = "menuSession"
)

var CacheStore = cache.New(5*time.Minute, 30*time.Minute)

func cacheKey(userID int64, key string) string {
	return fmt.Sprintf("%d_%s", userID, key)
}

func Set(userID int64, key string, value any, duration time.Duration) {
	CacheStore.Set(cacheKey(userID, key), value, duration)
}

func Get(userID int64, key string) (any, bool) {
	return CacheStore.Get(cacheKey(userID, key))
}

func Delete(userID int64, key string) {
	CacheStore.Delete(cacheKey(userID, key))
}

// Response cache for upstream API bodies, keyed by full request URL.

func SetResponse(url string, body []byte, ttl time.Duration) {
	CacheStore.Set("resp_"+url, body, ttl)
}

func GetResponse(url string) ([]byte, bool) {
	v, ok := CacheStore.Get("resp_" + url)
	if !ok {
		return nil, false
	}
	body, ok := v.([]byte)
	return body, ok
}
