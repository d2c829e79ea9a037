package entity

import "github.com/go-telegram/bot"

// BotConfig is the identity of a running bot, resolved from GetMe.
// StartedAt marks the last restart so buttons minted before it can be
// recognized as stale.
type BotConfig struct {
	BotName   string `json:"botName"`
	Id        int64  `json:"id"`
	StartedAt int64  `json:"startedAt"`
}

var MainBotConfig BotConfig

// BotMap lets shared paths look the instance up by id instead of
// holding their own reference.
var BotMap = make(map[int64]*bot.Bot)
