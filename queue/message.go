package queue

import (
	"context"
	"errors"
	"time"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/store"
)

var messageQueue = make(chan *bot.SendMessageParams, 1024)

var photoQueue = make(chan *bot.SendPhotoParams, 256)

// RetryPushMessage parks a message that hit the Telegram rate limit for
// a slower retry.
func RetryPushMessage(msg *bot.SendMessageParams) {
	messageQueue <- msg
}

func RetryPushPhoto(photo *bot.SendPhotoParams) {
	photoQueue <- photo
}

// waitOut sleeps out the server-advised interval on a flood error and
// reports whether it did.
func waitOut(err error) bool {
	var tooMany *bot.TooManyRequestsError
	if errors.As(err, &tooMany) {
		log.Warn().Int("retry_after", tooMany.RetryAfter).Msg("telegram throttling, backing off")
		time.Sleep(time.Duration(tooMany.RetryAfter) * time.Second)
		return true
	}
	return false
}

func InitPushMessage(b *bot.Bot) {
	for msg := range messageQueue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		store.BotMessageAdd()
		if _, err := b.SendMessage(ctx, msg); err != nil && !waitOut(err) {
			log.Error().Err(err).Msg("queued message send failed")
		}
		cancel()
	}
}

func InitPushPhoto(b *bot.Bot) {
	for photo := range photoQueue {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		store.BotMessageAdd()
		if _, err := b.SendPhoto(ctx, photo); err != nil && !waitOut(err) {
			log.Error().Err(err).Msg("queued photo send failed")
		}
		cancel()
	}
}
