package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
	"github.com/vybenetwork/vybebot/bot"
	"github.com/vybenetwork/vybebot/config"
	_ "github.com/vybenetwork/vybebot/handler"
	"github.com/vybenetwork/vybebot/logger"
	"github.com/vybenetwork/vybebot/store"
	"github.com/vybenetwork/vybebot/util"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var _ = func() any {
	zerolog.TimeFieldFormat = time.DateTime
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if util.IsDebug() {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
	return nil
}()

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	store.InitRedis()

	b := bot.InitBot(ctx)
	go bot.StartBot(ctx, b)

	// announcement broadcasts ride a redis channel
	broadcastCh, err := store.SubChannel(config.YmlConfig.RedisPush.MessageCh)
	if err != nil {
		log.Error().Err(err).Send()
		return
	}
	go pusher(broadcastCh)

	log.Info().Msg("bot is up, Ctrl + c to stop")

	<-ctx.Done()
	log.Info().Msg("bye!")
}

func pusher(ch <-chan *redis.Message) {
	for msg := range ch {
		payload := []byte(msg.Payload)
		log.Debug().RawJSON("push", payload).Send()

		text := gjson.GetBytes(payload, "text").String()
		if text == "" {
			log.Error().Msg("broadcast without text field")
			continue
		}

		users, err := store.AllUsers()
		if err != nil {
			log.Error().Err(err).Msg("load broadcast audience failed")
			continue
		}

		for _, userID := range users {
			if _, err := bot.SendMessage(userID, text); err != nil {
				log.Error().Err(err).Int64("user_id", userID).Msg("broadcast send failed")
			}
		}

		log.Info().Func(logger.WithCategory(logger.CategoryPush)).
			Int("audience", len(users)).
			Msg("broadcast delivered")
	}
}
