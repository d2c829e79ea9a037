package bot

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/vybenetwork/vybebot/config"
	"github.com/vybenetwork/vybebot/logger"
	"github.com/vybenetwork/vybebot/queue"
	"github.com/vybenetwork/vybebot/router"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/entity"
	"github.com/vybenetwork/vybebot/handler"
)

func InitBot(ctx context.Context) *bot.Bot {
	log.Info().Msg("initializing bot...")

	if config.YmlConfig.Env.BotApiKey == "" {
		log.Fatal().Msg("bot_api_key is empty, check prod.yml or VYBEBOT_APP_ENV")
	}

	b, err := bot.New(config.YmlConfig.Env.BotApiKey, initBotOptions()...)
	if err != nil {
		log.Fatal().Err(err).Msg("create bot failed")
	}

	operation := func() (*models.User, error) {
		m, err := b.GetMe(ctx)
		if err != nil {
			return nil, errors.New("get me failed")
		}
		logger.StdLogger().Info().Msg("GetMe ok")
		return m, nil
	}
	attemptCount := 0
	notifyFunc := func(err error, backoffDelay time.Duration) {
		attemptCount++
		logger.StdLogger().Error().Msgf("retry %d failed: %v. next retry in %v", attemptCount, err, backoffDelay)
	}
	back := backoff.NewConstantBackOff(500 * time.Millisecond)
	me, err := backoff.Retry(
		ctx,
		operation,
		backoff.WithMaxTries(50),
		backoff.WithBackOff(back),
		backoff.WithNotify(notifyFunc),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("telegram unreachable, giving up")
	}

	log.Debug().Int64("bot_id", me.ID).Str("bot", me.Username).Send()
	RegisterBot(entity.BotConfig{BotName: me.Username, Id: me.ID}, b)

	go queue.InitPushMessage(b)
	go queue.InitPushPhoto(b)

	return b
}

func StartBot(ctx context.Context, b *bot.Bot) {
	entity.MainBotConfig.StartedAt = time.Now().Unix()
	handler.SetBotCommand(ctx, b)

	botCtx, botCancel := context.WithCancel(ctx)
	defer botCancel()

	b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{
		DropPendingUpdates: true,
	})

	if config.YmlConfig.Env.WebHookOpen {
		go router.SetWebhook(botCtx, b)
		log.Info().Msg("starting with webhook")
	} else {
		go b.Start(botCtx)
		log.Info().Msg("starting with long poll")
	}

	<-botCtx.Done()
	log.Info().Msg("bot stopped")
}

func initBotOptions() []bot.Option {
	var allOptions []bot.Option

	chOpt := bot.WithUpdatesChannelCap(1024)
	workerOpt := bot.WithWorkers(5)

	mainBotOptions := handler.GetCallbackHandler()
	textHandlerOpt := bot.WithDefaultHandler(handler.TextHandler)
	mainBotOptions = append(mainBotOptions, textHandlerOpt)
	botTokenOptions := bot.WithWebhookSecretToken(config.YmlConfig.Env.TgHookToken)

	allOptions = append(allOptions, chOpt, workerOpt, botTokenOptions, bot.WithSkipGetMe())
	allOptions = append(allOptions, mainBotOptions...)

	return allOptions
}
