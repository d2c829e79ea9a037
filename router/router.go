package router

import (
	"context"
	"net/http"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/config"
)

// SetWebhook registers the hook with Telegram and serves it on the
// configured local address. Blocks until ctx is done.
func SetWebhook(ctx context.Context, b *bot.Bot) {
	b.SetWebhook(ctx, &bot.SetWebhookParams{
		DropPendingUpdates: true,
		URL:                config.YmlConfig.Env.TgHook,
		SecretToken:        config.YmlConfig.Env.TgHookToken,
	})

	go func() {
		addr := config.YmlConfig.Env.LocalHost
		log.Info().Str("addr", addr).Msg("webhook listening")
		if err := http.ListenAndServe(addr, webhookHandler(b)); err != nil {
			log.Error().Err(err).Msg("webhook server stopped")
		}
	}()

	b.StartWebhook(ctx)
}

// webhookHandler acks with 204 once the update is queued.
func webhookHandler(b *bot.Bot) http.HandlerFunc {
	inner := b.WebhookHandler()
	return func(w http.ResponseWriter, r *http.Request) {
		inner(w, r)
		w.WriteHeader(http.StatusNoContent)
	}
}
