package callback

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/config"
	"github.com/vybenetwork/vybebot/template"
	"github.com/vybenetwork/vybebot/util"
)

func HelpHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	userID := util.EffectId(update)

	text, err := template.RanderHelp(config.YmlConfig.Vybe.AlphaUrl)
	if err != nil {
		log.Error().Err(err).Send()
		util.QuickMessage(ctx, b, userID, template.ErrRander.Error())
		return
	}

	util.QuickMessageWithButton(ctx, b, userID, text, util.BackToMainMenu())
}

func AlphaHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	userID := util.EffectId(update)

	text, err := template.RanderAlpha(config.YmlConfig.Vybe.AlphaUrl)
	if err != nil {
		log.Error().Err(err).Send()
		util.QuickMessage(ctx, b, userID, template.ErrRander.Error())
		return
	}

	util.QuickMessageWithKeyboard(ctx, b, userID, text, util.AlphaKeyboard())
}
