package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/handler/callback"
	"github.com/vybenetwork/vybebot/handler/commands"
)

type (
	commandHandler = bot.HandlerFunc
	command        = string
)

const (
	start  command = "/start"
	menu   command = "/menu"
	help   command = "/help"
	alpha  command = "/alpha"
	cancel command = "/cancel"
)

// one row per slash command: menu description and handler together
var commandTable = []struct {
	Name    command
	Desc    string
	Handler commandHandler
}{
	{start, "Start the bot", commands.StartHandler},
	{menu, "Open the main menu", commands.StartHandler},
	{help, "How to use VybeBot", callback.HelpHandler},
	{alpha, "AlphaVybe charts and insights", callback.AlphaHandler},
	{cancel, "Cancel the current request", commands.CancelHandler},
}

var commandHandlerMap = func() map[command]commandHandler {
	m := make(map[command]commandHandler, len(commandTable))
	for _, c := range commandTable {
		m[c.Name] = c.Handler
		log.Info().Msgf("command %s registered", c.Name)
	}
	return m
}()

func CommandHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// deep link args ride after the command word
	name := strings.Split(update.Message.Text, " ")[0]
	if handler, exists := commandHandlerMap[name]; exists {
		handler(ctx, b, update)
	}
}

func SetBotCommand(ctx context.Context, b *bot.Bot) {
	cmds := make([]models.BotCommand, 0, len(commandTable))
	for _, c := range commandTable {
		cmds = append(cmds, models.BotCommand{
			Command:     c.Name,
			Description: c.Desc,
		})
	}

	ok, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: cmds,
	})
	if err != nil {
		log.Error().Err(err).Msg("bot set commands err")
	}
	if ok {
		log.Info().Msg("bot command all set!")
	}
}
