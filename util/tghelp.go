package util

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/config"
	"github.com/vybenetwork/vybebot/entity"
	"github.com/vybenetwork/vybebot/queue"
	"github.com/vybenetwork/vybebot/store"
)

// MessageChunkLimit keeps chunks under Telegram's 4096-char message cap.
const MessageChunkLimit = 4000

// RecentCallbackPrefix marks quick-pick buttons carrying a previously
// queried address as payload.
const RecentCallbackPrefix = "recent::"

func QuickMessage(ctx context.Context, b *bot.Bot, userID int64, text string) {
	store.BotMessageAdd()
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    userID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
		LinkPreviewOptions: &models.LinkPreviewOptions{
			IsDisabled: bot.True(),
		},
	})
}

func QuickMessageWithButton(ctx context.Context, b *bot.Bot, userID int64, text string, buttons ...models.InlineKeyboardButton) {
	QuickMessageWithKeyboard(ctx, b, userID, text, models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{buttons},
	})
}

func QuickMessageWithKeyboard(ctx context.Context, b *bot.Bot, userID int64, text string, kb models.InlineKeyboardMarkup) {
	if _, err := MenuMessage(ctx, b, userID, text, kb); err != nil && !bot.IsTooManyRequestsError(err) {
		log.Error().Err(err).Msg("send message err")
	}
}

// MenuMessage sends a keyboarded message and returns it, queueing a
// retry when Telegram throttles. Menu senders need the message back so
// stale menus can be cleaned up later.
func MenuMessage(ctx context.Context, b *bot.Bot, userID int64, text string, kb models.InlineKeyboardMarkup) (*models.Message, error) {
	params := &bot.SendMessageParams{
		ChatID:      userID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
		LinkPreviewOptions: &models.LinkPreviewOptions{
			IsDisabled: bot.True(),
		},
	}

	store.BotMessageAdd()
	message, err := b.SendMessage(ctx, params)
	if err != nil {
		if bot.IsTooManyRequestsError(err) {
			queue.RetryPushMessage(params)
		}
		return nil, err
	}
	return message, nil
}

// QuickPhoto uploads rendered chart bytes as a photo message.
func QuickPhoto(ctx context.Context, b *bot.Bot, userID int64, name string, png []byte, caption string) {
	params := &bot.SendPhotoParams{
		ChatID: userID,
		Photo: &models.InputFileUpload{
			Filename: name,
			Data:     bytes.NewReader(png),
		},
		Caption:   caption,
		ParseMode: models.ParseModeHTML,
	}

	store.BotMessageAdd()
	_, err := b.SendPhoto(ctx, params)
	if err != nil {
		if bot.IsTooManyRequestsError(err) {
			// the failed attempt drained the upload reader
			params.Photo = &models.InputFileUpload{
				Filename: name,
				Data:     bytes.NewReader(png),
			}
			queue.RetryPushPhoto(params)
			return
		}
		log.Error().Err(err).Msg("send photo err")
	}
}

// SplitMessage cuts text into chunks of at most limit bytes, breaking at
// the last newline inside the window so lines stay whole.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 {
		limit = MessageChunkLimit
	}

	var parts []string
	for len(text) > limit {
		cut := strings.LastIndex(text[:limit], "\n")
		if cut <= 0 {
			cut = limit
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
		}
		parts = append(parts, text[:cut])
		text = strings.TrimLeft(text[cut:], " \t\n")
	}
	if text != "" {
		parts = append(parts, text)
	}
	return parts
}

// SendLongMessage splits oversized report text across several messages.
func SendLongMessage(ctx context.Context, b *bot.Bot, userID int64, text string) {
	for _, part := range SplitMessage(text, MessageChunkLimit) {
		QuickMessage(ctx, b, userID, part)
	}
}

func NewCallbackDataButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

func UrlButton(text, url string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text: text,
		URL:  url,
	}
}

func BackToMainMenu() models.InlineKeyboardButton {
	return entity.GetCallbackButton(entity.MAIN_MENU)
}

func BackRow() []models.InlineKeyboardButton {
	return []models.InlineKeyboardButton{
		entity.GetCallbackButton(entity.BACK),
		entity.GetCallbackButton(entity.MAIN_MENU),
	}
}

func MainMenuKeyboard() models.InlineKeyboardMarkup {
	var kb models.InlineKeyboardMarkup

	kb.InlineKeyboard = [][]models.InlineKeyboardButton{
		{
			entity.GetCallbackButton(entity.TOKEN_MENU),
			entity.GetCallbackButton(entity.NFT_MENU),
		},
		{
			entity.GetCallbackButton(entity.PROGRAM_MENU),
			entity.GetCallbackButton(entity.WALLET_MENU),
		},
		{
			entity.GetCallbackButton(entity.HELP),
			entity.GetCallbackButton(entity.ALPHA),
		},
	}

	return kb
}

func TokenMenuKeyboard() models.InlineKeyboardMarkup {
	var kb models.InlineKeyboardMarkup

	kb.InlineKeyboard = [][]models.InlineKeyboardButton{
		{
			entity.GetCallbackButton(entity.TOKEN_INFO),
			entity.GetCallbackButton(entity.TOP_HOLDERS),
		},
		{
			entity.GetCallbackButton(entity.HOLDERS_CHART),
			entity.GetCallbackButton(entity.VOLUME_CHART),
		},
		{
			entity.GetCallbackButton(entity.OHLCV),
		},
		BackRow(),
	}

	return kb
}

func NftMenuKeyboard() models.InlineKeyboardMarkup {
	var kb models.InlineKeyboardMarkup

	kb.InlineKeyboard = [][]models.InlineKeyboardButton{
		{
			entity.GetCallbackButton(entity.COLLECTION_OWNERS),
			entity.GetCallbackButton(entity.NFT_PORTFOLIO),
		},
		BackRow(),
	}

	return kb
}

func ProgramMenuKeyboard() models.InlineKeyboardMarkup {
	var kb models.InlineKeyboardMarkup

	kb.InlineKeyboard = [][]models.InlineKeyboardButton{
		{
			entity.GetCallbackButton(entity.PROGRAM_DETAILS),
			entity.GetCallbackButton(entity.TOP_WALLETS),
		},
		{
			entity.GetCallbackButton(entity.ACTIVE_USERS_CHART),
			entity.GetCallbackButton(entity.TX_CHART),
		},
		{
			entity.GetCallbackButton(entity.TVL_CHART),
		},
		BackRow(),
	}

	return kb
}

func WalletMenuKeyboard() models.InlineKeyboardMarkup {
	var kb models.InlineKeyboardMarkup

	kb.InlineKeyboard = [][]models.InlineKeyboardButton{
		{
			entity.GetCallbackButton(entity.WALLET_PNL),
			entity.GetCallbackButton(entity.WALLET_PORTFOLIO),
		},
		{
			entity.GetCallbackButton(entity.BALANCES_CHART),
		},
		BackRow(),
	}

	return kb
}

// PnlDaysKeyboard offers the analysis windows the PnL endpoint serves.
func PnlDaysKeyboard() models.InlineKeyboardMarkup {
	var kb models.InlineKeyboardMarkup

	kb.InlineKeyboard = [][]models.InlineKeyboardButton{
		{
			NewCallbackDataButton("1 day", entity.PNL_DAYS_PREFIX+"1"),
			NewCallbackDataButton("7 days", entity.PNL_DAYS_PREFIX+"7"),
			NewCallbackDataButton("30 days", entity.PNL_DAYS_PREFIX+"30"),
		},
		BackRow(),
	}

	return kb
}

func AlphaKeyboard() models.InlineKeyboardMarkup {
	var kb models.InlineKeyboardMarkup

	kb.InlineKeyboard = [][]models.InlineKeyboardButton{
		{
			UrlButton("📈 AlphaVybe", config.YmlConfig.Vybe.AlphaUrl),
			UrlButton("📚 API Docs", config.YmlConfig.Vybe.DocsUrl),
		},
		{
			BackToMainMenu(),
		},
	}

	return kb
}

// RecentKeyboard offers the user's last looked-up addresses as one-tap
// buttons under an address prompt. Nil when there is no history yet.
func RecentKeyboard(userID int64, kind string) *models.InlineKeyboardMarkup {
	recents := store.RecentLookups(userID, kind)
	if len(recents) == 0 {
		return nil
	}

	var kb models.InlineKeyboardMarkup
	for _, addr := range recents {
		kb.InlineKeyboard = append(kb.InlineKeyboard, []models.InlineKeyboardButton{
			NewCallbackDataButton("🕘 "+ShortAddress(addr), RecentCallbackPrefix+addr),
		})
	}
	return &kb
}

func CallBackAnswer(ctx context.Context, b *bot.Bot, callbackQuery *models.CallbackQuery) {
	ok, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackQuery.ID,
	})
	if err != nil {
		log.Error().Err(err).Msg("callbackAnswer err")
		return
	}
	if !ok {
		log.Warn().Msg("callbackAnswer not ok")
	}

	log.Info().Msg("callbackAnswer")
}
