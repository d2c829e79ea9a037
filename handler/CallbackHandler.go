package handler

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/vybenetwork/vybebot/entity"
	"github.com/vybenetwork/vybebot/handler/callback"
	"github.com/vybenetwork/vybebot/handler/commands"
	"github.com/vybenetwork/vybebot/logger"
	"github.com/vybenetwork/vybebot/model"
	"github.com/vybenetwork/vybebot/session"
	"github.com/vybenetwork/vybebot/store"
	"github.com/vybenetwork/vybebot/util"
)

func DebugMiddlewares(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, bot *bot.Bot, update *models.Update) {
		log.Debug().
			Interface("new update", update).
			Send()
		next(ctx, bot, update)
	}
}

var limitCount = int64(75)

// Limit slows the bot down when the shared send counter shows a burst,
// instead of letting Telegram throttle us mid-report.
func Limit(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		count, err := store.BotMessageCount()
		if err != nil {
			next(ctx, b, update)
			return
		}

		if count >= limitCount {
			callback.Alert(ctx, b, update)
			time.Sleep(1 * time.Second)
		}

		next(ctx, b, update)
	}
}

func GetCallbackHandler() []bot.Option {
	botOptions := []bot.Option{
		bot.WithMiddlewares(Limit),
		// // debug update msg
		// bot.WithMiddlewares(DebugMiddlewares),
		// start=
		bot.WithMiddlewares(commands.StartWrapMiddlewares),

		// callbackQueryMiddlewares
		bot.WithMiddlewares(WrapHandlerCallback),

		// menu navigation
		bot.WithCallbackQueryDataHandler(entity.MAIN_MENU, bot.MatchTypeExact, callback.MainMenuHandler),
		bot.WithCallbackQueryDataHandler(entity.BACK, bot.MatchTypeExact, callback.BackHandler),
		bot.WithCallbackQueryDataHandler(entity.TOKEN_MENU, bot.MatchTypeExact, callback.TokenMenuHandler),
		bot.WithCallbackQueryDataHandler(entity.NFT_MENU, bot.MatchTypeExact, callback.NftMenuHandler),
		bot.WithCallbackQueryDataHandler(entity.PROGRAM_MENU, bot.MatchTypeExact, callback.ProgramMenuHandler),
		bot.WithCallbackQueryDataHandler(entity.WALLET_MENU, bot.MatchTypeExact, callback.WalletMenuHandler),

		// token reports
		bot.WithCallbackQueryDataHandler(entity.TOKEN_INFO, bot.MatchTypeExact, callback.TokenInfoHandler),
		bot.WithCallbackQueryDataHandler(entity.TOP_HOLDERS, bot.MatchTypeExact, callback.TopHoldersHandler),
		bot.WithCallbackQueryDataHandler(entity.HOLDERS_CHART, bot.MatchTypeExact, callback.HoldersChartHandler),
		bot.WithCallbackQueryDataHandler(entity.VOLUME_CHART, bot.MatchTypeExact, callback.VolumeChartHandler),
		bot.WithCallbackQueryDataHandler(entity.OHLCV, bot.MatchTypeExact, callback.OhlcvHandler),

		// program reports
		bot.WithCallbackQueryDataHandler(entity.PROGRAM_DETAILS, bot.MatchTypeExact, callback.ProgramDetailsHandler),
		bot.WithCallbackQueryDataHandler(entity.TOP_WALLETS, bot.MatchTypeExact, callback.TopWalletsHandler),
		bot.WithCallbackQueryDataHandler(entity.ACTIVE_USERS_CHART, bot.MatchTypeExact, callback.ActiveUsersChartHandler),
		bot.WithCallbackQueryDataHandler(entity.TX_CHART, bot.MatchTypeExact, callback.TxChartHandler),
		bot.WithCallbackQueryDataHandler(entity.TVL_CHART, bot.MatchTypeExact, callback.TvlChartHandler),

		// wallet reports
		bot.WithCallbackQueryDataHandler(entity.WALLET_PNL, bot.MatchTypeExact, callback.WalletPnlHandler),
		bot.WithCallbackQueryDataHandler(entity.PNL_DAYS_PREFIX, bot.MatchTypePrefix, PnlDaysHandler),
		bot.WithCallbackQueryDataHandler(entity.WALLET_PORTFOLIO, bot.MatchTypeExact, callback.WalletPortfolioHandler),
		bot.WithCallbackQueryDataHandler(entity.BALANCES_CHART, bot.MatchTypeExact, callback.BalancesChartHandler),

		// nft reports
		bot.WithCallbackQueryDataHandler(entity.COLLECTION_OWNERS, bot.MatchTypeExact, callback.CollectionOwnersHandler),
		bot.WithCallbackQueryDataHandler(entity.NFT_PORTFOLIO, bot.MatchTypeExact, callback.NftPortfolioHandler),

		// help
		bot.WithCallbackQueryDataHandler(entity.HELP, bot.MatchTypeExact, callback.HelpHandler),
		bot.WithCallbackQueryDataHandler(entity.ALPHA, bot.MatchTypeExact, callback.AlphaHandler),

		// recent address quick picks
		bot.WithCallbackQueryDataHandler(util.RecentCallbackPrefix, bot.MatchTypePrefix, RecentPickHandler),
	}

	return botOptions
}

// PnlDaysHandler runs the PnL report once the user picks a window. The
// wallet rides in the draft saved when the address came in.
func PnlDaysHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	userID := util.EffectId(update)

	days := cast.ToInt(strings.TrimPrefix(update.CallbackQuery.Data, entity.PNL_DAYS_PREFIX))
	if days < 1 || days > 30 {
		return
	}

	d := flowDraft(userID)
	if d.Address == "" {
		session.SetState(userID, session.AwaitPnlWallet)
		util.QuickMessage(ctx, b, userID, "📬 Send the <b>wallet address</b> to analyze its trading PnL.")
		return
	}

	finishFlow(userID)
	WalletPnlReport(ctx, b, userID, d.Address, days)
}

// RecentPickHandler replays a quick-pick address as if the user had
// typed it, so it feeds whatever prompt is waiting.
func RecentPickHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	address := strings.TrimPrefix(update.CallbackQuery.Data, util.RecentCallbackPrefix)
	if address == "" {
		return
	}

	newUpdate := buildTextUpdate(address, update)
	if newUpdate == nil {
		return
	}
	b.ProcessUpdate(ctx, newUpdate)
}

func buildTextUpdate(text string, u *models.Update) *models.Update {
	msg := &models.Message{
		Text: text,
		Date: int(time.Now().Unix()),
	}

	switch {
	case u.Message != nil:
		msg.From = u.Message.From
		msg.Chat = u.Message.Chat
		msg.ID = u.Message.ID
	case u.CallbackQuery != nil && u.CallbackQuery.Message.Message != nil:
		msg.From = &u.CallbackQuery.From
		msg.Chat = u.CallbackQuery.Message.Message.Chat
		msg.ID = u.CallbackQuery.Message.Message.ID
	default:
		return nil
	}

	return &models.Update{ID: u.ID, Message: msg}
}

func WrapHandlerCallback(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := util.EffectId(update)

		if update.CallbackQuery != nil {
			cb := update.CallbackQuery
			util.CallBackAnswer(ctx, b, cb)

			if parts := entity.SplitCallbackData(cb.Data); len(parts) == 2 {
				log.Debug().Func(logger.WithCategory(logger.CategoryFlow)).
					Str("action", parts[1]).Int64("user", chatID).Msg("callback")
			}

			if cb.Message.Message == nil {
				next(ctx, b, update)
				return
			}

			// buttons from before the last restart point at dead state
			startedAt := entity.MainBotConfig.StartedAt
			if startedAt > 0 && int64(cb.Message.Message.Date) < startedAt {
				log.Debug().Msg("old message ignored")
				commands.StartHandler(ctx, b, update)
				return
			}

			v, has := store.Get(chatID, store.MenuSession)
			if has {
				wrapMessage, ok := v.(*model.MessageWrap)
				if ok && wrapMessage.Message.ID == cb.Message.Message.ID {
					if wrapMessage.IsExpired() {
						log.Debug().Msg("CallbackQuery button expired")
						b.DeleteMessage(ctx, &bot.DeleteMessageParams{
							ChatID:    chatID,
							MessageID: wrapMessage.Message.ID,
						})
						commands.StartHandler(ctx, b, update)
						return
					}
				}
			}
		}

		next(ctx, b, update)
	}
}
