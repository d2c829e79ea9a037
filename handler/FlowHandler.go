package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/vybenetwork/vybebot/api"
	"github.com/vybenetwork/vybebot/logger"
	"github.com/vybenetwork/vybebot/model"
	"github.com/vybenetwork/vybebot/session"
	"github.com/vybenetwork/vybebot/store"
	"github.com/vybenetwork/vybebot/util"
)

const (
	promptStartDate = "🗓 Send the start date (YYYY-MM-DD)."
	promptEndDate   = "🗓 Send the end date (YYYY-MM-DD)."
	promptBadDate   = "❌ Invalid date. Use YYYY-MM-DD."

	noDataText = "⚠️ No data available for that query."
)

func flowDraft(userID int64) *model.QueryDraft {
	if v, ok := store.Get(userID, store.FlowDraft); ok {
		if d, ok := v.(*model.QueryDraft); ok {
			return d
		}
	}
	return &model.QueryDraft{}
}

func saveDraft(userID int64, d *model.QueryDraft) {
	store.Set(userID, store.FlowDraft, d, 30*time.Minute)
}

func finishFlow(userID int64) {
	session.ClearFlow(userID)
	store.Delete(userID, store.FlowDraft)
}

func acceptAddress(ctx context.Context, b *bot.Bot, userID int64, text string) bool {
	if err := util.CheckSolanaAddress(text); err != nil {
		util.QuickMessage(ctx, b, userID, err.Error())
		return false
	}
	return true
}

func apiErrorText(err error) string {
	switch {
	case errors.Is(err, api.ErrNotFound):
		return "❌ Nothing found for that address. Double-check it and try again."
	case errors.Is(err, api.ErrUnauthorized):
		return "❌ The data service rejected our credentials. Try again later."
	default:
		return "❌ The data service is unavailable right now. Please try again."
	}
}

func afterReport(ctx context.Context, b *bot.Bot, userID int64, kb models.InlineKeyboardMarkup) {
	util.QuickMessageWithKeyboard(ctx, b, userID, "What would you like to check next?", kb)
}

// rangeValue extracts the count from a window like "24h" or "7d".
func rangeValue(r string) int {
	return cast.ToInt(strings.TrimRight(r, "hd"))
}

// FlowHandler advances the prompt sequence the user is in. It reports
// false when no flow is active so the caller can treat the message as
// free-standing input.
func FlowHandler(ctx context.Context, b *bot.Bot, update *models.Update) bool {
	userID := util.EffectId(update)
	state, ok := session.State(userID)
	if !ok {
		return false
	}

	text := strings.TrimSpace(update.Message.Text)
	d := flowDraft(userID)
	log.Debug().Func(logger.WithCategory(logger.CategoryFlow)).
		Str("state", state).Int64("user", userID).Msg("flow input")

	switch state {

	// token details
	case session.AwaitTokenMint:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		store.PushRecentLookup(userID, store.KindMint, text)
		finishFlow(userID)
		TokenDetailsReport(ctx, b, userID, text)

	// top holders
	case session.AwaitTopHoldersMint:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		d.Mint = text
		saveDraft(userID, d)
		store.PushRecentLookup(userID, store.KindMint, text)
		session.SetState(userID, session.AwaitTopHoldersLimit)
		util.QuickMessage(ctx, b, userID, "🔢 How many holders? Send a number from 1 to 100.")

	case session.AwaitTopHoldersLimit:
		limit, err := util.CheckLimit(text)
		if err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.Limit = limit
		saveDraft(userID, d)
		session.SetState(userID, session.AwaitTopHoldersSort)
		util.QuickMessage(ctx, b, userID, "🗂 Sort by which field? One of: "+strings.Join(util.TopHolderSortFields, ", "))

	case session.AwaitTopHoldersSort:
		if err := util.CheckSortField(text); err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.SortField = text
		saveDraft(userID, d)
		session.SetState(userID, session.AwaitTopHoldersDir)
		util.QuickMessage(ctx, b, userID, "↕️ Sort order? Send asc or desc.")

	case session.AwaitTopHoldersDir:
		dir, err := util.CheckSortDirection(text)
		if err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.SortDir = dir
		finishFlow(userID)
		TopHoldersReport(ctx, b, userID, d)

	// daily holders chart
	case session.AwaitHoldersMint:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		d.Mint = text
		saveDraft(userID, d)
		store.PushRecentLookup(userID, store.KindMint, text)
		session.SetState(userID, session.AwaitHoldersStart)
		util.QuickMessage(ctx, b, userID, promptStartDate)

	case session.AwaitHoldersStart:
		ts, ok := util.DateToTimestamp(text)
		if !ok {
			util.QuickMessage(ctx, b, userID, promptBadDate)
			return true
		}
		d.StartDate = text
		d.StartTs = ts
		saveDraft(userID, d)
		session.SetState(userID, session.AwaitHoldersEnd)
		util.QuickMessage(ctx, b, userID, promptEndDate)

	case session.AwaitHoldersEnd:
		startTs, endTs, err := util.CheckDateRange(d.StartDate, text)
		if err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.EndDate = text
		d.StartTs = startTs
		d.EndTs = endTs
		finishFlow(userID)
		HoldersChartReport(ctx, b, userID, d)

	// transfer volume
	case session.AwaitVolumeMint:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		d.Mint = text
		saveDraft(userID, d)
		store.PushRecentLookup(userID, store.KindMint, text)
		session.SetState(userID, session.AwaitVolumeStart)
		util.QuickMessage(ctx, b, userID, promptStartDate)

	case session.AwaitVolumeStart:
		ts, ok := util.DateToTimestamp(text)
		if !ok {
			util.QuickMessage(ctx, b, userID, promptBadDate)
			return true
		}
		d.StartDate = text
		d.StartTs = ts
		saveDraft(userID, d)
		session.SetState(userID, session.AwaitVolumeEnd)
		util.QuickMessage(ctx, b, userID, promptEndDate)

	case session.AwaitVolumeEnd:
		startTs, endTs, err := util.CheckDateRange(d.StartDate, text)
		if err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.EndDate = text
		d.StartTs = startTs
		d.EndTs = endTs
		saveDraft(userID, d)
		session.SetState(userID, session.AwaitVolumeInterval)
		util.QuickMessage(ctx, b, userID, "⏱ Bucket size? Send hour or day.")

	case session.AwaitVolumeInterval:
		interval := strings.ToLower(text)
		if err := util.CheckInterval(interval); err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.Interval = interval
		finishFlow(userID)
		TransferVolumeReport(ctx, b, userID, d)

	// ohlcv
	case session.AwaitOhlcvMint:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		d.Mint = text
		saveDraft(userID, d)
		store.PushRecentLookup(userID, store.KindMint, text)
		session.SetState(userID, session.AwaitOhlcvResolution)
		util.QuickMessage(ctx, b, userID, "🕯 Candle resolution? One of: "+strings.Join(util.OhlcvResolutions, ", "))

	case session.AwaitOhlcvResolution:
		if err := util.CheckOhlcvResolution(text); err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.Resolution = text
		saveDraft(userID, d)
		session.SetState(userID, session.AwaitOhlcvStart)
		util.QuickMessage(ctx, b, userID, promptStartDate)

	case session.AwaitOhlcvStart:
		ts, ok := util.DateToTimestamp(text)
		if !ok {
			util.QuickMessage(ctx, b, userID, promptBadDate)
			return true
		}
		d.StartDate = text
		d.StartTs = ts
		saveDraft(userID, d)
		session.SetState(userID, session.AwaitOhlcvEnd)
		util.QuickMessage(ctx, b, userID, promptEndDate)

	case session.AwaitOhlcvEnd:
		startTs, endTs, err := util.CheckDateRange(d.StartDate, text)
		if err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.EndDate = text
		d.StartTs = startTs
		d.EndTs = endTs
		finishFlow(userID)
		OhlcvReport(ctx, b, userID, d)

	// program details
	case session.AwaitProgramAddr:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		store.PushRecentLookup(userID, store.KindProgram, text)
		finishFlow(userID)
		ProgramDetailsReport(ctx, b, userID, text)

	// top active wallets
	case session.AwaitTopWalletsAddr:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		d.Address = text
		saveDraft(userID, d)
		store.PushRecentLookup(userID, store.KindProgram, text)
		session.SetState(userID, session.AwaitTopWalletsDays)
		util.QuickMessage(ctx, b, userID, "📆 How many days back? Send a number from 1 to 30.")

	case session.AwaitTopWalletsDays:
		days, err := util.CheckDays(text)
		if err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.Days = days
		finishFlow(userID)
		TopWalletsReport(ctx, b, userID, d)

	// active users chart
	case session.AwaitUsersChartAddr:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		d.Address = text
		saveDraft(userID, d)
		store.PushRecentLookup(userID, store.KindProgram, text)
		session.SetState(userID, session.AwaitUsersChartRange)
		util.QuickMessage(ctx, b, userID, "⏳ Time range? Like 12h or 7d.")

	case session.AwaitUsersChartRange:
		if err := util.CheckRange(text); err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.Range = text
		finishFlow(userID)
		ActiveUsersChartReport(ctx, b, userID, d)

	// transactions chart
	case session.AwaitTxChartAddr:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		d.Address = text
		saveDraft(userID, d)
		store.PushRecentLookup(userID, store.KindProgram, text)
		session.SetState(userID, session.AwaitTxChartRange)
		util.QuickMessage(ctx, b, userID, "⏳ Time range? Like 12h or 7d.")

	case session.AwaitTxChartRange:
		if err := util.CheckRange(text); err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.Range = text
		finishFlow(userID)
		TxChartReport(ctx, b, userID, d)

	// tvl chart
	case session.AwaitTvlChartAddr:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		d.Address = text
		saveDraft(userID, d)
		store.PushRecentLookup(userID, store.KindProgram, text)
		session.SetState(userID, session.AwaitTvlChartResolution)
		util.QuickMessage(ctx, b, userID, "⏱ Resolution? Like 1d (units: s, h, d or w).")

	case session.AwaitTvlChartResolution:
		if err := util.CheckTvlResolution(text); err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.Resolution = text
		finishFlow(userID)
		TvlChartReport(ctx, b, userID, d)

	// wallet pnl, the day window arrives as a button pick
	case session.AwaitPnlWallet:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		d.Address = text
		saveDraft(userID, d)
		store.PushRecentLookup(userID, store.KindWallet, text)
		session.ClearFlow(userID)
		util.QuickMessageWithKeyboard(ctx, b, userID,
			"📆 Over how many days?", util.PnlDaysKeyboard())

	// wallet portfolio
	case session.AwaitPortfolioWallet:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		store.PushRecentLookup(userID, store.KindWallet, text)
		finishFlow(userID)
		PortfolioReport(ctx, b, userID, text)

	// balances chart
	case session.AwaitBalancesWallet:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		d.Address = text
		saveDraft(userID, d)
		store.PushRecentLookup(userID, store.KindWallet, text)
		session.SetState(userID, session.AwaitBalancesDays)
		util.QuickMessage(ctx, b, userID, "📆 How many days of history? Send a number from 1 to 30.")

	case session.AwaitBalancesDays:
		days, err := util.CheckDays(text)
		if err != nil {
			util.QuickMessage(ctx, b, userID, err.Error())
			return true
		}
		d.Days = days
		finishFlow(userID)
		BalancesChartReport(ctx, b, userID, d)

	// nft
	case session.AwaitCollectionAddr:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		store.PushRecentLookup(userID, store.KindCollection, text)
		finishFlow(userID)
		CollectionOwnersReport(ctx, b, userID, text)

	case session.AwaitNftWallet:
		if !acceptAddress(ctx, b, userID, text) {
			return true
		}
		store.PushRecentLookup(userID, store.KindWallet, text)
		finishFlow(userID)
		NftPortfolioReport(ctx, b, userID, text)

	default:
		session.ClearFlow(userID)
		return false
	}

	return true
}
