package session

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// session keys
const (
	UserSessionState = "in_state"
	UserMenuStack    = "menu_stack"
)

// flow states, one per awaited input
const (
	AwaitCollectionAddr = "nft::collection_addr"
	AwaitNftWallet      = "nft::portfolio_wallet"

	AwaitTokenMint       = "token::info_mint"
	AwaitTopHoldersMint  = "topHolders::mint"
	AwaitTopHoldersSort  = "topHolders::sort"
	AwaitTopHoldersDir   = "topHolders::dir"
	AwaitTopHoldersLimit = "topHolders::limit"
	AwaitHoldersMint     = "holders::mint"
	AwaitHoldersStart    = "holders::start"
	AwaitHoldersEnd      = "holders::end"
	AwaitVolumeMint      = "volume::mint"
	AwaitVolumeStart     = "volume::start"
	AwaitVolumeEnd       = "volume::end"
	AwaitVolumeInterval  = "volume::interval"
	AwaitOhlcvMint       = "ohlcv::mint"
	AwaitOhlcvResolution = "ohlcv::resolution"
	AwaitOhlcvStart      = "ohlcv::start"
	AwaitOhlcvEnd        = "ohlcv::end"

	AwaitProgramAddr        = "program::details_addr"
	AwaitTopWalletsAddr     = "topWallets::addr"
	AwaitTopWalletsDays     = "topWallets::days"
	AwaitUsersChartAddr     = "usersChart::addr"
	AwaitUsersChartRange    = "usersChart::range"
	AwaitTxChartAddr        = "txChart::addr"
	AwaitTxChartRange       = "txChart::range"
	AwaitTvlChartAddr       = "tvlChart::addr"
	AwaitTvlChartResolution = "tvlChart::resolution"

	AwaitPnlWallet       = "pnl::wallet"
	AwaitPortfolioWallet = "portfolio::wallet"
	AwaitBalancesWallet  = "balances::wallet"
	AwaitBalancesDays    = "balances::days"
)

type SessionManager struct {
	sessions sync.Map
}

var (
	sessionManager *SessionManager
	once           sync.Once
)

func GetSessionManager() *SessionManager {
	once.Do(func() {
		sessionManager = &SessionManager{}
	})
	return sessionManager
}

func sessionKey(userID int64, key string) string {
	return fmt.Sprintf("%d::%s", userID, key)
}

func (sm *SessionManager) Set(userID int64, key string, value any) {
	log.Debug().Interface(key, value).Int64("userID", userID).Msg("session set")
	sm.sessions.Store(sessionKey(userID, key), value)
}

func (sm *SessionManager) Get(userID int64, key string) (any, bool) {
	v, ok := sm.sessions.Load(sessionKey(userID, key))
	if ok {
		log.Debug().Interface(key, v).Int64("userID", userID).Msg("session get")
	}
	return v, ok
}

func (sm *SessionManager) Delete(userID int64, key string) {
	log.Debug().Str("delete", key).Int64("userID", userID).Msg("session delete")
	sm.sessions.Delete(sessionKey(userID, key))
}

// State reports the flow state the user is in, if any.
func State(userID int64) (string, bool) {
	v, ok := GetSessionManager().Get(userID, UserSessionState)
	if !ok {
		return "", false
	}
	state, ok := v.(string)
	return state, ok
}

func SetState(userID int64, state string) {
	GetSessionManager().Set(userID, UserSessionState, state)
}

// ClearFlow drops any half-finished prompt sequence. Back and Main Menu
// both run through here so stale prompts never swallow the next input.
func ClearFlow(userID int64) {
	GetSessionManager().Delete(userID, UserSessionState)
}
