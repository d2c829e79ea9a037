package model

type TokenBalanceRow struct {
	Symbol           string `json:"symbol"`
	Name             string `json:"name"`
	MintAddress      string `json:"mintAddress"`
	PriceUsd1dChange any    `json:"priceUsd1dChange"`
	ValueUsd1dChange any    `json:"valueUsd1dChange"`
	Amount           any    `json:"amount"`
	ValueUsd         any    `json:"valueUsd"`
	Verified         bool   `json:"verified"`
}

type TokenBalance struct {
	OwnerAddress        string            `json:"ownerAddress"`
	TotalTokenValueUsd  any               `json:"totalTokenValueUsd"`
	StakedSolBalanceUsd any               `json:"stakedSolBalanceUsd"`
	TotalTokenCount     any               `json:"totalTokenCount"`
	Data                []TokenBalanceRow `json:"data"`
}

type BalanceTsPoint struct {
	BlockTime     int64 `json:"blockTime"`
	TokenValue    any   `json:"tokenValue"`
	StakeValue    any   `json:"stakeValue"`
	SystemValue   any   `json:"systemValue"`
	StakeValueSol any   `json:"stakeValueSol"`
}

type TokenBalanceTs struct {
	Data []BalanceTsPoint `json:"data"`
}

type PnlSide struct {
	VolumeUsd        any `json:"volumeUsd"`
	TransactionCount any `json:"transactionCount"`
}

type PnlTokenMetric struct {
	TokenSymbol      string  `json:"tokenSymbol"`
	RealizedPnlUsd   any     `json:"realizedPnlUsd"`
	UnrealizedPnlUsd any     `json:"unrealizedPnlUsd"`
	Buys             PnlSide `json:"buys"`
	Sells            PnlSide `json:"sells"`
}

type PnlSummary struct {
	RealizedPnlUsd   any `json:"realizedPnlUsd"`
	UnrealizedPnlUsd any `json:"unrealizedPnlUsd"`
	TradesVolumeUsd  any `json:"tradesVolumeUsd"`
	TradesCount      any `json:"tradesCount"`
	AverageTradeUsd  any `json:"averageTradeUsd"`
	// 0..1 fraction
	WinRate any `json:"winRate"`
}

type WalletPnl struct {
	Summary      PnlSummary       `json:"summary"`
	TokenMetrics []PnlTokenMetric `json:"tokenMetrics"`
}

// Empty reports whether the PnL endpoint had anything to say about the
// wallet for the chosen window.
func (w WalletPnl) Empty() bool {
	return w.Summary.RealizedPnlUsd == nil && w.Summary.TradesCount == nil && len(w.TokenMetrics) == 0
}
