package model

type TokenDetails struct {
	Symbol               string `json:"symbol"`
	Name                 string `json:"name"`
	MintAddress          string `json:"mintAddress"`
	Price                any    `json:"price"`
	Price1d              any    `json:"price1d"`
	Price7d              any    `json:"price7d"`
	Decimal              any    `json:"decimal"`
	Verified             bool   `json:"verified"`
	Category             string `json:"category"`
	Subcategory          string `json:"subcategory"`
	UpdateTime           int64  `json:"updateTime"`
	CurrentSupply        any    `json:"currentSupply"`
	MarketCap            any    `json:"marketCap"`
	TokenAmountVolume24h any    `json:"tokenAmountVolume24h"`
	UsdValueVolume24h    any    `json:"usdValueVolume24h"`
	LogoUrl              string `json:"logoUrl"`
}

type TopHolder struct {
	Rank         int    `json:"rank"`
	OwnerName    string `json:"ownerName"`
	OwnerAddress string `json:"ownerAddress"`
	Balance      any    `json:"balance"`
	ValueUsd     any    `json:"valueUsd"`
	// fraction of supply, 0..1
	PercentageOfSupplyHeld any    `json:"percentageOfSupplyHeld"`
	TokenSymbol            string `json:"tokenSymbol"`
}

type TopHolders struct {
	Data []TopHolder `json:"data"`
}

type HoldersTsPoint struct {
	HoldersTimestamp int64 `json:"holdersTimestamp"`
	NHolders         any   `json:"nHolders"`
}

type HoldersTs struct {
	Data []HoldersTsPoint `json:"data"`
}

type TransferVolumePoint struct {
	TimeBucketStart int64 `json:"timeBucketStart"`
	Volume          any   `json:"volume"`
}

type TransferVolume struct {
	Data []TransferVolumePoint `json:"data"`
}
