package model

type CollectionOwner struct {
	Owner  string `json:"owner"`
	Amount any    `json:"amount"`
}

type CollectionOwners struct {
	Data []CollectionOwner `json:"data"`
}

type NftCollectionRow struct {
	Name              string `json:"name"`
	CollectionAddress string `json:"collectionAddress"`
	TotalItems        any    `json:"totalItems"`
	ValueSol          any    `json:"valueSol"`
	ValueUsd          any    `json:"valueUsd"`
	PriceSol          any    `json:"priceSol"`
	PriceUsd          any    `json:"priceUsd"`
}

type NftBalance struct {
	OwnerAddress            string             `json:"ownerAddress"`
	TotalSol                any                `json:"totalSol"`
	TotalUsd                any                `json:"totalUsd"`
	TotalNftCollectionCount any                `json:"totalNftCollectionCount"`
	Data                    []NftCollectionRow `json:"data"`
}
