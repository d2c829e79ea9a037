package model

// OhlcvPoint carries OHLCV values as the API serialises them, decimal
// strings, so candle output keeps full precision.
type OhlcvPoint struct {
	Time      int64  `json:"time"`
	Open      string `json:"open"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Close     string `json:"close"`
	Volume    string `json:"volume"`
	VolumeUsd string `json:"volumeUsd"`
	Count     any    `json:"count"`
}

type TokenOhlcv struct {
	Data []OhlcvPoint `json:"data"`
}
