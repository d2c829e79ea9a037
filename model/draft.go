package model

// QueryDraft accumulates parameters across the steps of a multi-message
// flow. One draft lives per user in the session cache and is discarded
// once the final request fires.
type QueryDraft struct {
	Address    string `json:"address"`
	Mint       string `json:"mint"`
	Resolution string `json:"resolution"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	StartTs    int64  `json:"startTs"`
	EndTs      int64  `json:"endTs"`
	Interval   string `json:"interval"`
	Range      string `json:"range"`
	SortField  string `json:"sortField"`
	SortDir    string `json:"sortDir"`
	Days       int    `json:"days"`
	Limit      int    `json:"limit"`
}
