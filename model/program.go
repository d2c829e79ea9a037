package model

// ProgramDetails is /program/{address}. Numeric stats are declared any:
// the API serves them as numbers or numeric strings depending on the
// program, and the formatting layer coerces either.
type ProgramDetails struct {
	ProgramId          string   `json:"programId"`
	EntityName         string   `json:"entityName"`
	FriendlyName       string   `json:"friendlyName"`
	Name               string   `json:"name"`
	Dau                any      `json:"dau"`
	NewUsersChange1d   any      `json:"newUsersChange1d"`
	Transactions1d     any      `json:"transactions1d"`
	Labels             []string `json:"labels"`
	LogoUrl            string   `json:"logoUrl"`
	ProgramDescription string   `json:"programDescription"`
}

// DisplayName falls back through the naming fields the way chart titles
// want: friendly name, then name, then entity.
func (p ProgramDetails) DisplayName() string {
	if p.FriendlyName != "" {
		return p.FriendlyName
	}
	if p.Name != "" {
		return p.Name
	}
	if p.EntityName != "" {
		return p.EntityName
	}
	return p.ProgramId
}

type ActiveUser struct {
	Wallet       string `json:"wallet"`
	Transactions any    `json:"transactions"`
}

type ActiveUsers struct {
	Data []ActiveUser `json:"data"`
}

type ActiveUsersTsPoint struct {
	BlockTime int64 `json:"blockTime"`
	Dau       any   `json:"dau"`
}

type ActiveUsersTs struct {
	Data []ActiveUsersTsPoint `json:"data"`
}

type TxCountTsPoint struct {
	BlockTime         int64 `json:"blockTime"`
	TransactionsCount any   `json:"transactionsCount"`
}

type TransactionsCountTs struct {
	Data []TxCountTsPoint `json:"data"`
}

// TvlPoint carries an RFC3339 time, unlike every other series here.
type TvlPoint struct {
	Time string `json:"time"`
	Tvl  any    `json:"tvl"`
}

type ProgramTvl struct {
	Data []TvlPoint `json:"data"`
}
