package entities

import (
	"encoding/json"
	"strconv"
	"time"
)

// Balance-change directions reported upstream.
const (
	ChangeTypeInc = "inc"
	ChangeTypeDec = "dec"
)

// Behavioral labels derived from a holder's balance-change history.
const (
	HolderTypeLongTerm = "Long-term holder"
	HolderTypeFlipper  = "Frequent flipper"
)

// BalanceChange is one upstream balance-change record projected down to the
// fields the analysis needs. All other upstream fields are dropped.
type BalanceChange struct {
	TransID    string      `json:"trans_id"`
	Fee        json.Number `json:"fee"`
	Amount     json.Number `json:"amount"`
	Time       string      `json:"time"`
	ChangeType string      `json:"change_type"`
}

// DisplayCount is a transaction count capped for display: values below 100
// render verbatim, anything at or above renders as the literal string
// "more than 100".
type DisplayCount int

const displayCountCap = 100

func (c DisplayCount) String() string {
	if c >= displayCountCap {
		return "more than 100"
	}
	return strconv.Itoa(int(c))
}

// MarshalJSON emits a number below the cap and a string at or above it.
func (c DisplayCount) MarshalJSON() ([]byte, error) {
	if c >= displayCountCap {
		return json.Marshal(c.String())
	}
	return json.Marshal(int(c))
}

// HolderDetails is the derived behavioral classification of a holder. It is
// computed locally and never stored upstream.
type HolderDetails struct {
	TransactionCount DisplayCount `json:"number_of_transactions"`
	InCount          DisplayCount `json:"number_of_in_transactions"`
	OutCount         DisplayCount `json:"number_of_out_transactions"`
	HolderType       string       `json:"type_of_holder"`
}

// Holder is the aggregate record built for one top-N holder during an
// analysis run. FirstActivityDate is nil when the wallet has no
// balance-change history for the analyzed token.
type Holder struct {
	WalletAddress     string          `json:"wallet_address"`
	TokenBalance      json.Number     `json:"token_balance"`
	Rank              int             `json:"rank"`
	FirstActivityDate *string         `json:"first_activity_date"`
	OtherTokens       []OtherToken    `json:"other_tokens"`
	HolderDetails     HolderDetails   `json:"holder_details"`
	Transactions      []BalanceChange `json:"transactions"`
}

// AnalysisResult is the top-level output of one analysis run: exactly top-N
// holders in upstream rank order, plus the analyzed token and the run time.
type AnalysisResult struct {
	Token    Token     `json:"token"`
	Analysis []Holder  `json:"analysis"`
	Date     time.Time `json:"date"`
}
