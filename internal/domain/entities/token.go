package entities

import "encoding/json"

// Token holds metadata for a Solana token as reported by the analytics API.
// Immutable once fetched.
type Token struct {
	Address  string  `json:"address"`
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	Icon     string  `json:"icon"`
	Price    float64 `json:"price"`
	Decimals int     `json:"decimals"`
	Supply   string  `json:"supply"`
}

// OtherToken is one non-zero token holding in a holder's wallet: the token's
// metadata plus the held amount. Amounts are kept as json.Number because raw
// on-chain amounts can exceed float64 precision.
type OtherToken struct {
	Token
	Amount        json.Number `json:"amount"`
	TokenDecimals int         `json:"token_decimals"`
}
