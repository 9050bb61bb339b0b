package testutil

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bimakw/holder-insight/internal/domain/entities"
	"github.com/bimakw/holder-insight/internal/domain/upstream"
)

// Common test addresses, all 44 characters
const (
	TestTokenAddress = "Hjw6bEcHtbHGpQr8onG3izfJY5DJiWdt7uk2BfdSpump"
	TestOtherMint    = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	WhaleAddress     = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	AliceAddress     = "A1icexxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx1"
	BobAddress       = "Bobxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx2"
)

// HolderAddress returns a deterministic 44-character wallet address for a
// holder index
func HolderAddress(i int) string {
	base := fmt.Sprintf("Ho1der%d", i)
	return base + strings.Repeat("x", 44-len(base))
}

// CreateTestToken creates test token metadata with default values
func CreateTestToken(opts ...TokenOption) entities.Token {
	t := entities.Token{
		Address:  TestTokenAddress,
		Name:     "Test Token",
		Symbol:   "TEST",
		Icon:     "https://example.com/icon.png",
		Price:    0.0042,
		Decimals: 6,
		Supply:   "999999999000000",
	}

	for _, opt := range opts {
		opt(&t)
	}

	return t
}

type TokenOption func(*entities.Token)

func TokenWithAddress(address string) TokenOption {
	return func(t *entities.Token) {
		t.Address = address
	}
}

func TokenWithSymbol(symbol string) TokenOption {
	return func(t *entities.Token) {
		t.Symbol = symbol
	}
}

func TokenWithPrice(price float64) TokenOption {
	return func(t *entities.Token) {
		t.Price = price
	}
}

// CreateTestBalanceChange creates a test balance-change record with default
// values
func CreateTestBalanceChange(opts ...BalanceChangeOption) entities.BalanceChange {
	c := entities.BalanceChange{
		TransID:    "5pXs7gJb3qWvVrTYhR6kQ2mDn8cF4eZaUwBxNyLt1Kj9",
		Fee:        json.Number("5000"),
		Amount:     json.Number("1000000"),
		Time:       "2024-01-15T10:30:00.000Z",
		ChangeType: entities.ChangeTypeInc,
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

type BalanceChangeOption func(*entities.BalanceChange)

func ChangeWithType(changeType string) BalanceChangeOption {
	return func(c *entities.BalanceChange) {
		c.ChangeType = changeType
	}
}

func ChangeWithTime(t string) BalanceChangeOption {
	return func(c *entities.BalanceChange) {
		c.Time = t
	}
}

func ChangeWithTransID(id string) BalanceChangeOption {
	return func(c *entities.BalanceChange) {
		c.TransID = id
	}
}

// CreateTestHolderRecords creates n holder listing rows in rank order
func CreateTestHolderRecords(n int) []upstream.HolderRecord {
	records := make([]upstream.HolderRecord, n)
	for i := 0; i < n; i++ {
		records[i] = upstream.HolderRecord{
			Address: HolderAddress(i + 1),
			Amount:  json.Number(fmt.Sprintf("%d", (n-i)*1000000)),
			Rank:    i + 1,
		}
	}
	return records
}

// Changes builds a transaction list with the given number of inbound and
// outbound records
func Changes(inbound, outbound int) []entities.BalanceChange {
	changes := make([]entities.BalanceChange, 0, inbound+outbound)
	for i := 0; i < inbound; i++ {
		changes = append(changes, CreateTestBalanceChange(ChangeWithType(entities.ChangeTypeInc)))
	}
	for i := 0; i < outbound; i++ {
		changes = append(changes, CreateTestBalanceChange(ChangeWithType(entities.ChangeTypeDec)))
	}
	return changes
}
