package services

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a request rejected before any network call
var ErrInvalidInput = errors.New("invalid input")

// Permitted top-N values. A closed set checked by membership.
var validTopN = map[int]bool{10: true, 20: true, 30: true, 40: true}

// Solana base58 address length convention. Length-only check: the address is
// not decoded.
const tokenAddressLength = 44

// ValidateTopN checks that topN is one of the permitted values
func ValidateTopN(topN int) error {
	if !validTopN[topN] {
		return fmt.Errorf("%w: invalid topN value %d, allowed values are 10, 20, 30, 40", ErrInvalidInput, topN)
	}
	return nil
}

// ValidateTokenAddress checks the token address shape
func ValidateTokenAddress(tokenAddress string) error {
	if tokenAddress == "" {
		return fmt.Errorf("%w: tokenAddress is required", ErrInvalidInput)
	}
	if len(tokenAddress) != tokenAddressLength {
		return fmt.Errorf("%w: tokenAddress must be %d characters long", ErrInvalidInput, tokenAddressLength)
	}
	return nil
}
