package services

import (
	"github.com/bimakw/holder-insight/internal/domain/entities"
)

// Outbound share at or above which a holder counts as a frequent flipper.
// Exactly 0.1 classifies as flipper: the long-term branch requires < 0.1.
const flipperOutboundRatio = 0.1

// ClassifyHolder derives behavioral details from a holder's transaction list.
// Pure function: counts inbound changes, derives outbound as the remainder
// and labels the holder by the outbound ratio.
func ClassifyHolder(transactions []entities.BalanceChange) entities.HolderDetails {
	total := len(transactions)
	inbound := 0
	for _, tx := range transactions {
		if tx.ChangeType == entities.ChangeTypeInc {
			inbound++
		}
	}
	outbound := total - inbound

	// total == 0 short-circuits to long-term and guards the division
	holderType := entities.HolderTypeFlipper
	if total == 0 || float64(outbound)/float64(total) < flipperOutboundRatio {
		holderType = entities.HolderTypeLongTerm
	}

	return entities.HolderDetails{
		TransactionCount: entities.DisplayCount(total),
		InCount:          entities.DisplayCount(inbound),
		OutCount:         entities.DisplayCount(outbound),
		HolderType:       holderType,
	}
}
