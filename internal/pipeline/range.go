package pipeline

import "fmt"

// LedgerRange is an inclusive range of ledger indexes.
type LedgerRange struct {
	From uint32
	To   uint32
}

// NewLedgerRange validates an inclusive range.
func NewLedgerRange(from, to uint32) (LedgerRange, error) {
	if to < from {
		return LedgerRange{}, fmt.Errorf("to ledger must be >= from ledger")
	}
	return LedgerRange{From: from, To: to}, nil
}

// Count returns the number of ledgers in the range.
func (r LedgerRange) Count() uint64 {
	return uint64(r.To) - uint64(r.From) + 1
}
