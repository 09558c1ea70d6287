package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"xrplScope/internal/model"
)

// LedgerFetcher fetches one transaction-expanded ledger by index.
type LedgerFetcher interface {
	Ledger(ctx context.Context, index uint32) (model.LedgerSnapshot, error)
}

// Scanner drives the normalization pipeline across a ledger range.
type Scanner struct {
	fetcher LedgerFetcher
	logger  *zap.Logger
}

// NewScanner builds a Scanner with its dependencies.
func NewScanner(fetcher LedgerFetcher, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{fetcher: fetcher, logger: logger}
}

// ScanResult is the outcome of one range scan. Skipped counts transactions
// dropped by per-transaction normalization failures.
type ScanResult struct {
	Events  []model.SwapEvent
	Skipped int
}

// Scan produces the ordered swap events for all ledgers in r: ascending
// ledger index, then within-ledger transaction order. A fetch failure for
// any ledger fails the whole range with no partial results; a failure on a
// single transaction only skips that transaction.
func (s *Scanner) Scan(ctx context.Context, r LedgerRange) (ScanResult, error) {
	if s.fetcher == nil {
		return ScanResult{}, fmt.Errorf("ledger fetcher is nil")
	}

	events := make([]model.SwapEvent, 0)
	skipped := 0

	for index := r.From; ; index++ {
		select {
		case <-ctx.Done():
			return ScanResult{}, ctx.Err()
		default:
		}

		snapshot, err := s.fetcher.Ledger(ctx, index)
		if err != nil {
			return ScanResult{}, fmt.Errorf("%w: ledger %d: %v", model.ErrLedgerFetch, index, err)
		}

		for txnIndex, tx := range snapshot.Transactions {
			trade, err := Classify(tx)
			if err != nil {
				skipped++
				s.logger.Warn("skip transaction",
					zap.Uint32("ledger", index),
					zap.Int("txn_index", txnIndex),
					zap.String("txn_hash", tx.Hash),
					zap.Error(err))
				continue
			}
			if trade == nil {
				continue
			}

			event, err := buildSwapEvent(snapshot, txnIndex, trade)
			if err != nil {
				skipped++
				s.logger.Warn("skip transaction",
					zap.Uint32("ledger", index),
					zap.Int("txn_index", txnIndex),
					zap.String("txn_hash", tx.Hash),
					zap.Error(err))
				continue
			}
			events = append(events, event)
		}

		if index == r.To {
			break
		}
	}

	s.logger.Info("scan complete",
		zap.Uint32("from", r.From),
		zap.Uint32("to", r.To),
		zap.Int("events", len(events)),
		zap.Int("skipped", skipped))

	return ScanResult{Events: events, Skipped: skipped}, nil
}
