package resolver

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"xrplScope/internal/model"
)

// pairFeeBps is the fixed trading fee. The ledger's order books have no
// configurable-fee markets.
const pairFeeBps = 10

const dexKey = "xrpl"

// PairResolver answers single-pair queries from the best order-book offer.
type PairResolver struct {
	node   NodeReader
	logger *zap.Logger
}

// NewPairResolver builds a PairResolver.
func NewPairResolver(node NodeReader, logger *zap.Logger) *PairResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PairResolver{node: node, logger: logger}
}

// Resolve builds the descriptor for a "base_quote" pair identifier. The best
// offer's sequence stands in for the creation block; the validated head's
// close time for the creation timestamp.
func (r *PairResolver) Resolve(ctx context.Context, id string) (model.PairDescriptor, error) {
	baseID, quoteID, ok := strings.Cut(id, "_")
	if !ok || baseID == "" || quoteID == "" {
		return model.PairDescriptor{}, fmt.Errorf("%w: pair %q needs <base>_<quote>", model.ErrMalformedIdentifier, id)
	}

	base, err := bookCurrency(baseID)
	if err != nil {
		return model.PairDescriptor{}, fmt.Errorf("%w: base: %v", model.ErrMalformedIdentifier, err)
	}
	quote, err := bookCurrency(quoteID)
	if err != nil {
		return model.PairDescriptor{}, fmt.Errorf("%w: quote: %v", model.ErrMalformedIdentifier, err)
	}

	offer, err := r.node.BestOffer(ctx, base, quote)
	if err != nil {
		return model.PairDescriptor{}, fmt.Errorf("%w: book lookup: %v", model.ErrPairNotFound, err)
	}
	if offer == nil {
		return model.PairDescriptor{}, fmt.Errorf("%w: no offers for %s", model.ErrPairNotFound, id)
	}

	_, closeTime, err := r.node.ValidatedLedger(ctx)
	if err != nil {
		return model.PairDescriptor{}, fmt.Errorf("%w: ledger head: %v", model.ErrPairNotFound, err)
	}

	return model.PairDescriptor{
		ID:                   id,
		DexKey:               dexKey,
		Asset0ID:             baseID,
		Asset1ID:             quoteID,
		CreatedAtBlockNumber: offer.Sequence,
		CreatedAtTimestamp:   model.RippleToUnix(closeTime),
		FeeBps:               pairFeeBps,
	}, nil
}
