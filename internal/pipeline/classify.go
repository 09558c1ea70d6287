package pipeline

import (
	"fmt"

	"xrplScope/internal/model"
)

const resultSuccess = "tesSUCCESS"

// Trade is the classifier output: the given and received legs of a
// trade-bearing transaction plus its identity.
type Trade struct {
	LegIn  model.AssetAmount
	LegOut model.AssetAmount
	Maker  string
	TxnID  string
}

// Classify inspects one transaction and extracts its trade legs. It returns
// (nil, nil) for transactions that do not represent a trade. OfferCreate
// trades offer TakerGets for TakerPays; a Payment counts only when it
// carries a DeliverMin floor — without one the received amount is unknown.
// When metadata is attached, a non-success result disqualifies the
// transaction.
func Classify(tx model.RawTransaction) (*Trade, error) {
	if tx.Meta != nil && tx.Meta.TransactionResult != "" && tx.Meta.TransactionResult != resultSuccess {
		return nil, nil
	}

	switch tx.TransactionType {
	case "OfferCreate":
		legIn, err := NormalizeAmount(tx.TakerGets)
		if err != nil {
			return nil, fmt.Errorf("taker gets: %w", err)
		}
		legOut, err := NormalizeAmount(tx.TakerPays)
		if err != nil {
			return nil, fmt.Errorf("taker pays: %w", err)
		}
		return &Trade{LegIn: legIn, LegOut: legOut, Maker: tx.Account, TxnID: tx.Hash}, nil

	case "Payment":
		if len(tx.DeliverMin) == 0 {
			return nil, nil
		}
		legIn, err := NormalizeAmount(tx.Amount)
		if err != nil {
			return nil, fmt.Errorf("amount: %w", err)
		}
		legOut, err := NormalizeAmount(tx.DeliverMin)
		if err != nil {
			return nil, fmt.Errorf("deliver min: %w", err)
		}
		return &Trade{LegIn: legIn, LegOut: legOut, Maker: tx.Account, TxnID: tx.Hash}, nil

	default:
		return nil, nil
	}
}
