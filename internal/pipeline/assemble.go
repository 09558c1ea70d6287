package pipeline

import (
	"xrplScope/internal/model"
)

// buildSwapEvent combines ledger metadata and classifier output into one
// SwapEvent. eventIndex is always 0: at most one event per transaction.
func buildSwapEvent(ledger model.LedgerSnapshot, txnIndex int, trade *Trade) (model.SwapEvent, error) {
	price, err := Price(trade.LegIn, trade.LegOut)
	if err != nil {
		return model.SwapEvent{}, err
	}

	return model.SwapEvent{
		BlockNumber:    ledger.Index,
		BlockTimestamp: model.RippleToUnix(ledger.CloseTime),
		EventType:      "swap",
		TxnID:          trade.TxnID,
		TxnIndex:       txnIndex,
		EventIndex:     0,
		Maker:          trade.Maker,
		PairID:         PairID(trade.LegIn, trade.LegOut),
		Asset0In:       trade.LegIn.Value.String(),
		Asset1Out:      trade.LegOut.Value.String(),
		PriceNative:    price.String(),
		Reserves:       model.ZeroReserves(),
	}, nil
}
