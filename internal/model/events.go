package model

// Reserves carries pooled-liquidity reserve amounts. The ledger's order-book
// model exposes no reserve state, so both sides are always "0".
type Reserves struct {
	Asset0 string `json:"asset0"`
	Asset1 string `json:"asset1"`
}

// SwapEvent is one normalized trade event. All amount fields are decimal
// strings so no precision is lost across the boundary.
type SwapEvent struct {
	BlockNumber    uint32   `json:"blockNumber"`
	BlockTimestamp int64    `json:"blockTimestamp"`
	EventType      string   `json:"eventType"`
	TxnID          string   `json:"txnId"`
	TxnIndex       int      `json:"txnIndex"`
	EventIndex     int      `json:"eventIndex"`
	Maker          string   `json:"maker"`
	PairID         string   `json:"pairId"`
	Asset0In       string   `json:"asset0In"`
	Asset1Out      string   `json:"asset1Out"`
	PriceNative    string   `json:"priceNative"`
	Reserves       Reserves `json:"reserves"`
}

// ZeroReserves is the reserve pair for every emitted event.
func ZeroReserves() Reserves {
	return Reserves{Asset0: "0", Asset1: "0"}
}

// LatestBlock describes the most recent validated ledger.
type LatestBlock struct {
	BlockNumber    uint32 `json:"blockNumber"`
	BlockTimestamp int64  `json:"blockTimestamp"`
}
