package model

import "encoding/json"

// RawTransaction is a read-only view of one transaction inside a fetched
// ledger. Only the fields the classifier consumes are decoded; amount fields
// stay raw because the wire shape differs between native and issued
// currencies.
type RawTransaction struct {
	TransactionType string          `json:"TransactionType"`
	Account         string          `json:"Account"`
	Hash            string          `json:"hash"`
	TakerGets       json.RawMessage `json:"TakerGets,omitempty"`
	TakerPays       json.RawMessage `json:"TakerPays,omitempty"`
	Amount          json.RawMessage `json:"Amount,omitempty"`
	DeliverMin      json.RawMessage `json:"DeliverMin,omitempty"`
	Meta            *TxMeta         `json:"metaData,omitempty"`
}

// TxMeta is the slice of transaction metadata the classifier consults.
type TxMeta struct {
	TransactionResult string `json:"TransactionResult"`
}

// LedgerSnapshot is one closed ledger: its index, close time in ledger-epoch
// seconds, and the ordered transaction set. Built once per fetch and
// discarded after its events are emitted.
type LedgerSnapshot struct {
	Index        uint32
	CloseTime    int64
	Transactions []RawTransaction
}
