package xrpl

import (
	"encoding/json"
	"fmt"

	"xrplScope/internal/model"
)

// envelope is the common frame of every rippled WebSocket response.
type envelope struct {
	ID           uint64          `json:"id"`
	Status       string          `json:"status"`
	Type         string          `json:"type"`
	Result       json.RawMessage `json:"result"`
	Error        string          `json:"error"`
	ErrorMessage string          `json:"error_message"`
}

// APIError is a rippled-reported request failure.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("rippled error %s", e.Code)
	}
	return fmt.Sprintf("rippled error %s: %s", e.Code, e.Message)
}

// AccountData is the subset of account_info the adapter consumes.
type AccountData struct {
	Account string `json:"Account"`
	Domain  string `json:"Domain"`
}

// BookCurrency identifies one side of an order book.
type BookCurrency struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer,omitempty"`
}

// Offer is one order-book entry. Amounts stay raw for the shared
// normalization path.
type Offer struct {
	Account   string          `json:"Account"`
	Sequence  uint32          `json:"Sequence"`
	TakerGets json.RawMessage `json:"TakerGets"`
	TakerPays json.RawMessage `json:"TakerPays"`
	Quality   string          `json:"quality,omitempty"`
}

type ledgerResult struct {
	LedgerIndex uint32 `json:"ledger_index"`
	Ledger      struct {
		CloseTime    int64                  `json:"close_time"`
		Transactions []model.RawTransaction `json:"transactions"`
	} `json:"ledger"`
}

type accountInfoResult struct {
	AccountData AccountData `json:"account_data"`
}

type gatewayBalancesResult struct {
	Obligations map[string]string `json:"obligations"`
}

type bookOffersResult struct {
	Offers []Offer `json:"offers"`
}
