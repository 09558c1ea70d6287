package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"xrplScope/internal/model"
)

// dropsScale shifts an integer drop count to whole native units.
const dropsScale = -6

type issuedAmount struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Value    string `json:"value"`
}

// NormalizeAmount converts a raw ledger amount into an AssetAmount. A bare
// string or number is a native amount in drops; an object is an issued
// currency passed through with its exact decimal value.
func NormalizeAmount(raw json.RawMessage) (model.AssetAmount, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return model.AssetAmount{}, model.ErrMalformedAmount
	}

	switch raw[0] {
	case '{':
		var issued issuedAmount
		if err := json.Unmarshal(raw, &issued); err != nil {
			return model.AssetAmount{}, fmt.Errorf("%w: %v", model.ErrMalformedAmount, err)
		}
		if issued.Currency == "" || issued.Value == "" {
			return model.AssetAmount{}, fmt.Errorf("%w: issued amount missing currency or value", model.ErrMalformedAmount)
		}
		value, err := decimal.NewFromString(issued.Value)
		if err != nil {
			return model.AssetAmount{}, fmt.Errorf("%w: issued value %q", model.ErrMalformedAmount, issued.Value)
		}
		return model.AssetAmount{Currency: issued.Currency, Issuer: issued.Issuer, Value: value}, nil

	default:
		var drops string
		if err := json.Unmarshal(raw, &drops); err != nil {
			// Some producers emit drops as a bare JSON number.
			var n json.Number
			if err := json.Unmarshal(raw, &n); err != nil {
				return model.AssetAmount{}, fmt.Errorf("%w: %s", model.ErrMalformedAmount, raw)
			}
			drops = n.String()
		}
		value, err := decimal.NewFromString(drops)
		if err != nil {
			return model.AssetAmount{}, fmt.Errorf("%w: drops %q", model.ErrMalformedAmount, drops)
		}
		return model.AssetAmount{Currency: model.NativeCurrency, Value: value.Shift(dropsScale)}, nil
	}
}
