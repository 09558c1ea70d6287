package pipeline

import (
	"github.com/shopspring/decimal"

	"xrplScope/internal/model"
)

// Price computes the exchange rate legOut/legIn as an exact decimal
// quotient. A zero input leg is a per-transaction failure, not a scan abort.
func Price(legIn, legOut model.AssetAmount) (decimal.Decimal, error) {
	if legIn.Value.IsZero() {
		return decimal.Decimal{}, model.ErrDivisionByZero
	}
	return legOut.Value.Div(legIn.Value), nil
}
