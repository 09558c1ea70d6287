package model

import (
	"github.com/shopspring/decimal"
)

// NativeCurrency is the ledger's built-in currency code.
const NativeCurrency = "XRP"

// DropsPerXRP is the fixed subdivision of the native unit.
const DropsPerXRP = 1_000_000

// rippleEpochOffset converts the ledger epoch (2000-01-01) to the Unix epoch.
const rippleEpochOffset int64 = 946_684_800

// RippleToUnix converts a close time in ledger-epoch seconds to Unix seconds.
func RippleToUnix(closeTime int64) int64 {
	return closeTime + rippleEpochOffset
}

// AssetAmount is one leg of a trade: a currency code, its issuing account
// (empty for the native unit), and an exact decimal value. Values are never
// held as binary floats.
type AssetAmount struct {
	Currency string
	Issuer   string
	Value    decimal.Decimal
}

// IsNative reports whether the amount is denominated in the native unit.
func (a AssetAmount) IsNative() bool {
	return a.Issuer == ""
}

// AssetID returns the asset identifier: the bare currency code for the
// native unit, "<currency>.<issuer>" for an issued currency.
func (a AssetAmount) AssetID() string {
	if a.Issuer == "" {
		return a.Currency
	}
	return a.Currency + "." + a.Issuer
}
