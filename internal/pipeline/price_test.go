package pipeline

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"xrplScope/internal/model"
)

func amt(currency, issuer, value string) model.AssetAmount {
	return model.AssetAmount{Currency: currency, Issuer: issuer, Value: decimal.RequireFromString(value)}
}

func TestPrice(t *testing.T) {
	price, err := Price(amt("XRP", "", "1"), amt("USD", "rISSUER", "2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price.String() != "2" {
		t.Fatalf("price mismatch: %s", price)
	}

	price, err = Price(amt("XRP", "", "4"), amt("USD", "rISSUER", "1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price.String() != "0.25" {
		t.Fatalf("price mismatch: %s", price)
	}
}

func TestPriceDivisionByZero(t *testing.T) {
	_, err := Price(amt("XRP", "", "0"), amt("USD", "rISSUER", "2"))
	if !errors.Is(err, model.ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestPairID(t *testing.T) {
	legIn := amt("XRP", "", "1")
	legOut := amt("USD", "rISSUER", "2")

	if got := PairID(legIn, legOut); got != "XRP_USD.rISSUER" {
		t.Fatalf("pair id mismatch: %s", got)
	}
	// Directional: the reverse trade yields the mirrored id.
	if got := PairID(legOut, legIn); got != "USD.rISSUER_XRP" {
		t.Fatalf("reverse pair id mismatch: %s", got)
	}
}
