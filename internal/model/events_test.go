package model

import (
	"encoding/json"
	"testing"
)

func TestSwapEventJSONStringFields(t *testing.T) {
	event := SwapEvent{
		BlockNumber:    93000000,
		BlockTimestamp: 1724000000,
		EventType:      "swap",
		TxnID:          "D9C3A1FF0E0C6F0B6E8C5A4D3B2A1908F7E6D5C4B3A29181706F5E4D3C2B1A09",
		TxnIndex:       3,
		EventIndex:     0,
		Maker:          "rMaker11111111111111111111111111111",
		PairID:         "XRP_USD.rIssuer1111111111111111111111111111",
		Asset0In:       "1.5",
		Asset1Out:      "3",
		PriceNative:    "2",
		Reserves:       ZeroReserves(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, field := range []string{"asset0In", "asset1Out", "priceNative"} {
		if _, ok := decoded[field].(string); !ok {
			t.Fatalf("%s should be string", field)
		}
	}

	reserves, ok := decoded["reserves"].(map[string]interface{})
	if !ok {
		t.Fatalf("reserves should be an object")
	}
	if reserves["asset0"] != "0" || reserves["asset1"] != "0" {
		t.Fatalf("reserves should be the zero pair: %+v", reserves)
	}
}

func TestRippleToUnix(t *testing.T) {
	if got := RippleToUnix(0); got != 946684800 {
		t.Fatalf("epoch offset mismatch: %d", got)
	}
	if got := RippleToUnix(777000000); got != 777000000+946684800 {
		t.Fatalf("close time conversion mismatch: %d", got)
	}
}

func TestAssetID(t *testing.T) {
	native := AssetAmount{Currency: NativeCurrency}
	if got := native.AssetID(); got != "XRP" {
		t.Fatalf("native asset id mismatch: %s", got)
	}
	if !native.IsNative() {
		t.Fatalf("native amount should report IsNative")
	}

	issued := AssetAmount{Currency: "USD", Issuer: "rIssuer1111111111111111111111111111"}
	if got := issued.AssetID(); got != "USD.rIssuer1111111111111111111111111111" {
		t.Fatalf("issued asset id mismatch: %s", got)
	}
	if issued.IsNative() {
		t.Fatalf("issued amount should not report IsNative")
	}
}
