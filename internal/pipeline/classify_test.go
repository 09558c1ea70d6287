package pipeline

import (
	"encoding/json"
	"testing"

	"xrplScope/internal/model"
)

func offerCreateTx() model.RawTransaction {
	return model.RawTransaction{
		TransactionType: "OfferCreate",
		Account:         "rMaker",
		Hash:            "AA11",
		TakerGets:       json.RawMessage(`"1000000"`),
		TakerPays:       json.RawMessage(`{"currency":"USD","issuer":"rISSUER","value":"2"}`),
	}
}

func TestClassifyOfferCreate(t *testing.T) {
	trade, err := Classify(offerCreateTx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trade == nil {
		t.Fatalf("OfferCreate should classify as a trade")
	}
	if trade.LegIn.Currency != model.NativeCurrency || trade.LegIn.Value.String() != "1" {
		t.Fatalf("legIn mismatch: %+v", trade.LegIn)
	}
	if trade.LegOut.Currency != "USD" || trade.LegOut.Value.String() != "2" {
		t.Fatalf("legOut mismatch: %+v", trade.LegOut)
	}
	if trade.Maker != "rMaker" || trade.TxnID != "AA11" {
		t.Fatalf("identity mismatch: %+v", trade)
	}
}

func TestClassifyPaymentWithDeliverMin(t *testing.T) {
	tx := model.RawTransaction{
		TransactionType: "Payment",
		Account:         "rSender",
		Hash:            "BB22",
		Amount:          json.RawMessage(`{"currency":"EUR","issuer":"rGateway","value":"10"}`),
		DeliverMin:      json.RawMessage(`"9500000"`),
	}
	trade, err := Classify(tx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trade == nil {
		t.Fatalf("Payment with DeliverMin should classify as a trade")
	}
	if trade.LegIn.Currency != "EUR" {
		t.Fatalf("legIn should be the sent amount: %+v", trade.LegIn)
	}
	if trade.LegOut.Currency != model.NativeCurrency || trade.LegOut.Value.String() != "9.5" {
		t.Fatalf("legOut should be the delivery floor: %+v", trade.LegOut)
	}
}

func TestClassifyPaymentWithoutDeliverMin(t *testing.T) {
	tx := model.RawTransaction{
		TransactionType: "Payment",
		Account:         "rSender",
		Hash:            "CC33",
		Amount:          json.RawMessage(`"1000000"`),
	}
	trade, err := Classify(tx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trade != nil {
		t.Fatalf("Payment without DeliverMin should be skipped")
	}
}

func TestClassifyOtherTypes(t *testing.T) {
	for _, typ := range []string{"AccountSet", "TrustSet", "OfferCancel", "NFTokenMint"} {
		trade, err := Classify(model.RawTransaction{TransactionType: typ, Account: "rX", Hash: "DD44"})
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", typ, err)
		}
		if trade != nil {
			t.Fatalf("%s should not classify as a trade", typ)
		}
	}
}

func TestClassifyFailedTransactionExcluded(t *testing.T) {
	tx := offerCreateTx()
	tx.Meta = &model.TxMeta{TransactionResult: "tecUNFUNDED_OFFER"}
	trade, err := Classify(tx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trade != nil {
		t.Fatalf("failed transaction should be excluded")
	}

	tx.Meta = &model.TxMeta{TransactionResult: "tesSUCCESS"}
	trade, err = Classify(tx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trade == nil {
		t.Fatalf("successful transaction should classify")
	}
}

func TestClassifyMalformedLeg(t *testing.T) {
	tx := offerCreateTx()
	tx.TakerPays = json.RawMessage(`false`)
	if _, err := Classify(tx); err == nil {
		t.Fatalf("expected error for malformed leg")
	}
}
