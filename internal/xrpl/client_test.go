package xrpl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// newNodeStub runs a rippled stand-in that answers every request with the
// frames produced by handler.
func newNodeStub(t *testing.T, handler func(req map[string]interface{}) []map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer c.Close()

		for {
			_, data, err := c.ReadMessage()
			if err != nil {
				return
			}
			var req map[string]interface{}
			if err := json.Unmarshal(data, &req); err != nil {
				t.Errorf("decode request: %v", err)
				return
			}
			for _, frame := range handler(req) {
				if err := c.WriteJSON(frame); err != nil {
					return
				}
			}
		}
	}))
}

func respondWith(result map[string]interface{}) func(req map[string]interface{}) []map[string]interface{} {
	return func(req map[string]interface{}) []map[string]interface{} {
		return []map[string]interface{}{{
			"id":     req["id"],
			"status": "success",
			"type":   "response",
			"result": result,
		}}
	}
}

func wsURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

func TestClientLedger(t *testing.T) {
	server := newNodeStub(t, func(req map[string]interface{}) []map[string]interface{} {
		if req["command"] != "ledger" {
			t.Errorf("unexpected command: %v", req["command"])
		}
		return respondWith(map[string]interface{}{
			"ledger_index": 93000000,
			"ledger": map[string]interface{}{
				"close_time": 777000000,
				"transactions": []map[string]interface{}{
					{"TransactionType": "OfferCreate", "Account": "rMaker", "hash": "AA11"},
				},
			},
		})(req)
	})
	defer server.Close()

	client, err := Dial(context.Background(), wsURL(server.URL))
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	snapshot, err := client.Ledger(context.Background(), 93000000)
	if err != nil {
		t.Fatalf("Ledger: %v", err)
	}
	if snapshot.Index != 93000000 {
		t.Errorf("index mismatch: %d", snapshot.Index)
	}
	if snapshot.CloseTime != 777000000 {
		t.Errorf("close time mismatch: %d", snapshot.CloseTime)
	}
	if len(snapshot.Transactions) != 1 || snapshot.Transactions[0].TransactionType != "OfferCreate" {
		t.Errorf("transactions mismatch: %+v", snapshot.Transactions)
	}
}

func TestClientAPIError(t *testing.T) {
	server := newNodeStub(t, func(req map[string]interface{}) []map[string]interface{} {
		return []map[string]interface{}{{
			"id":            req["id"],
			"status":        "error",
			"type":          "response",
			"error":         "lgrNotFound",
			"error_message": "ledgerNotFound",
		}}
	})
	defer server.Close()

	client, err := Dial(context.Background(), wsURL(server.URL))
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	_, err = client.Ledger(context.Background(), 1)
	if err == nil {
		t.Fatalf("expected error for lgrNotFound")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Code != "lgrNotFound" {
		t.Errorf("code mismatch: %s", apiErr.Code)
	}
}

func TestClientSkipsStreamMessages(t *testing.T) {
	server := newNodeStub(t, func(req map[string]interface{}) []map[string]interface{} {
		// A subscription-style frame arrives before the response.
		return []map[string]interface{}{
			{"type": "ledgerClosed", "ledger_index": 41},
			{
				"id":     req["id"],
				"status": "success",
				"type":   "response",
				"result": map[string]interface{}{
					"ledger_index": 42,
					"ledger":       map[string]interface{}{"close_time": 1},
				},
			},
		}
	})
	defer server.Close()

	client, err := Dial(context.Background(), wsURL(server.URL))
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	index, closeTime, err := client.ValidatedLedger(context.Background())
	if err != nil {
		t.Fatalf("ValidatedLedger: %v", err)
	}
	if index != 42 || closeTime != 1 {
		t.Errorf("head mismatch: %d %d", index, closeTime)
	}
}

func TestClientBestOfferEmptyBook(t *testing.T) {
	server := newNodeStub(t, respondWith(map[string]interface{}{
		"offers": []interface{}{},
	}))
	defer server.Close()

	client, err := Dial(context.Background(), wsURL(server.URL))
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	offer, err := client.BestOffer(context.Background(),
		BookCurrency{Currency: "XRP"},
		BookCurrency{Currency: "USD", Issuer: "rIssuer"})
	if err != nil {
		t.Fatalf("BestOffer: %v", err)
	}
	if offer != nil {
		t.Errorf("expected nil offer for empty book, got %+v", offer)
	}
}
