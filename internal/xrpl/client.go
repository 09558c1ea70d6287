package xrpl

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"xrplScope/internal/model"
)

// Default client configuration.
const (
	DefaultHandshakeTimeout = 10 * time.Second
	DefaultCallTimeout      = 30 * time.Second
	DefaultDialRetries      = 3
	DefaultDialBackoff      = 500 * time.Millisecond
)

// Client is a request/response client for the rippled WebSocket API. One
// long-lived instance is shared across requests; calls are serialized over
// the single connection and the client redials after a transport failure.
type Client struct {
	endpoint string
	logger   *zap.Logger

	handshakeTimeout time.Duration
	callTimeout      time.Duration
	dialRetries      int
	dialBackoff      time.Duration

	mu        sync.Mutex
	conn      *websocket.Conn
	requestID atomic.Uint64
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCallTimeout bounds a single request/response round trip.
func WithCallTimeout(d time.Duration) Option {
	return func(c *Client) { c.callTimeout = d }
}

// WithDialRetries sets the number of redial attempts.
func WithDialRetries(n int) Option {
	return func(c *Client) { c.dialRetries = n }
}

// WithDialBackoff sets the initial redial backoff.
func WithDialBackoff(d time.Duration) Option {
	return func(c *Client) { c.dialBackoff = d }
}

// Dial connects to the node and returns a ready client.
func Dial(ctx context.Context, endpoint string, opts ...Option) (*Client, error) {
	c := &Client{
		endpoint:         endpoint,
		logger:           zap.NewNop(),
		handshakeTimeout: DefaultHandshakeTimeout,
		callTimeout:      DefaultCallTimeout,
		dialRetries:      DefaultDialRetries,
		dialBackoff:      DefaultDialBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.connectLocked(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Close tears down the connection.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

// connectLocked dials with bounded exponential backoff. Callers hold c.mu.
func (c *Client) connectLocked(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: c.handshakeTimeout}

	delay := c.dialBackoff
	var lastErr error
	for attempt := 0; attempt <= c.dialRetries; attempt++ {
		conn, _, err := dialer.DialContext(ctx, c.endpoint, nil)
		if err == nil {
			c.conn = conn
			return nil
		}
		lastErr = err
		c.logger.Warn("node dial failed", zap.String("endpoint", c.endpoint), zap.Int("attempt", attempt+1), zap.Error(err))

		if attempt == c.dialRetries {
			break
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
	return fmt.Errorf("dial node: %w", lastErr)
}

// call sends one command and waits for the matching response. Unsolicited
// stream messages arriving in between are discarded.
func (c *Client) call(ctx context.Context, command string, params map[string]interface{}, result interface{}) error {
	id := c.requestID.Add(1)
	req := make(map[string]interface{}, len(params)+2)
	for k, v := range params {
		req[k] = v
	}
	req["id"] = id
	req["command"] = command

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		if err := c.connectLocked(ctx); err != nil {
			return err
		}
	}

	deadline := time.Now().Add(c.callTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if err := c.conn.WriteJSON(req); err != nil {
		c.dropConnLocked()
		return fmt.Errorf("send %s: %w", command, err)
	}

	for {
		if err := c.conn.SetReadDeadline(deadline); err != nil {
			return fmt.Errorf("set read deadline: %w", err)
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.dropConnLocked()
			return fmt.Errorf("read %s response: %w", command, err)
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return fmt.Errorf("decode %s response: %w", command, err)
		}
		if env.Type != "response" || env.ID != id {
			continue
		}

		if env.Status != "success" {
			return &APIError{Code: env.Error, Message: env.ErrorMessage}
		}
		if result == nil {
			return nil
		}
		if err := json.Unmarshal(env.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", command, err)
		}
		return nil
	}
}

func (c *Client) dropConnLocked() {
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

// ValidatedLedger returns the index and close time (ledger-epoch seconds) of
// the latest validated ledger.
func (c *Client) ValidatedLedger(ctx context.Context) (uint32, int64, error) {
	var res ledgerResult
	err := c.call(ctx, "ledger", map[string]interface{}{
		"ledger_index": "validated",
	}, &res)
	if err != nil {
		return 0, 0, err
	}
	return res.LedgerIndex, res.Ledger.CloseTime, nil
}

// Ledger fetches one ledger with its transactions expanded.
func (c *Client) Ledger(ctx context.Context, index uint32) (model.LedgerSnapshot, error) {
	var res ledgerResult
	err := c.call(ctx, "ledger", map[string]interface{}{
		"ledger_index": index,
		"transactions": true,
		"expand":       true,
	}, &res)
	if err != nil {
		return model.LedgerSnapshot{}, err
	}
	return model.LedgerSnapshot{
		Index:        res.LedgerIndex,
		CloseTime:    res.Ledger.CloseTime,
		Transactions: res.Ledger.Transactions,
	}, nil
}

// AccountInfo fetches account settings for an issuer.
func (c *Client) AccountInfo(ctx context.Context, account string) (AccountData, error) {
	var res accountInfoResult
	err := c.call(ctx, "account_info", map[string]interface{}{
		"account":      account,
		"ledger_index": "validated",
	}, &res)
	if err != nil {
		return AccountData{}, err
	}
	return res.AccountData, nil
}

// GatewayBalances fetches the issuer's outstanding obligations by currency.
func (c *Client) GatewayBalances(ctx context.Context, account string) (map[string]string, error) {
	var res gatewayBalancesResult
	err := c.call(ctx, "gateway_balances", map[string]interface{}{
		"account":      account,
		"ledger_index": "validated",
	}, &res)
	if err != nil {
		return nil, err
	}
	return res.Obligations, nil
}

// BestOffer returns the top order-book entry for takerGets/takerPays, or nil
// when the book is empty.
func (c *Client) BestOffer(ctx context.Context, takerGets, takerPays BookCurrency) (*Offer, error) {
	var res bookOffersResult
	err := c.call(ctx, "book_offers", map[string]interface{}{
		"taker_gets":   takerGets,
		"taker_pays":   takerPays,
		"ledger_index": "validated",
		"limit":        1,
	}, &res)
	if err != nil {
		return nil, err
	}
	if len(res.Offers) == 0 {
		return nil, nil
	}
	offer := res.Offers[0]
	return &offer, nil
}
