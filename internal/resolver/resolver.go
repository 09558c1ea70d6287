package resolver

import (
	"context"

	"xrplScope/internal/xrpl"
)

// NodeReader is the slice of the node client the resolvers consume.
type NodeReader interface {
	ValidatedLedger(ctx context.Context) (index uint32, closeTime int64, err error)
	AccountInfo(ctx context.Context, account string) (xrpl.AccountData, error)
	GatewayBalances(ctx context.Context, account string) (map[string]string, error)
	BestOffer(ctx context.Context, takerGets, takerPays xrpl.BookCurrency) (*xrpl.Offer, error)
}
