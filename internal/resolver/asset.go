package resolver

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"xrplScope/internal/model"
	"xrplScope/internal/xrpl"
)

// nativeSupply is the fixed total supply of the native unit, in whole units.
const nativeSupply = "100000000000"

// AssetResolver answers single-asset queries: the native unit from a static
// descriptor, issued currencies from issuer account state.
type AssetResolver struct {
	node   NodeReader
	logger *zap.Logger
}

// NewAssetResolver builds an AssetResolver.
func NewAssetResolver(node NodeReader, logger *zap.Logger) *AssetResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetResolver{node: node, logger: logger}
}

// ParseAssetID splits "XRP" or "<currency>.<issuer>" into its parts.
func ParseAssetID(id string) (currency, issuer string, err error) {
	if id == model.NativeCurrency {
		return model.NativeCurrency, "", nil
	}
	currency, issuer, ok := strings.Cut(id, ".")
	if !ok || currency == "" || issuer == "" {
		return "", "", fmt.Errorf("%w: asset %q needs <currency>.<issuer>", model.ErrMalformedIdentifier, id)
	}
	return currency, issuer, nil
}

// Resolve builds the descriptor for one asset identifier.
func (r *AssetResolver) Resolve(ctx context.Context, id string) (model.AssetDescriptor, error) {
	if id == model.NativeCurrency {
		return model.AssetDescriptor{
			ID:                model.NativeCurrency,
			Name:              model.NativeCurrency,
			Symbol:            model.NativeCurrency,
			TotalSupply:       nativeSupply,
			CirculatingSupply: nativeSupply,
		}, nil
	}

	currency, issuer, err := ParseAssetID(id)
	if err != nil {
		return model.AssetDescriptor{}, fmt.Errorf("%w: %v", model.ErrAssetNotResolvable, err)
	}

	account, err := r.node.AccountInfo(ctx, issuer)
	if err != nil {
		return model.AssetDescriptor{}, fmt.Errorf("%w: issuer %s: %v", model.ErrAssetNotResolvable, issuer, err)
	}

	descriptor := model.AssetDescriptor{
		ID:     id,
		Name:   currency,
		Symbol: currency,
	}
	if account.Domain != "" {
		if domain, err := hex.DecodeString(account.Domain); err == nil {
			descriptor.Domain = string(domain)
		} else {
			r.logger.Warn("issuer domain is not valid hex", zap.String("issuer", issuer), zap.Error(err))
		}
	}

	// Supply is approximated as the issuer's outstanding obligations in the
	// queried currency.
	obligations, err := r.node.GatewayBalances(ctx, issuer)
	if err != nil {
		return model.AssetDescriptor{}, fmt.Errorf("%w: obligations of %s: %v", model.ErrAssetNotResolvable, issuer, err)
	}
	supply := obligations[currency]
	if supply == "" {
		supply = "0"
	}
	descriptor.TotalSupply = supply
	descriptor.CirculatingSupply = supply

	return descriptor, nil
}

// ResolveBatch resolves several assets, degrading per item: one asset's
// failure never blocks the others.
func (r *AssetResolver) ResolveBatch(ctx context.Context, ids []string) (map[string]model.AssetDescriptor, map[string]string) {
	assets := make(map[string]model.AssetDescriptor, len(ids))
	failures := make(map[string]string)
	for _, id := range ids {
		descriptor, err := r.Resolve(ctx, id)
		if err != nil {
			r.logger.Warn("asset resolution failed", zap.String("asset", id), zap.Error(err))
			failures[id] = err.Error()
			continue
		}
		assets[id] = descriptor
	}
	return assets, failures
}

// bookCurrency converts an asset identifier to an order-book side.
func bookCurrency(id string) (xrpl.BookCurrency, error) {
	currency, issuer, err := ParseAssetID(id)
	if err != nil {
		return xrpl.BookCurrency{}, err
	}
	return xrpl.BookCurrency{Currency: currency, Issuer: issuer}, nil
}
