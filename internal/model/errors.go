package model

import "errors"

// Error taxonomy for the adapter. Per-transaction and per-item errors
// (ErrMalformedAmount, ErrDivisionByZero, ErrAssetNotResolvable,
// ErrPairNotFound, ErrMalformedIdentifier) degrade to a partial result;
// ErrLedgerFetch is fatal for the whole range request.
var (
	ErrMalformedAmount     = errors.New("malformed amount")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrLedgerFetch         = errors.New("ledger fetch failed")
	ErrAssetNotResolvable  = errors.New("asset not resolvable")
	ErrPairNotFound        = errors.New("pair not found")
	ErrMalformedIdentifier = errors.New("malformed identifier")
)
