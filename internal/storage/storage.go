package storage

import "xrplScope/internal/model"

// Storage defines a sink for swap events.
type Storage interface {
	PutEventBatch(events []model.SwapEvent) error
}
