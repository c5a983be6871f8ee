package interfaces

import "context"

// ICounterRepository persists the single "next order number" scalar.
//
// Get reports found=false when the counter record has never been written;
// the sequencer then falls back to the highest observed order number.
type ICounterRepository interface {
	Get(ctx context.Context) (value int, found bool, err error)
	Put(ctx context.Context, value int) error
}
