package usecase

import (
	"context"
	"fmt"
	"strconv"

	"pizzamaster/internal/domain/entities"
	"pizzamaster/internal/usecase/interfaces"
)

// OrderSequencer allocates the sequential, zero-padded order numbers.
//
// The counter lives in memory and is mirrored to the counters table through
// ICounterRepository. Allocation policy: NextID is read at placement and the
// counter advances only after the order insert succeeded, so a failed commit
// never burns a number. Callers serialize access; the sequencer itself does
// not lock.
type OrderSequencer struct {
	counters interfaces.ICounterRepository
	next     int
}

func NewOrderSequencer(counters interfaces.ICounterRepository) *OrderSequencer {
	return &OrderSequencer{counters: counters, next: 1}
}

// Initialize loads the counter from the external store and reconciles it
// against the highest order number already placed. The stored value can lag
// behind the history after a failed Advance persist, so the effective counter
// is max(stored, highest+1); with no counter record and no orders it defaults
// to 1.
func (s *OrderSequencer) Initialize(ctx context.Context, orders []entities.Order) error {
	value, found, err := s.counters.Get(ctx)
	if err != nil {
		return fmt.Errorf("load order counter: %w", err)
	}

	highest := 0
	for _, o := range orders {
		n, err := strconv.Atoi(o.Number)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	s.next = highest + 1
	if found && value > s.next {
		s.next = value
	}
	return nil
}

// NextID formats the current counter value as a fixed-width zero-padded
// decimal. Values past 999 render at their natural width.
func (s *OrderSequencer) NextID() string {
	return formatOrderNumber(s.next)
}

// Current exposes the raw counter value.
func (s *OrderSequencer) Current() int { return s.next }

// Advance increments the counter and persists the new value before
// returning. On a persist failure the in-memory counter stays advanced, so
// this process never hands out the same number twice; the stale stored value
// is recovered at next startup from the order history.
func (s *OrderSequencer) Advance(ctx context.Context) error {
	s.next++
	if err := s.counters.Put(ctx, s.next); err != nil {
		return fmt.Errorf("persist order counter: %w", err)
	}
	return nil
}

// Reset rewinds the counter to 1 (daily reset).
func (s *OrderSequencer) Reset(ctx context.Context) error {
	if err := s.counters.Put(ctx, 1); err != nil {
		return fmt.Errorf("persist order counter: %w", err)
	}
	s.next = 1
	return nil
}

func formatOrderNumber(n int) string {
	return fmt.Sprintf("%03d", n)
}
