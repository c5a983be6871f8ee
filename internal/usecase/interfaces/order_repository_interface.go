package interfaces

import (
	"context"

	"pizzamaster/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for placed orders.
//
// UpdateByNumber overwrites the items/subtotal/fee/total of the record
// carrying the given sequential number and returns the stored state; it
// returns a zero-value order when no record matches. DeleteAll is the daily
// history reset.
type IOrderRepository interface {
	Insert(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateByNumber(ctx context.Context, number string, rev entities.OrderRevision) (entities.Order, error)
	List(ctx context.Context, newestFirst bool) ([]entities.Order, error)
	DeleteAll(ctx context.Context) error
}
