package entities

import "time"

// Order is a placed order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (uuid document key)
//   - GSI1 (number-index): number (the sequential display id, "001", "042")
//
// An order is immutable once placed except through the explicit edit path,
// which overwrites items/subtotal/fee/total in the same record. An edit never
// duplicates the order under a new number.
type Order struct {
	ID          string
	Number      string
	Items       []CartLine
	Subtotal    int64
	DeliveryFee int64
	Total       int64
	PlacedAt    time.Time
}

// OrderRevision carries the replacement state written by the edit path.
type OrderRevision struct {
	Items       []CartLine
	Subtotal    int64
	DeliveryFee int64
	Total       int64
}
