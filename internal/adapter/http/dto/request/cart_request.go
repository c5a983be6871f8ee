package request

import "strings"

// CartAddRequest adds one unit of an item to the cart. Size applies to menu
// items only and may be empty (the item's first size variant is used).
type CartAddRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Size   string `json:"size"`
}

func (r CartAddRequest) ResolveItemID() string {
	return strings.TrimSpace(r.ItemID)
}

// CartAdjustRequest shifts the quantity of the line identified by
// (item_id, size) by delta; a line driven to zero or below disappears.
type CartAdjustRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Size   string `json:"size"`
	Delta  int    `json:"delta" binding:"required"`
}

// CartRemoveRequest deletes the line identified by (item_id, size).
type CartRemoveRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Size   string `json:"size"`
}

// DeliveryFeeRequest sets the delivery fee for the in-progress order.
// A pointer keeps zero (free delivery) distinguishable from absent.
type DeliveryFeeRequest struct {
	Fee *int64 `json:"fee" binding:"required"`
}
