package request

import "strings"

// ItemEditRequest renames and reprices a catalog item. Flat-priced items use
// `price`; sized items use `size_prices` keyed by size name. Sizes absent
// from the mapping keep their current price.
type ItemEditRequest struct {
	Name       string           `json:"name" binding:"required"`
	Price      *int64           `json:"price"`
	SizePrices map[string]int64 `json:"size_prices"`
}

func (r ItemEditRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r ItemEditRequest) ResolvePrice() int64 {
	if r.Price == nil {
		return 0
	}
	return *r.Price
}
