package response

import (
	"pizzamaster/internal/domain/entities"
	"pizzamaster/internal/usecase"
)

type CartLineResponse struct {
	ItemID       string `json:"item_id"`
	Name         string `json:"name"`
	Catalog      string `json:"catalog"`
	Category     string `json:"category,omitempty"`
	SelectedSize string `json:"selected_size,omitempty"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	LineTotal    int64  `json:"line_total"`
}

type CartResponse struct {
	Lines         []CartLineResponse `json:"lines"`
	Subtotal      int64              `json:"subtotal"`
	DeliveryFee   int64              `json:"delivery_fee"`
	Total         int64              `json:"total"`
	Editing       bool               `json:"editing"`
	EditingNumber string             `json:"editing_number,omitempty"`
}

func FromCartLine(l entities.CartLine) CartLineResponse {
	return CartLineResponse{
		ItemID:       l.ItemID,
		Name:         l.Name,
		Catalog:      string(l.Catalog),
		Category:     l.Category,
		SelectedSize: l.SelectedSize,
		UnitPrice:    l.UnitPrice,
		Quantity:     l.Quantity,
		LineTotal:    l.LineTotal(),
	}
}

func FromCartView(v usecase.CartView) CartResponse {
	lines := make([]CartLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, FromCartLine(l))
	}
	return CartResponse{
		Lines:         lines,
		Subtotal:      v.Subtotal,
		DeliveryFee:   v.DeliveryFee,
		Total:         v.Total,
		Editing:       v.Editing,
		EditingNumber: v.EditingNumber,
	}
}
