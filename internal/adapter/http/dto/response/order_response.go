package response

import (
	"time"

	"pizzamaster/internal/domain/entities"
)

type OrderResponse struct {
	ID          string             `json:"id"`
	Number      string             `json:"number"`
	Items       []CartLineResponse `json:"items"`
	Subtotal    int64              `json:"subtotal"`
	DeliveryFee int64              `json:"delivery_fee"`
	Total       int64              `json:"total"`
	PlacedAt    time.Time          `json:"placed_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]CartLineResponse, 0, len(o.Items))
	for _, l := range o.Items {
		items = append(items, FromCartLine(l))
	}
	return OrderResponse{
		ID:          o.ID,
		Number:      o.Number,
		Items:       items,
		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		Total:       o.Total,
		PlacedAt:    o.PlacedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
