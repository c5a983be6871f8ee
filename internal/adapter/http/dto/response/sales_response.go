package response

import "pizzamaster/internal/domain/entities"

type SalesBucketResponse struct {
	Food     map[string]int64 `json:"food"`
	Drinks   map[string]int64 `json:"drinks"`
	Delivery int64            `json:"delivery"`
	Total    int64            `json:"total"`
}

// FromMonthlySales maps the aggregation keyed by "{year}-{month}" (month
// zero-indexed) into the report payload.
func FromMonthlySales(buckets map[string]entities.MonthlySalesBucket) map[string]SalesBucketResponse {
	out := make(map[string]SalesBucketResponse, len(buckets))
	for key, b := range buckets {
		out[key] = SalesBucketResponse{
			Food:     b.Food,
			Drinks:   b.Drinks,
			Delivery: b.Delivery,
			Total:    b.Total,
		}
	}
	return out
}
