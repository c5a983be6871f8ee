package entities

import (
	"fmt"
	"time"
)

// MonthlySalesBucket aggregates revenue for one calendar month.
//
// Food maps per-item revenue for lines sold from the menu catalog (key is the
// item name, or name+"-"+size for sized items); Drinks maps the same for all
// non-food lines. Delivery and Total accumulate over the orders in the bucket.
type MonthlySalesBucket struct {
	Food     map[string]int64
	Drinks   map[string]int64
	Delivery int64
	Total    int64
}

// SalesBucketKey formats the aggregation key for a placement time. The month
// is zero-indexed (January = 0), matching the history views this feeds.
func SalesBucketKey(t time.Time) string {
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month())-1)
}

// AggregateSales folds the full order list into per-month buckets. The fold
// is pure and commutative: permuting the input yields identical buckets, and
// re-running on the same input is idempotent.
func AggregateSales(orders []Order) map[string]MonthlySalesBucket {
	out := make(map[string]MonthlySalesBucket, len(orders))
	for _, o := range orders {
		key := SalesBucketKey(o.PlacedAt)
		b, ok := out[key]
		if !ok {
			b = MonthlySalesBucket{
				Food:   make(map[string]int64),
				Drinks: make(map[string]int64),
			}
		}
		for _, l := range o.Items {
			name := l.Name
			if l.SelectedSize != "" {
				name = l.Name + "-" + l.SelectedSize
			}
			if l.Catalog == CatalogMenu {
				b.Food[name] += l.LineTotal()
			} else {
				b.Drinks[name] += l.LineTotal()
			}
		}
		b.Delivery += o.DeliveryFee
		b.Total += o.Total
		out[key] = b
	}
	return out
}
