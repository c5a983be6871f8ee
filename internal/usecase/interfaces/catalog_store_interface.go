package interfaces

import "pizzamaster/internal/domain/entities"

// ICatalogStore is the read side of the in-memory catalog state consumed by
// the cart/order flow. Find searches all three catalogs by item id.
type ICatalogStore interface {
	Find(itemID string) (entities.CatalogItem, entities.CatalogName, bool)
}
