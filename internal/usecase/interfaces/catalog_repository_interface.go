package interfaces

import (
	"context"

	"pizzamaster/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for the three item
// catalogs (menu, starters, drinks).
//
// Lookup methods return a zero-value item (empty ID) when nothing matches;
// update methods return the stored state after the write and a zero value
// when the target record does not exist.
type ICatalogRepository interface {
	ListItems(ctx context.Context, catalog entities.CatalogName) ([]entities.CatalogItem, error)
	GetItem(ctx context.Context, catalog entities.CatalogName, id string) (entities.CatalogItem, error)
	UpdateAvailability(ctx context.Context, catalog entities.CatalogName, id string, disabled bool) (entities.CatalogItem, error)
	UpdateDetails(ctx context.Context, catalog entities.CatalogName, item entities.CatalogItem) (entities.CatalogItem, error)
}
