package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"pizzamaster/internal/domain/entities"
	"pizzamaster/internal/usecase/interfaces"
)

var (
	ErrItemNotFound     = errors.New("item not found in any catalog")
	ErrUnknownCatalog   = errors.New("unknown catalog")
	ErrInvalidItemName  = errors.New("invalid item name")
	ErrInvalidItemPrice = errors.New("invalid item price")
)

// ICatalogUseCase exposes the catalog store: the three item collections
// loaded at startup plus the admin edit operations.
type ICatalogUseCase interface {
	Initialize(ctx context.Context) error
	Items(catalog entities.CatalogName) ([]entities.CatalogItem, error)
	Find(itemID string) (entities.CatalogItem, entities.CatalogName, bool)
	ToggleAvailability(ctx context.Context, itemID string) (entities.CatalogItem, error)
	RenameAndReprice(ctx context.Context, itemID, newName string, newPrice int64, sizePrices map[string]int64) (entities.CatalogItem, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository

	mu       sync.RWMutex
	catalogs map[entities.CatalogName][]entities.CatalogItem
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)
var _ interfaces.ICatalogStore = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{
		repo:     repo,
		catalogs: make(map[entities.CatalogName][]entities.CatalogItem),
	}
}

// Initialize fetches all three catalogs once at startup.
func (u *CatalogUseCase) Initialize(ctx context.Context) error {
	loaded := make(map[entities.CatalogName][]entities.CatalogItem, 3)
	for _, name := range entities.Catalogs() {
		items, err := u.repo.ListItems(ctx, name)
		if err != nil {
			return fmt.Errorf("load catalog %s: %w", name, err)
		}
		loaded[name] = items
	}

	u.mu.Lock()
	u.catalogs = loaded
	u.mu.Unlock()

	log.Printf("[catalog][usecase] loaded menu=%d starters=%d drinks=%d",
		len(loaded[entities.CatalogMenu]), len(loaded[entities.CatalogStarters]), len(loaded[entities.CatalogDrinks]))
	return nil
}

func (u *CatalogUseCase) Items(catalog entities.CatalogName) ([]entities.CatalogItem, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	items, ok := u.catalogs[catalog]
	if !ok {
		return nil, ErrUnknownCatalog
	}
	out := make([]entities.CatalogItem, len(items))
	copy(out, items)
	return out, nil
}

// Find searches every catalog for the item id.
func (u *CatalogUseCase) Find(itemID string) (entities.CatalogItem, entities.CatalogName, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.findLocked(itemID)
}

func (u *CatalogUseCase) findLocked(itemID string) (entities.CatalogItem, entities.CatalogName, bool) {
	for _, name := range entities.Catalogs() {
		for _, it := range u.catalogs[name] {
			if it.ID == itemID {
				return it, name, true
			}
		}
	}
	return entities.CatalogItem{}, "", false
}

// ToggleAvailability flips the disabled flag of exactly one item across
// whichever catalog contains it. The flip is based on a consistent read of
// the stored item, and in-memory state changes only after the external write
// succeeded.
func (u *CatalogUseCase) ToggleAvailability(ctx context.Context, itemID string) (entities.CatalogItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.CatalogItem{}, ErrItemNotFound
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	_, catalog, ok := u.findLocked(itemID)
	if !ok {
		return entities.CatalogItem{}, ErrItemNotFound
	}

	current, err := u.repo.GetItem(ctx, catalog, itemID)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if current.ID == "" {
		return entities.CatalogItem{}, ErrItemNotFound
	}

	updated, err := u.repo.UpdateAvailability(ctx, catalog, itemID, !current.Disabled)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if updated.ID == "" {
		// Present in memory but gone externally; treat as not found and leave
		// the local state untouched.
		return entities.CatalogItem{}, ErrItemNotFound
	}

	u.storeLocked(catalog, updated)
	return updated, nil
}

// RenameAndReprice replaces an item's name and price. Flat-priced items take
// newPrice; sized items take per-size prices from the name-keyed mapping,
// with sizes absent from the mapping keeping their old price.
func (u *CatalogUseCase) RenameAndReprice(ctx context.Context, itemID, newName string, newPrice int64, sizePrices map[string]int64) (entities.CatalogItem, error) {
	itemID = strings.TrimSpace(itemID)
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return entities.CatalogItem{}, ErrInvalidItemName
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	item, catalog, ok := u.findLocked(itemID)
	if !ok {
		return entities.CatalogItem{}, ErrItemNotFound
	}

	item.Name = newName
	if item.Sized() {
		sizes := make([]entities.SizeVariant, len(item.Sizes))
		copy(sizes, item.Sizes)
		for i := range sizes {
			if p, ok := sizePrices[sizes[i].Name]; ok {
				if p <= 0 {
					return entities.CatalogItem{}, ErrInvalidItemPrice
				}
				sizes[i].Price = p
			}
		}
		item.Sizes = sizes
	} else {
		if newPrice <= 0 {
			return entities.CatalogItem{}, ErrInvalidItemPrice
		}
		item.Price = newPrice
	}

	updated, err := u.repo.UpdateDetails(ctx, catalog, item)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if updated.ID == "" {
		return entities.CatalogItem{}, ErrItemNotFound
	}

	u.storeLocked(catalog, updated)
	return updated, nil
}

func (u *CatalogUseCase) storeLocked(catalog entities.CatalogName, item entities.CatalogItem) {
	items := u.catalogs[catalog]
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return
		}
	}
}
