package entities

import "errors"

// CatalogName identifies one of the three item collections the POS serves.
type CatalogName string

const (
	CatalogMenu     CatalogName = "menu"
	CatalogStarters CatalogName = "starters"
	CatalogDrinks   CatalogName = "drinks"
)

// Catalogs lists every catalog in load order.
func Catalogs() []CatalogName {
	return []CatalogName{CatalogMenu, CatalogStarters, CatalogDrinks}
}

// PricingKind tags how a catalog item is priced. An item is either flat
// priced or carries size variants, never both.
type PricingKind string

const (
	PricingFlat  PricingKind = "flat"
	PricingSized PricingKind = "sized"
)

// SizeVariant is one size option of a sized item (e.g. "Large" at 8000 IQD).
type SizeVariant struct {
	Name  string
	Price int64
}

var (
	ErrUnknownSize   = errors.New("unknown size for item")
	ErrItemNotPriced = errors.New("item has no price")
)

// CatalogItem is a sellable item persisted in one of the catalog tables.
//
// Storage model (DynamoDB):
//   - one table per catalog (menu / starters / drinks)
//   - PK: id (string)
//
// Monetary representation: whole Iraqi dinars, int64.
//
// Category is set on menu (food) items only; starters and drinks carry none.
type CatalogItem struct {
	ID       string
	Name     string
	Category string
	Pricing  PricingKind
	Price    int64
	Sizes    []SizeVariant
	Disabled bool
}

// Sized reports whether the item is priced per size variant.
func (i CatalogItem) Sized() bool {
	return i.Pricing == PricingSized
}

// ResolveSize picks the effective size for a cart add: the explicit selection
// when given, else the first size variant, else none (empty string).
func (i CatalogItem) ResolveSize(selected string) (string, error) {
	if !i.Sized() {
		return "", nil
	}
	if selected == "" {
		if len(i.Sizes) == 0 {
			return "", ErrItemNotPriced
		}
		return i.Sizes[0].Name, nil
	}
	for _, s := range i.Sizes {
		if s.Name == selected {
			return selected, nil
		}
	}
	return "", ErrUnknownSize
}

// ResolvePrice returns the unit price for the given size, or the flat price
// for unsized items. The size must already be resolved via ResolveSize.
func (i CatalogItem) ResolvePrice(size string) (int64, error) {
	if !i.Sized() {
		return i.Price, nil
	}
	for _, s := range i.Sizes {
		if s.Name == size {
			return s.Price, nil
		}
	}
	return 0, ErrUnknownSize
}
