package entities

import "errors"

var ErrItemUnavailable = errors.New("item is currently unavailable")

// CartLine is one entry in the cart. Identity for merging is
// (ItemID, SelectedSize); SelectedSize is empty for unsized items.
//
// UnitPrice is a snapshot taken when the line is added. Later catalog edits
// never touch it, so a receipt always matches what the customer was quoted.
type CartLine struct {
	ItemID       string
	Name         string
	Catalog      CatalogName
	Category     string
	SelectedSize string
	UnitPrice    int64
	Quantity     int
}

// Key returns the merge identity of the line.
func (l CartLine) Key() string {
	return l.ItemID + "|" + l.SelectedSize
}

// LineTotal is UnitPrice times Quantity.
func (l CartLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart holds the in-progress order as an ordered list of lines.
//
// Invariants:
//   - no two lines share the same (ItemID, SelectedSize) identity
//   - every line has Quantity >= 1; a line driven to zero is removed
type Cart struct {
	lines []CartLine
}

// AddItem adds one unit of a menu item, resolving the size (explicit
// selection, else the item's first variant, else none) and the unit price at
// add time. An existing line with the same identity has its quantity bumped.
func (c *Cart) AddItem(item CatalogItem, catalog CatalogName, selectedSize string) (CartLine, error) {
	if item.Disabled {
		return CartLine{}, ErrItemUnavailable
	}
	size, err := item.ResolveSize(selectedSize)
	if err != nil {
		return CartLine{}, err
	}
	price, err := item.ResolvePrice(size)
	if err != nil {
		return CartLine{}, err
	}

	for i := range c.lines {
		if c.lines[i].ItemID == item.ID && c.lines[i].SelectedSize == size {
			c.lines[i].Quantity++
			return c.lines[i], nil
		}
	}
	line := CartLine{
		ItemID:       item.ID,
		Name:         item.Name,
		Catalog:      catalog,
		Category:     item.Category,
		SelectedSize: size,
		UnitPrice:    price,
		Quantity:     1,
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// AddSimpleItem adds one unit of an unsized item (starters and drinks);
// identity is the item id alone.
func (c *Cart) AddSimpleItem(item CatalogItem, catalog CatalogName) (CartLine, error) {
	return c.AddItem(item, catalog, "")
}

// RemoveLine deletes the line matching (itemID, size) exactly. Removing an
// absent line is a no-op.
func (c *Cart) RemoveLine(itemID, size string) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID && c.lines[i].SelectedSize == size {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// AdjustQuantity adds delta to the matching line's quantity. A resulting
// quantity <= 0 removes the line. No-op when no line matches.
func (c *Cart) AdjustQuantity(itemID, size string, delta int) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID && c.lines[i].SelectedSize == size {
			c.lines[i].Quantity += delta
			if c.lines[i].Quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

// Subtotal sums UnitPrice*Quantity over all lines.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.LineTotal()
	}
	return sum
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Replace swaps the cart contents wholesale. Used when an existing order is
// loaded for editing.
func (c *Cart) Replace(lines []CartLine) {
	c.lines = make([]CartLine, len(lines))
	copy(c.lines, lines)
}

func (c *Cart) Clear() { c.lines = nil }

func (c *Cart) Empty() bool { return len(c.lines) == 0 }
