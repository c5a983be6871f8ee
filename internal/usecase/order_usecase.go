package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"pizzamaster/internal/domain/entities"
	"pizzamaster/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart          = errors.New("cart has no lines")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEditInProgress     = errors.New("an order edit is in progress")
	ErrNotEditing         = errors.New("no order edit in progress")
	ErrInvalidDeliveryFee = errors.New("invalid delivery fee")
)

// CartView is a snapshot of the in-progress order for the UI.
type CartView struct {
	Lines         []entities.CartLine
	Subtotal      int64
	DeliveryFee   int64
	Total         int64
	Editing       bool
	EditingNumber string
}

// IOrderUseCase is the order lifecycle: cart mutation, placement, the edit
// path, history and the derived sales report.
type IOrderUseCase interface {
	Initialize(ctx context.Context) error
	AddToCart(itemID, selectedSize string) (entities.CartLine, error)
	RemoveFromCart(itemID, selectedSize string) CartView
	AdjustQuantity(itemID, selectedSize string, delta int) CartView
	SetDeliveryFee(fee int64) (CartView, error)
	CartState() CartView
	PlaceOrder(ctx context.Context) (entities.Order, error)
	BeginEdit(number string) (CartView, error)
	CommitEdit(ctx context.Context) (entities.Order, error)
	CancelEdit() CartView
	Orders() []entities.Order
	MonthlySales() map[string]entities.MonthlySalesBucket
	ClearOrders(ctx context.Context) error
	ResetSequence(ctx context.Context) error
}

// OrderUseCase drives the Create/Edit state machine over a single cart.
//
// The POS is single-operator: one cart, one edit context per process. A
// mutex serializes mutations since gin serves requests concurrently.
type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	catalog interfaces.ICatalogStore
	seq     *OrderSequencer

	mu          sync.Mutex
	cart        entities.Cart
	deliveryFee int64
	orders      []entities.Order
	editing     bool
	editNumber  string
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, catalog interfaces.ICatalogStore, seq *OrderSequencer) *OrderUseCase {
	return &OrderUseCase{repo: repo, catalog: catalog, seq: seq}
}

// Initialize loads the order history (most recent first) and primes the
// sequencer from the persisted counter.
func (u *OrderUseCase) Initialize(ctx context.Context) error {
	orders, err := u.repo.List(ctx, true)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.orders = orders
	if err := u.seq.Initialize(ctx, orders); err != nil {
		return err
	}
	log.Printf("[order][usecase] loaded orders=%d next_number=%s", len(orders), u.seq.NextID())
	return nil
}

// AddToCart adds one unit of the item with the given id, searching all three
// catalogs. Menu items resolve a size; starters and drinks merge on the item
// id alone.
func (u *OrderUseCase) AddToCart(itemID, selectedSize string) (entities.CartLine, error) {
	item, catalog, ok := u.catalog.Find(strings.TrimSpace(itemID))
	if !ok {
		return entities.CartLine{}, ErrItemNotFound
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if catalog == entities.CatalogMenu {
		return u.cart.AddItem(item, catalog, selectedSize)
	}
	return u.cart.AddSimpleItem(item, catalog)
}

func (u *OrderUseCase) RemoveFromCart(itemID, selectedSize string) CartView {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cart.RemoveLine(itemID, selectedSize)
	return u.cartViewLocked()
}

func (u *OrderUseCase) AdjustQuantity(itemID, selectedSize string, delta int) CartView {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cart.AdjustQuantity(itemID, selectedSize, delta)
	return u.cartViewLocked()
}

func (u *OrderUseCase) SetDeliveryFee(fee int64) (CartView, error) {
	if fee < 0 {
		return CartView{}, ErrInvalidDeliveryFee
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.deliveryFee = fee
	return u.cartViewLocked(), nil
}

func (u *OrderUseCase) CartState() CartView {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cartViewLocked()
}

func (u *OrderUseCase) cartViewLocked() CartView {
	subtotal := u.cart.Subtotal()
	return CartView{
		Lines:         u.cart.Lines(),
		Subtotal:      subtotal,
		DeliveryFee:   u.deliveryFee,
		Total:         subtotal + u.deliveryFee,
		Editing:       u.editing,
		EditingNumber: u.editNumber,
	}
}

// PlaceOrder turns the cart into a new persisted order. The cart and fee are
// cleared, and the sequencer advanced, only after the insert is confirmed; a
// failed write leaves everything as if the call never happened.
func (u *OrderUseCase) PlaceOrder(ctx context.Context) (entities.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.editing {
		return entities.Order{}, ErrEditInProgress
	}
	if u.cart.Empty() {
		return entities.Order{}, ErrEmptyCart
	}

	subtotal := u.cart.Subtotal()
	order := entities.Order{
		ID:          uuid.NewString(),
		Number:      u.seq.NextID(),
		Items:       u.cart.Lines(),
		Subtotal:    subtotal,
		DeliveryFee: u.deliveryFee,
		Total:       subtotal + u.deliveryFee,
		PlacedAt:    time.Now().UTC(),
	}

	stored, err := u.repo.Insert(ctx, order)
	if err != nil {
		return entities.Order{}, fmt.Errorf("insert order %s: %w", order.Number, err)
	}

	u.orders = append([]entities.Order{stored}, u.orders...)
	u.cart.Clear()
	u.deliveryFee = 0
	if err := u.seq.Advance(ctx); err != nil {
		// The order is committed; the in-memory counter has moved past its
		// number either way. Losing the persisted value only costs a slower
		// restart (fallback scans the history).
		log.Printf("[order][usecase] counter persist failed after order %s: %v", stored.Number, err)
	}

	log.Printf("[order][usecase] placed number=%s lines=%d total=%d", stored.Number, len(stored.Items), stored.Total)
	return stored, nil
}

// BeginEdit loads a previously placed order into the cart and switches to
// Edit mode. Short numbers are zero-padded before lookup ("3" finds "003").
// Entering Edit while already editing discards the previous context.
func (u *OrderUseCase) BeginEdit(number string) (CartView, error) {
	number = strings.TrimSpace(number)
	if n, err := strconv.Atoi(number); err == nil {
		number = formatOrderNumber(n)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	for _, o := range u.orders {
		if o.Number == number {
			u.cart.Replace(o.Items)
			u.deliveryFee = o.DeliveryFee
			u.editing = true
			u.editNumber = o.Number
			return u.cartViewLocked(), nil
		}
	}
	return CartView{}, ErrOrderNotFound
}

// CommitEdit overwrites the edited order with the current cart contents and
// returns to Create mode.
func (u *OrderUseCase) CommitEdit(ctx context.Context) (entities.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.editing {
		return entities.Order{}, ErrNotEditing
	}
	if u.cart.Empty() {
		return entities.Order{}, ErrEmptyCart
	}

	subtotal := u.cart.Subtotal()
	rev := entities.OrderRevision{
		Items:       u.cart.Lines(),
		Subtotal:    subtotal,
		DeliveryFee: u.deliveryFee,
		Total:       subtotal + u.deliveryFee,
	}

	updated, err := u.repo.UpdateByNumber(ctx, u.editNumber, rev)
	if err != nil {
		return entities.Order{}, fmt.Errorf("update order %s: %w", u.editNumber, err)
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	for i := range u.orders {
		if u.orders[i].Number == updated.Number {
			u.orders[i] = updated
			break
		}
	}
	u.cart.Clear()
	u.deliveryFee = 0
	u.editing = false
	u.editNumber = ""

	log.Printf("[order][usecase] updated number=%s lines=%d total=%d", updated.Number, len(updated.Items), updated.Total)
	return updated, nil
}

// CancelEdit drops the edit context and the loaded cart without writing.
func (u *OrderUseCase) CancelEdit() CartView {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cart.Clear()
	u.deliveryFee = 0
	u.editing = false
	u.editNumber = ""
	return u.cartViewLocked()
}

// Orders returns the history, most recent first.
func (u *OrderUseCase) Orders() []entities.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]entities.Order, len(u.orders))
	copy(out, u.orders)
	return out
}

// MonthlySales recomputes the per-month sales breakdown from the full
// history.
func (u *OrderUseCase) MonthlySales() map[string]entities.MonthlySalesBucket {
	u.mu.Lock()
	defer u.mu.Unlock()
	return entities.AggregateSales(u.orders)
}

// ClearOrders deletes the whole order history (daily reset). The external
// delete runs first; memory clears only on success.
func (u *OrderUseCase) ClearOrders(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	u.orders = nil
	log.Printf("[order][usecase] cleared order history")
	return nil
}

// ResetSequence rewinds the order counter to 1.
func (u *OrderUseCase) ResetSequence(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.seq.Reset(ctx)
}
