package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bananina-api/models"
	"bananina-api/repositories"
	"bananina-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory CheckoutStore with the same contract as the pgx
// implementation: WithinTx is atomic and isolated (one writer at a time),
// and ReserveStock is a conditional decrement.
type memStore struct {
	mu         sync.Mutex
	products   map[int]*memProduct
	carts      map[int][]memCartLine
	orders     map[int]*models.Order
	orderItems map[int][]models.OrderItem
	address    models.ShippingAddress
	nextOrder  int

	failOn string // name of the operation that should error, for fault injection
}

type memProduct struct {
	name      string
	price     int
	salePrice *int
	weight    int
	stock     int
	active    bool
}

type memCartLine struct {
	productID int
	quantity  int
}

func newMemStore() *memStore {
	return &memStore{
		products:   map[int]*memProduct{},
		carts:      map[int][]memCartLine{},
		orders:     map[int]*models.Order{},
		orderItems: map[int][]models.OrderItem{},
		address: models.ShippingAddress{
			RecipientName: "Dewi Lestari",
			Phone:         "+62812345678",
			AddressLine1:  "Jl. Kemang Raya 12",
			City:          "Jakarta Selatan",
			PostalCode:    "12730",
			State:         "DKI Jakarta",
			Country:       "Indonesia",
		},
		nextOrder: 1,
	}
}

func (s *memStore) WithinTx(ctx context.Context, fn func(tx repositories.CheckoutTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.clone()
	if err := fn(&memTx{store: s}); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.nextOrder = s.nextOrder
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for uid, lines := range s.carts {
		c.carts[uid] = append([]memCartLine(nil), lines...)
	}
	for id, o := range s.orders {
		co := *o
		c.orders[id] = &co
	}
	for id, items := range s.orderItems {
		c.orderItems[id] = append([]models.OrderItem(nil), items...)
	}
	return c
}

func (s *memStore) restore(snapshot *memStore) {
	s.products = snapshot.products
	s.carts = snapshot.carts
	s.orders = snapshot.orders
	s.orderItems = snapshot.orderItems
	s.nextOrder = snapshot.nextOrder
}

type memTx struct {
	store *memStore
}

func (t *memTx) CartLines(ctx context.Context, userID int) ([]models.CartLine, error) {
	if t.store.failOn == "CartLines" {
		return nil, errors.New("connection reset")
	}
	lines := []models.CartLine{}
	for _, cl := range t.store.carts[userID] {
		p, ok := t.store.products[cl.productID]
		if !ok || !p.active {
			continue
		}
		lines = append(lines, models.CartLine{
			ProductID:     cl.productID,
			ProductName:   p.name,
			Quantity:      cl.quantity,
			UnitPrice:     p.price,
			UnitSalePrice: p.salePrice,
			UnitWeight:    p.weight,
			Stock:         p.stock,
		})
	}
	return lines, nil
}

func (t *memTx) InsertOrder(ctx context.Context, order *models.Order) error {
	if t.store.failOn == "InsertOrder" {
		return errors.New("connection reset")
	}
	order.ID = t.store.nextOrder
	t.store.nextOrder++
	order.CreatedAt = time.Now()
	saved := *order
	t.store.orders[order.ID] = &saved
	return nil
}

func (t *memTx) InsertOrderItems(ctx context.Context, items []models.OrderItem) error {
	if t.store.failOn == "InsertOrderItems" {
		return errors.New("connection reset")
	}
	for _, item := range items {
		t.store.orderItems[item.OrderID] = append(t.store.orderItems[item.OrderID], item)
	}
	return nil
}

func (t *memTx) ReserveStock(ctx context.Context, productID, quantity int) (bool, error) {
	p, ok := t.store.products[productID]
	if !ok {
		return false, errors.New("product vanished")
	}
	if p.stock < quantity {
		return false, nil
	}
	p.stock -= quantity
	return true, nil
}

func (t *memTx) ClearCart(ctx context.Context, userID int) error {
	if t.store.failOn == "ClearCart" {
		return errors.New("connection reset")
	}
	delete(t.store.carts, userID)
	return nil
}

func (t *memTx) OrderDetail(ctx context.Context, orderID int) (*models.OrderDetail, error) {
	o, ok := t.store.orders[orderID]
	if !ok {
		return nil, errors.New("order not found")
	}
	d := &models.OrderDetail{
		ID:              o.ID,
		Status:          o.Status,
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		Total:           o.Total,
		CreatedAt:       o.CreatedAt,
		ShippingAddress: t.store.address,
	}
	for _, item := range t.store.orderItems[orderID] {
		p := t.store.products[item.ProductID]
		d.Items = append(d.Items, models.OrderDetailItem{
			ProductID:   item.ProductID,
			ProductName: p.name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal,
		})
	}
	return d, nil
}

const flatRate = 50000

func newCheckout(store *memStore) *services.CheckoutService {
	return services.NewCheckoutService(store, nil, flatRate)
}

func TestPlaceOrderHappyPath(t *testing.T) {
	store := newMemStore()
	store.products[1] = &memProduct{name: "Leather Tote", price: 100000, stock: 10, active: true}
	store.carts[7] = []memCartLine{{productID: 1, quantity: 2}}

	detail, err := newCheckout(store).PlaceOrder(context.Background(), 7, 3)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, detail.Status)
	assert.Equal(t, 200000, detail.Subtotal)
	assert.Equal(t, 100000, detail.ShippingCost)
	assert.Equal(t, 300000, detail.Total)
	assert.Equal(t, detail.Subtotal+detail.ShippingCost, detail.Total)
	assert.Equal(t, "Dewi Lestari", detail.ShippingAddress.RecipientName)

	require.Len(t, detail.Items, 1)
	assert.Equal(t, 2, detail.Items[0].Quantity)
	assert.Equal(t, 100000, detail.Items[0].Price)
	assert.Equal(t, 200000, detail.Items[0].Subtotal)

	// stock decremented by exactly the ordered quantity, cart cleared
	assert.Equal(t, 8, store.products[1].stock)
	assert.Empty(t, store.carts[7])
}

func TestPlaceOrderSnapshotsSalePrice(t *testing.T) {
	store := newMemStore()
	store.products[1] = &memProduct{name: "Canvas Sneakers", price: 500000, salePrice: intPtr(350000), stock: 5, active: true}
	store.carts[7] = []memCartLine{{productID: 1, quantity: 1}}

	detail, err := newCheckout(store).PlaceOrder(context.Background(), 7, 3)
	require.NoError(t, err)

	require.Len(t, detail.Items, 1)
	assert.Equal(t, 350000, detail.Items[0].Price)

	// later price changes must not touch the stored snapshot
	store.products[1].salePrice = nil
	store.products[1].price = 900000
	assert.Equal(t, 350000, store.orderItems[detail.ID][0].Price)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	store := newMemStore()

	_, err := newCheckout(store).PlaceOrder(context.Background(), 7, 3)
	assert.ErrorIs(t, err, models.ErrEmptyCart)
	assert.Empty(t, store.orders)
}

func TestPlaceOrderInactiveProductsAreInvisible(t *testing.T) {
	store := newMemStore()
	store.products[1] = &memProduct{name: "Retired Bag", price: 100000, stock: 10, active: false}
	store.carts[7] = []memCartLine{{productID: 1, quantity: 1}}

	_, err := newCheckout(store).PlaceOrder(context.Background(), 7, 3)
	assert.ErrorIs(t, err, models.ErrEmptyCart)
}

func TestPlaceOrderInvalidAddress(t *testing.T) {
	store := newMemStore()
	store.products[1] = &memProduct{name: "Leather Tote", price: 100000, stock: 10, active: true}
	store.carts[7] = []memCartLine{{productID: 1, quantity: 1}}

	for _, addressID := range []int{0, -4} {
		_, err := newCheckout(store).PlaceOrder(context.Background(), 7, addressID)
		assert.ErrorIs(t, err, models.ErrInvalidAddress)
	}

	// rejected before the cart is ever read
	assert.Len(t, store.carts[7], 1)
	assert.Empty(t, store.orders)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	store := newMemStore()
	store.products[1] = &memProduct{name: "Silk Scarf", price: 150000, stock: 1, active: true}
	store.carts[7] = []memCartLine{{productID: 1, quantity: 2}}

	_, err := newCheckout(store).PlaceOrder(context.Background(), 7, 3)

	var stockErr *models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, stockErr.ProductID)
	assert.Equal(t, "Silk Scarf", stockErr.ProductName)
	assert.Equal(t, 2, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)
	assert.Equal(t, "Insufficient stock for product: Silk Scarf", err.Error())

	// nothing committed: no order rows, stock untouched, cart intact
	assert.Empty(t, store.orders)
	assert.Equal(t, 1, store.products[1].stock)
	assert.Len(t, store.carts[7], 1)
}

func TestPlaceOrderOneInsufficientLineAbortsAll(t *testing.T) {
	store := newMemStore()
	store.products[1] = &memProduct{name: "Leather Tote", price: 100000, stock: 10, active: true}
	store.products[2] = &memProduct{name: "Silk Scarf", price: 150000, stock: 0, active: true}
	store.carts[7] = []memCartLine{
		{productID: 1, quantity: 2},
		{productID: 2, quantity: 1},
	}

	_, err := newCheckout(store).PlaceOrder(context.Background(), 7, 3)

	var stockErr *models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.ProductID)

	// the first line's decrement must not survive the rollback
	assert.Equal(t, 10, store.products[1].stock)
	assert.Len(t, store.carts[7], 2)
}

func TestPlaceOrderStorageFailureRollsBack(t *testing.T) {
	for _, failOn := range []string{"InsertOrder", "InsertOrderItems", "ClearCart"} {
		store := newMemStore()
		store.failOn = failOn
		store.products[1] = &memProduct{name: "Leather Tote", price: 100000, stock: 10, active: true}
		store.carts[7] = []memCartLine{{productID: 1, quantity: 2}}

		_, err := newCheckout(store).PlaceOrder(context.Background(), 7, 3)
		require.Error(t, err, failOn)
		assert.False(t, models.IsBusinessError(err), failOn)

		assert.Empty(t, store.orders, failOn)
		assert.Equal(t, 10, store.products[1].stock, failOn)
		assert.Len(t, store.carts[7], 1, failOn)
	}
}

// Two concurrent checkouts against stock that only covers one of them:
// exactly one must win.
func TestPlaceOrderConcurrentCheckoutsOneWinner(t *testing.T) {
	store := newMemStore()
	store.products[1] = &memProduct{name: "Leather Tote", price: 100000, stock: 3, active: true}
	store.carts[7] = []memCartLine{{productID: 1, quantity: 2}}
	store.carts[8] = []memCartLine{{productID: 1, quantity: 2}}

	checkout := newCheckout(store)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, userID := range []int{7, 8} {
		wg.Add(1)
		go func(i, userID int) {
			defer wg.Done()
			_, errs[i] = checkout.PlaceOrder(context.Background(), userID, 3)
		}(i, userID)
	}
	wg.Wait()

	var stockErr *models.InsufficientStockError
	switch {
	case errs[0] == nil:
		require.ErrorAs(t, errs[1], &stockErr)
	case errs[1] == nil:
		require.ErrorAs(t, errs[0], &stockErr)
	default:
		t.Fatalf("both checkouts failed: %v / %v", errs[0], errs[1])
	}

	assert.Equal(t, 1, store.products[1].stock)
	assert.Len(t, store.orders, 1)
}
