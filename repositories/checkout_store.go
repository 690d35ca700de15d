package repositories

import (
	"context"

	"bananina-api/models"
)

// CheckoutTx is the set of storage operations one checkout performs. All
// calls made from a single WithinTx callback see the same transaction, so
// the stock values read by CartLines are the ones ReserveStock decrements.
type CheckoutTx interface {
	// CartLines loads the user's cart joined to active, non-deleted
	// products, locking the product rows for the rest of the transaction.
	CartLines(ctx context.Context, userID int) ([]models.CartLine, error)

	// InsertOrder persists the order header and fills in ID and CreatedAt.
	InsertOrder(ctx context.Context, order *models.Order) error

	InsertOrderItems(ctx context.Context, items []models.OrderItem) error

	// ReserveStock decrements stock for one product as a conditional
	// update; it returns false, without error, when stock is insufficient.
	ReserveStock(ctx context.Context, productID, quantity int) (bool, error)

	ClearCart(ctx context.Context, userID int) error

	// OrderDetail hydrates a committed-to-be order with its shipping
	// address snapshot and product display data.
	OrderDetail(ctx context.Context, orderID int) (*models.OrderDetail, error)
}

// CheckoutStore runs a function inside one atomic unit of work. Any error
// returned by fn rolls back everything fn did.
type CheckoutStore interface {
	WithinTx(ctx context.Context, fn func(tx CheckoutTx) error) error
}
