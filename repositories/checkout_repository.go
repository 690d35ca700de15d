package repositories

import (
	"context"
	"time"

	"bananina-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CheckoutRepository struct {
	pool *pgxpool.Pool
}

func NewCheckoutRepository(pool *pgxpool.Pool) *CheckoutRepository {
	return &CheckoutRepository{pool: pool}
}

func (r *CheckoutRepository) WithinTx(ctx context.Context, fn func(tx CheckoutTx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&checkoutTx{tx: tx}); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

type checkoutTx struct {
	tx pgx.Tx
}

// FOR UPDATE OF p serializes concurrent checkouts touching the same
// products; the stock value scanned here stays valid for the whole
// transaction.
const cartLinesQuery = `
	SELECT c.product_id, p.name, c.quantity, p.price, p.sale_price, p.weight, p.stock
	FROM cart c
	JOIN products p ON c.product_id = p.id
	WHERE c.user_id = $1 AND p.is_active = TRUE AND p.deleted_at IS NULL
	ORDER BY c.id
	FOR UPDATE OF p`

func (t *checkoutTx) CartLines(ctx context.Context, userID int) ([]models.CartLine, error) {
	rows, err := t.tx.Query(ctx, cartLinesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []models.CartLine{}
	for rows.Next() {
		var l models.CartLine
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.Quantity,
			&l.UnitPrice, &l.UnitSalePrice, &l.UnitWeight, &l.Stock); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (t *checkoutTx) InsertOrder(ctx context.Context, order *models.Order) error {
	return t.tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, address_id, subtotal, shipping_cost, total, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		 RETURNING id, created_at`,
		order.UserID, order.AddressID, order.Subtotal, order.ShippingCost, order.Total, order.Status,
	).Scan(&order.ID, &order.CreatedAt)
}

func (t *checkoutTx) InsertOrderItems(ctx context.Context, items []models.OrderItem) error {
	for _, item := range items {
		_, err := t.tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price, subtotal)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.OrderID, item.ProductID, item.Quantity, item.Price, item.Subtotal)
		if err != nil {
			return err
		}
	}
	return nil
}

// The WHERE stock >= $1 guard re-checks availability at decrement time, so
// stock can never go negative even if the earlier read were stale.
func (t *checkoutTx) ReserveStock(ctx context.Context, productID, quantity int) (bool, error) {
	tag, err := t.tx.Exec(ctx,
		`UPDATE products SET stock = stock - $1, updated_at = $2 WHERE id = $3 AND stock >= $1`,
		quantity, time.Now(), productID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (t *checkoutTx) ClearCart(ctx context.Context, userID int) error {
	_, err := t.tx.Exec(ctx, `DELETE FROM cart WHERE user_id = $1`, userID)
	return err
}

func (t *checkoutTx) OrderDetail(ctx context.Context, orderID int) (*models.OrderDetail, error) {
	return scanOrderDetail(ctx, t.tx, orderID)
}

// rowQuerier is satisfied by both pgx.Tx and *pgxpool.Pool, so order
// hydration is shared between checkout and the order read endpoints.
type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanOrderDetail(ctx context.Context, q rowQuerier, orderID int) (*models.OrderDetail, error) {
	var d models.OrderDetail
	err := q.QueryRow(ctx,
		`SELECT o.id, o.status, o.subtotal, o.shipping_cost, o.total, o.created_at,
		        a.recipient_name, a.phone, a.address_line1, a.address_line2,
		        a.city, a.postal_code, a.state, a.country
		 FROM orders o
		 JOIN addresses a ON o.address_id = a.id
		 WHERE o.id = $1`,
		orderID,
	).Scan(&d.ID, &d.Status, &d.Subtotal, &d.ShippingCost, &d.Total, &d.CreatedAt,
		&d.ShippingAddress.RecipientName, &d.ShippingAddress.Phone,
		&d.ShippingAddress.AddressLine1, &d.ShippingAddress.AddressLine2,
		&d.ShippingAddress.City, &d.ShippingAddress.PostalCode,
		&d.ShippingAddress.State, &d.ShippingAddress.Country)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx,
		`SELECT oi.product_id, p.name, p.slug,
		        COALESCE((SELECT image_url FROM product_galleries
		                  WHERE product_id = p.id AND is_primary = TRUE LIMIT 1), ''),
		        oi.quantity, oi.price, oi.subtotal
		 FROM order_items oi
		 JOIN products p ON oi.product_id = p.id
		 WHERE oi.order_id = $1
		 ORDER BY oi.id`,
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	d.Items = []models.OrderDetailItem{}
	for rows.Next() {
		var item models.OrderDetailItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.ProductSlug,
			&item.ProductImage, &item.Quantity, &item.Price, &item.Subtotal); err != nil {
			return nil, err
		}
		d.Items = append(d.Items, item)
	}
	return &d, rows.Err()
}
