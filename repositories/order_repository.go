package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bananina-api/config"
	"bananina-api/models"

	"github.com/jackc/pgx/v5"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// GetOrderDetail hydrates an order outside any transaction. When userID is
// non-zero the order must belong to that user.
func (r *OrderRepository) GetOrderDetail(orderID, userID int) (*models.OrderDetail, error) {
	if userID > 0 {
		var owner int
		err := config.DB.QueryRow(context.Background(),
			`SELECT user_id FROM orders WHERE id = $1`, orderID).Scan(&owner)
		if errors.Is(err, pgx.ErrNoRows) || (err == nil && owner != userID) {
			return nil, ErrOrderNotFound
		}
		if err != nil {
			return nil, err
		}
	}

	detail, err := scanOrderDetail(context.Background(), config.DB, orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return detail, err
}

func (r *OrderRepository) GetUserOrders(userID, page, limit int) ([]models.Order, int, error) {
	return r.listOrders(page, limit, "o.user_id = $1", []interface{}{userID})
}

func (r *OrderRepository) GetAllOrders(page, limit int, status string) ([]models.Order, int, error) {
	if status != "" {
		return r.listOrders(page, limit, "o.status = $1", []interface{}{status})
	}
	return r.listOrders(page, limit, "", nil)
}

func (r *OrderRepository) listOrders(page, limit int, where string, args []interface{}) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	whereClause := ""
	if where != "" {
		whereClause = " WHERE " + where
	}

	var total int
	err := config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM orders o"+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	argIndex := len(args) + 1
	query := fmt.Sprintf(
		`SELECT o.id, o.user_id, o.address_id, o.subtotal, o.shipping_cost, o.total, o.status, o.created_at
		 FROM orders o%s ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.AddressID, &o.Subtotal,
			&o.ShippingCost, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

// UpsertShippingDetails records courier data for an order and marks it
// shipped, in one transaction.
func (r *OrderRepository) UpsertShippingDetails(orderID, adminID int, req models.UpdateShippingRequest) error {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, orderID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	var serviceType, notes *string
	if s := strings.TrimSpace(req.ServiceType); s != "" {
		serviceType = &s
	}
	if n := strings.TrimSpace(req.Notes); n != "" {
		notes = &n
	}

	var estimatedDelivery *time.Time
	if req.EstimatedDeliveryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EstimatedDeliveryDate)
		if err != nil {
			return fmt.Errorf("invalid estimated delivery date: %w", err)
		}
		estimatedDelivery = &parsed
	}

	var shippingCost *int
	if req.ShippingCost > 0 {
		shippingCost = &req.ShippingCost
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO shipping_details
		 (order_id, courier_name, service_type, tracking_number, shipping_cost,
		  estimated_delivery_date, shipped_at, shipped_by, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, $7, $8)
		 ON CONFLICT (order_id) DO UPDATE SET
		   courier_name = EXCLUDED.courier_name,
		   service_type = EXCLUDED.service_type,
		   tracking_number = EXCLUDED.tracking_number,
		   shipping_cost = EXCLUDED.shipping_cost,
		   estimated_delivery_date = EXCLUDED.estimated_delivery_date,
		   shipped_at = CURRENT_TIMESTAMP,
		   shipped_by = EXCLUDED.shipped_by,
		   notes = EXCLUDED.notes`,
		orderID, req.CourierName, serviceType, req.TrackingNumber,
		shippingCost, estimatedDelivery, adminID, notes)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`,
		models.OrderStatusShipped, orderID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
