package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order totals are snapshots computed at checkout; later price changes on
// a product never alter a placed order.
type Order struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	AddressID    int       `json:"address_id"`
	Subtotal     int       `json:"subtotal"`
	ShippingCost int       `json:"shipping_cost"`
	Total        int       `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type OrderItem struct {
	ID        int `json:"id"`
	OrderID   int `json:"order_id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
	Price     int `json:"price"`
	Subtotal  int `json:"subtotal"`
}

type ShippingAddress struct {
	RecipientName string  `json:"recipient_name"`
	Phone         string  `json:"phone"`
	AddressLine1  string  `json:"address_line1"`
	AddressLine2  *string `json:"address_line2"`
	City          string  `json:"city"`
	PostalCode    string  `json:"postal_code"`
	State         string  `json:"state"`
	Country       string  `json:"country"`
}

// OrderDetailItem enriches a stored order line with product display data
// for responses; the enrichment is never persisted.
type OrderDetailItem struct {
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductSlug  string `json:"product_slug"`
	ProductImage string `json:"product_image"`
	Quantity     int    `json:"quantity"`
	Price        int    `json:"price"`
	Subtotal     int    `json:"subtotal"`
}

type OrderDetail struct {
	ID              int               `json:"id"`
	Status          string            `json:"status"`
	Subtotal        int               `json:"subtotal"`
	ShippingCost    int               `json:"shipping_cost"`
	Total           int               `json:"total"`
	CreatedAt       time.Time         `json:"created_at"`
	ShippingAddress ShippingAddress   `json:"shipping_address"`
	Items           []OrderDetailItem `json:"items"`
}

type ShippingDetails struct {
	ID                    int        `json:"id"`
	OrderID               int        `json:"order_id"`
	CourierName           string     `json:"courier_name"`
	ServiceType           *string    `json:"service_type"`
	TrackingNumber        string     `json:"tracking_number"`
	ShippingCost          *int       `json:"shipping_cost"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date"`
	ShippedAt             *time.Time `json:"shipped_at"`
	ShippedBy             *int       `json:"shipped_by"`
	Notes                 *string    `json:"notes"`
}
