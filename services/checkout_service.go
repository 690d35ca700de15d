package services

import (
	"context"
	"log"

	"bananina-api/models"
	"bananina-api/repositories"
)

// CheckoutService converts a user's cart into a committed order. Every
// write it performs happens inside one transaction: order header, order
// lines, stock decrements and cart clearing either all land or none do.
type CheckoutService struct {
	store    repositories.CheckoutStore
	mailer   *EmailService
	flatRate int
}

func NewCheckoutService(store repositories.CheckoutStore, mailer *EmailService, flatRatePerItem int) *CheckoutService {
	return &CheckoutService{
		store:    store,
		mailer:   mailer,
		flatRate: flatRatePerItem,
	}
}

// PlaceOrder runs the checkout pipeline: validate address, load and price
// the cart, persist the order with snapshotted prices, reserve stock,
// clear the cart, and return the hydrated order. Business-rule failures
// (empty cart, insufficient stock, bad address) come back as the typed
// errors in models; anything else is a storage failure.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID, addressID int) (*models.OrderDetail, error) {
	if addressID <= 0 {
		return nil, models.ErrInvalidAddress
	}

	var detail *models.OrderDetail

	err := s.store.WithinTx(ctx, func(tx repositories.CheckoutTx) error {
		lines, err := tx.CartLines(ctx, userID)
		if err != nil {
			return err
		}

		pricing, err := PriceCart(lines, s.flatRate)
		if err != nil {
			return err
		}

		order := &models.Order{
			UserID:       userID,
			AddressID:    addressID,
			Subtotal:     pricing.Subtotal,
			ShippingCost: pricing.ShippingCost,
			Total:        pricing.Total,
			Status:       models.OrderStatusPending,
		}
		if err := tx.InsertOrder(ctx, order); err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(pricing.Lines))
		for _, line := range pricing.Lines {
			items = append(items, models.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.UnitPrice,
				Subtotal:  line.Subtotal,
			})
		}
		if err := tx.InsertOrderItems(ctx, items); err != nil {
			return err
		}

		for _, line := range lines {
			ok, err := tx.ReserveStock(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return &models.InsufficientStockError{
					ProductID:   line.ProductID,
					ProductName: line.ProductName,
					Requested:   line.Quantity,
					Available:   line.Stock,
				}
			}
		}

		if err := tx.ClearCart(ctx, userID); err != nil {
			return err
		}

		detail, err = tx.OrderDetail(ctx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.mailer != nil {
		go func(d models.OrderDetail) {
			if err := s.mailer.SendOrderConfirmation(userID, &d); err != nil {
				log.Println("Order confirmation email failed:", err)
			}
		}(*detail)
	}

	return detail, nil
}
