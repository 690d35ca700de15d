package services

import "bananina-api/models"

// PricedLine is the snapshot an order line is written from: unit price and
// line subtotal are fixed here and never recomputed.
type PricedLine struct {
	ProductID int
	Quantity  int
	UnitPrice int
	Subtotal  int
}

type PricingResult struct {
	Subtotal     int
	ShippingCost int
	Total        int
	TotalItems   int
	TotalWeight  int
	Lines        []PricedLine
}

// PriceCart computes order totals for a set of cart lines. Shipping is a
// flat per-unit rate; weight is accumulated for reporting but does not
// enter the shipping cost. Pure function, no side effects.
func PriceCart(lines []models.CartLine, flatRatePerItem int) (PricingResult, error) {
	if len(lines) == 0 {
		return PricingResult{}, models.ErrEmptyCart
	}

	result := PricingResult{
		Lines: make([]PricedLine, 0, len(lines)),
	}

	for _, line := range lines {
		unitPrice := line.EffectivePrice()
		lineSubtotal := unitPrice * line.Quantity

		result.Subtotal += lineSubtotal
		result.TotalItems += line.Quantity
		result.TotalWeight += line.UnitWeight * line.Quantity
		result.Lines = append(result.Lines, PricedLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  lineSubtotal,
		})
	}

	result.ShippingCost = result.TotalItems * flatRatePerItem
	result.Total = result.Subtotal + result.ShippingCost

	return result, nil
}
