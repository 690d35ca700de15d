package models

import "time"

type CartItem struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ProductID int       `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// CartLine is one cart row joined to its product, as read inside the
// checkout transaction. Stock carries the value observed under the row
// lock, so it is still current when a reservation fails.
type CartLine struct {
	ProductID     int
	ProductName   string
	Quantity      int
	UnitPrice     int
	UnitSalePrice *int
	UnitWeight    int
	Stock         int
}

// EffectivePrice is the unit price a line is charged at: the sale price
// when one is set, otherwise the list price.
func (l CartLine) EffectivePrice() int {
	if l.UnitSalePrice != nil {
		return *l.UnitSalePrice
	}
	return l.UnitPrice
}
