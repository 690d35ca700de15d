package repositories

import (
	"context"
	"time"

	"bananina-api/config"
	"bananina-api/models"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (r *CartRepository) GetCartItems(userID int) ([]models.CartItem, error) {
	query := `
		SELECT c.id, c.user_id, c.product_id, c.quantity, c.created_at,
		       p.id, p.name, p.slug, p.price, p.sale_price, p.stock, p.weight,
		       COALESCE((SELECT image_url FROM product_galleries
		                 WHERE product_id = p.id AND is_primary = TRUE LIMIT 1), '')
		FROM cart c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1 AND p.is_active = TRUE AND p.deleted_at IS NULL
		ORDER BY c.id`

	rows, err := config.DB.Query(context.Background(), query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		var p models.Product
		err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt,
			&p.ID, &p.Name, &p.Slug, &p.Price, &p.SalePrice, &p.Stock, &p.Weight, &p.ImageURL)
		if err != nil {
			return nil, err
		}
		item.Product = &p
		items = append(items, item)
	}
	return items, rows.Err()
}

// AddItem upserts: adding a product already in the cart bumps its quantity.
func (r *CartRepository) AddItem(userID, productID, quantity int) error {
	_, err := config.DB.Exec(context.Background(),
		`INSERT INTO cart (user_id, product_id, quantity, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, product_id)
		 DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity`,
		userID, productID, quantity, time.Now())
	return err
}

func (r *CartRepository) UpdateQuantity(userID, cartItemID, quantity int) (bool, error) {
	tag, err := config.DB.Exec(context.Background(),
		`UPDATE cart SET quantity = $1 WHERE id = $2 AND user_id = $3`,
		quantity, cartItemID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CartRepository) RemoveItem(userID, cartItemID int) (bool, error) {
	tag, err := config.DB.Exec(context.Background(),
		`DELETE FROM cart WHERE id = $1 AND user_id = $2`, cartItemID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
