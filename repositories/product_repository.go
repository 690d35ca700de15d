package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bananina-api/config"
	"bananina-api/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `p.id, p.category_id, p.brand_id, p.name, p.slug, p.description,
	p.price, p.sale_price, p.stock, p.weight, p.is_active,
	COALESCE((SELECT image_url FROM product_galleries
	          WHERE product_id = p.id AND is_primary = TRUE LIMIT 1), ''),
	p.created_at, p.updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.BrandID, &p.Name, &p.Slug, &p.Description,
		&p.Price, &p.SalePrice, &p.Stock, &p.Weight, &p.IsActive,
		&p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type ProductFilter struct {
	Search     string
	CategoryID int
	BrandID    int
}

func (r *ProductRepository) GetAllProducts(page, limit int, filter ProductFilter) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	where := []string{"p.is_active = TRUE", "p.deleted_at IS NULL"}
	args := []interface{}{}
	argIndex := 1

	if filter.Search != "" {
		where = append(where, fmt.Sprintf("p.name ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.CategoryID > 0 {
		where = append(where, fmt.Sprintf("p.category_id = $%d", argIndex))
		args = append(args, filter.CategoryID)
		argIndex++
	}
	if filter.BrandID > 0 {
		where = append(where, fmt.Sprintf("p.brand_id = $%d", argIndex))
		args = append(args, filter.BrandID)
		argIndex++
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	var total int
	err := config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM products p"+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM products p%s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d",
		productColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) GetProductByID(id int) (*models.Product, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM products p WHERE p.id = $1 AND p.is_active = TRUE AND p.deleted_at IS NULL",
		productColumns)
	return scanProduct(config.DB.QueryRow(context.Background(), query, id))
}

func (r *ProductRepository) CreateProduct(product *models.Product) error {
	now := time.Now()
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO products (category_id, brand_id, name, slug, description, price, sale_price,
		                       stock, weight, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at, updated_at`,
		product.CategoryID, product.BrandID, product.Name, product.Slug, product.Description,
		product.Price, product.SalePrice, product.Stock, product.Weight, product.IsActive, now, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) UpdateProduct(product *models.Product) error {
	_, err := config.DB.Exec(context.Background(),
		`UPDATE products SET category_id = $1, brand_id = $2, name = $3, slug = $4,
		 description = $5, price = $6, sale_price = $7, stock = $8, weight = $9,
		 is_active = $10, updated_at = $11 WHERE id = $12`,
		product.CategoryID, product.BrandID, product.Name, product.Slug,
		product.Description, product.Price, product.SalePrice, product.Stock,
		product.Weight, product.IsActive, time.Now(), product.ID)
	return err
}

// DeleteProduct soft-deletes; placed orders keep referencing the row.
func (r *ProductRepository) DeleteProduct(id int) error {
	_, err := config.DB.Exec(context.Background(),
		`UPDATE products SET is_active = FALSE, deleted_at = $1 WHERE id = $2`,
		time.Now(), id)
	return err
}

func (r *ProductRepository) AddGalleryImage(productID int, imageURL string, isPrimary bool) error {
	_, err := config.DB.Exec(context.Background(),
		`INSERT INTO product_galleries (product_id, image_url, is_primary) VALUES ($1, $2, $3)`,
		productID, imageURL, isPrimary)
	return err
}
