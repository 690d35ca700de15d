package models

import "time"

type Product struct {
	ID          int        `json:"id"`
	CategoryID  *int       `json:"category_id,omitempty"`
	BrandID     *int       `json:"brand_id,omitempty"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Price       int        `json:"price"`
	SalePrice   *int       `json:"sale_price,omitempty"`
	Stock       int        `json:"stock"`
	Weight      int        `json:"weight"`
	IsActive    bool       `json:"is_active"`
	ImageURL    string     `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type Brand struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
