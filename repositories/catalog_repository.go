package repositories

import (
	"context"
	"time"

	"bananina-api/config"
	"bananina-api/models"
)

// CatalogRepository covers the simple name+slug entities: categories and
// brands. Both tables have the same shape, so the SQL is shared.
type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) listNamed(table string) ([]models.Category, error) {
	rows, err := config.DB.Query(context.Background(),
		"SELECT id, name, slug, created_at FROM "+table+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.Category{}
	for rows.Next() {
		var e models.Category
		if err := rows.Scan(&e.ID, &e.Name, &e.Slug, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *CatalogRepository) GetAllCategories() ([]models.Category, error) {
	return r.listNamed("categories")
}

func (r *CatalogRepository) GetAllBrands() ([]models.Brand, error) {
	categories, err := r.listNamed("brands")
	if err != nil {
		return nil, err
	}
	brands := make([]models.Brand, len(categories))
	for i, c := range categories {
		brands[i] = models.Brand(c)
	}
	return brands, nil
}

func (r *CatalogRepository) createNamed(table, name, slug string) (int, time.Time, error) {
	var id int
	var createdAt time.Time
	err := config.DB.QueryRow(context.Background(),
		"INSERT INTO "+table+" (name, slug, created_at) VALUES ($1, $2, $3) RETURNING id, created_at",
		name, slug, time.Now()).Scan(&id, &createdAt)
	return id, createdAt, err
}

func (r *CatalogRepository) CreateCategory(name, slug string) (*models.Category, error) {
	id, createdAt, err := r.createNamed("categories", name, slug)
	if err != nil {
		return nil, err
	}
	return &models.Category{ID: id, Name: name, Slug: slug, CreatedAt: createdAt}, nil
}

func (r *CatalogRepository) CreateBrand(name, slug string) (*models.Brand, error) {
	id, createdAt, err := r.createNamed("brands", name, slug)
	if err != nil {
		return nil, err
	}
	return &models.Brand{ID: id, Name: name, Slug: slug, CreatedAt: createdAt}, nil
}

func (r *CatalogRepository) updateNamed(table string, id int, name, slug string) (bool, error) {
	tag, err := config.DB.Exec(context.Background(),
		"UPDATE "+table+" SET name = $1, slug = $2 WHERE id = $3", name, slug, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CatalogRepository) UpdateCategory(id int, name, slug string) (bool, error) {
	return r.updateNamed("categories", id, name, slug)
}

func (r *CatalogRepository) UpdateBrand(id int, name, slug string) (bool, error) {
	return r.updateNamed("brands", id, name, slug)
}

func (r *CatalogRepository) deleteNamed(table string, id int) (bool, error) {
	tag, err := config.DB.Exec(context.Background(),
		"DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CatalogRepository) DeleteCategory(id int) (bool, error) {
	return r.deleteNamed("categories", id)
}

func (r *CatalogRepository) DeleteBrand(id int) (bool, error) {
	return r.deleteNamed("brands", id)
}
