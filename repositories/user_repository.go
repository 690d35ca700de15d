package repositories

import (
	"context"
	"time"

	"bananina-api/config"
	"bananina-api/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (email, password, role, full_name, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return config.DB.QueryRow(context.Background(), query,
		user.Email, user.Password, user.Role, user.FullName, user.Phone, time.Now(),
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	query := `SELECT id, email, password, role, full_name, phone, created_at FROM users WHERE email = $1`

	var u models.User
	err := config.DB.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Email, &u.Password, &u.Role, &u.FullName, &u.Phone, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id int) (*models.User, error) {
	query := `SELECT id, email, password, role, full_name, phone, created_at FROM users WHERE id = $1`

	var u models.User
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Email, &u.Password, &u.Role, &u.FullName, &u.Phone, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
