package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"bananina-api/config"
	"bananina-api/models"
	"bananina-api/repositories"
	"bananina-api/utils"
)

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
	}
}

func productCacheKey(page, limit int, filter repositories.ProductFilter) string {
	return fmt.Sprintf("products_list_p%d_l%d_s%s_c%d_b%d",
		page, limit, filter.Search, filter.CategoryID, filter.BrandID)
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

func (s *ProductService) GetAllProducts(page, limit int, filter repositories.ProductFilter) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	cacheKey := productCacheKey(page, limit, filter)
	ctx := context.Background()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var response models.PaginationResponse
			if json.Unmarshal([]byte(cached), &response) == nil {
				return &response, nil
			}
		}
	}

	products, total, err := s.productRepo.GetAllProducts(page, limit, filter)
	if err != nil {
		return nil, err
	}

	response := &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if config.RedisClient != nil {
		if jsonData, err := json.Marshal(response); err == nil {
			config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	return response, nil
}

func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	return s.productRepo.GetProductByID(id)
}

func (s *ProductService) CreateProduct(req models.CreateProductRequest, imageURL string) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Slug:        utils.Slugify(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Weight:      req.Weight,
		IsActive:    req.IsActive,
	}
	if req.CategoryID > 0 {
		product.CategoryID = &req.CategoryID
	}
	if req.BrandID > 0 {
		product.BrandID = &req.BrandID
	}
	if req.SalePrice > 0 {
		product.SalePrice = &req.SalePrice
	}

	if err := s.productRepo.CreateProduct(product); err != nil {
		return nil, err
	}

	if imageURL != "" {
		if err := s.productRepo.AddGalleryImage(product.ID, imageURL, true); err != nil {
			return nil, err
		}
		product.ImageURL = imageURL
	}

	invalidateProductCache()
	return product, nil
}

func (s *ProductService) UpdateProduct(id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetProductByID(id)
	if err != nil {
		return nil, errors.New("product not found")
	}

	if req.Name != "" {
		product.Name = req.Name
		product.Slug = utils.Slugify(req.Name)
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.CategoryID > 0 {
		product.CategoryID = &req.CategoryID
	}
	if req.BrandID > 0 {
		product.BrandID = &req.BrandID
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.SalePrice > 0 {
		product.SalePrice = &req.SalePrice
	}
	if req.Stock > 0 {
		product.Stock = req.Stock
	}
	if req.Weight > 0 {
		product.Weight = req.Weight
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.UpdateProduct(product); err != nil {
		return nil, err
	}

	invalidateProductCache()
	return product, nil
}

func (s *ProductService) DeleteProduct(id int) error {
	if _, err := s.productRepo.GetProductByID(id); err != nil {
		return errors.New("product not found")
	}
	if err := s.productRepo.DeleteProduct(id); err != nil {
		return err
	}
	invalidateProductCache()
	return nil
}
