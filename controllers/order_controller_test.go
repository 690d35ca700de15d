package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bananina-api/controllers"
	"bananina-api/models"
	"bananina-api/repositories"
	"bananina-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore serves one scripted checkout: a fixed cart, a fixed stock
// level, and an optional injected storage error.
type stubStore struct {
	lines      []models.CartLine
	stock      map[int]int
	insertErr  error
	cartLoaded bool
}

func (s *stubStore) WithinTx(ctx context.Context, fn func(tx repositories.CheckoutTx) error) error {
	return fn(s)
}

func (s *stubStore) CartLines(ctx context.Context, userID int) ([]models.CartLine, error) {
	s.cartLoaded = true
	return s.lines, nil
}

func (s *stubStore) InsertOrder(ctx context.Context, order *models.Order) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	order.ID = 42
	order.CreatedAt = time.Now()
	return nil
}

func (s *stubStore) InsertOrderItems(ctx context.Context, items []models.OrderItem) error {
	return nil
}

func (s *stubStore) ReserveStock(ctx context.Context, productID, quantity int) (bool, error) {
	if s.stock[productID] < quantity {
		return false, nil
	}
	s.stock[productID] -= quantity
	return true, nil
}

func (s *stubStore) ClearCart(ctx context.Context, userID int) error {
	return nil
}

func (s *stubStore) OrderDetail(ctx context.Context, orderID int) (*models.OrderDetail, error) {
	return &models.OrderDetail{ID: orderID, Status: models.OrderStatusPending}, nil
}

func setupRouter(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	checkout := services.NewCheckoutService(store, nil, 50000)
	ctrl := controllers.NewOrderController(checkout)

	router := gin.New()
	router.POST("/orders", func(c *gin.Context) {
		c.Set("user_id", 7)
		c.Next()
	}, ctrl.CreateOrder)
	return router
}

func postOrder(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateOrderSuccess(t *testing.T) {
	store := &stubStore{
		lines: []models.CartLine{{ProductID: 1, ProductName: "Leather Tote", Quantity: 2, UnitPrice: 100000, Stock: 10}},
		stock: map[int]int{1: 10},
	}

	rec := postOrder(setupRouter(store), `{"address_id": 3}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Order models.OrderDetail `json:"order"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Order created successfully", resp.Message)
	assert.Equal(t, 42, resp.Data.Order.ID)
	assert.Equal(t, models.OrderStatusPending, resp.Data.Order.Status)
}

func TestCreateOrderNonIntegerAddress(t *testing.T) {
	store := &stubStore{stock: map[int]int{}}

	rec := postOrder(setupRouter(store), `{"address_id": "abc"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, models.ErrorTypeRequest, resp.Error.Type)
	assert.Equal(t, "Valid shipping address is required", resp.Error.Message)

	// rejected at the boundary, before any cart read
	assert.False(t, store.cartLoaded)
}

func TestCreateOrderMissingAddress(t *testing.T) {
	store := &stubStore{stock: map[int]int{}}

	rec := postOrder(setupRouter(store), `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Valid shipping address is required", decodeError(t, rec).Error.Message)
	assert.False(t, store.cartLoaded)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	store := &stubStore{stock: map[int]int{}}

	rec := postOrder(setupRouter(store), `{"address_id": 3}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, models.ErrorTypeRequest, resp.Error.Type)
	assert.Equal(t, "Cart is empty", resp.Error.Message)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	store := &stubStore{
		lines: []models.CartLine{{ProductID: 1, ProductName: "Silk Scarf", Quantity: 2, UnitPrice: 150000, Stock: 1}},
		stock: map[int]int{1: 1},
	}

	rec := postOrder(setupRouter(store), `{"address_id": 3}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, models.ErrorTypeRequest, resp.Error.Type)
	assert.Equal(t, "Insufficient stock for product: Silk Scarf", resp.Error.Message)
}

func TestCreateOrderStorageFailure(t *testing.T) {
	store := &stubStore{
		lines:     []models.CartLine{{ProductID: 1, ProductName: "Leather Tote", Quantity: 1, UnitPrice: 100000, Stock: 10}},
		stock:     map[int]int{1: 10},
		insertErr: errors.New("pq: connection refused to host 10.0.3.17"),
	}

	rec := postOrder(setupRouter(store), `{"address_id": 3}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, models.ErrorTypeDatabase, resp.Error.Type)
	// internal detail must not leak to the caller
	assert.Equal(t, "A database error occurred", resp.Error.Message)
	assert.NotContains(t, rec.Body.String(), "10.0.3.17")
}
