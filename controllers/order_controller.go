package controllers

import (
	"log"
	"net/http"
	"strconv"

	"bananina-api/models"
	"bananina-api/repositories"
	"bananina-api/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	checkout  *services.CheckoutService
	orderRepo *repositories.OrderRepository
}

func NewOrderController(checkout *services.CheckoutService) *OrderController {
	return &OrderController{
		checkout:  checkout,
		orderRepo: repositories.NewOrderRepository(),
	}
}

// @Summary Create order
// @Description Convert the authenticated user's cart into an order
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Shipping address"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	userID := c.GetInt("user_id")

	// A non-integer address_id fails binding here, before any cart read.
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, models.ErrInvalidAddress.Error()))
		return
	}

	detail, err := ctrl.checkout.PlaceOrder(c.Request.Context(), userID, req.AddressID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order created successfully",
		Data:    gin.H{"order": detail},
	})
}

func respondOrderError(c *gin.Context, err error) {
	if models.IsBusinessError(err) {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, err.Error()))
		return
	}
	log.Println("Order placement failed:", err)
	c.JSON(http.StatusInternalServerError,
		models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
}

// @Summary Get my orders
// @Description Get the authenticated user's orders, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")
	page, limit := paginationParams(c, 10)

	orders, total, err := ctrl.orderRepo.GetUserOrders(userID, page, limit)
	if err != nil {
		log.Println("Failed to list orders:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}

	c.JSON(http.StatusOK, paginatedResponse("Orders retrieved successfully", orders, page, limit, total))
}

// @Summary Get order by ID
// @Description Get one of the authenticated user's orders, fully hydrated
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	userID := c.GetInt("user_id")

	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Invalid order ID"))
		return
	}

	detail, err := ctrl.orderRepo.GetOrderDetail(id, userID)
	if err == repositories.ErrOrderNotFound {
		c.JSON(http.StatusNotFound,
			models.NewErrorResponse(models.ErrorTypeRequest, "Order not found"))
		return
	}
	if err != nil {
		log.Println("Failed to load order:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    gin.H{"order": detail},
	})
}
