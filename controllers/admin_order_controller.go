package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"bananina-api/models"
	"bananina-api/repositories"

	"github.com/gin-gonic/gin"
)

type AdminOrderController struct {
	orderRepo *repositories.OrderRepository
}

func NewAdminOrderController() *AdminOrderController {
	return &AdminOrderController{
		orderRepo: repositories.NewOrderRepository(),
	}
}

// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/orders [get]
func (ctrl *AdminOrderController) GetAllOrders(c *gin.Context) {
	page, limit := paginationParams(c, 10)

	status := c.Query("status")
	if status == "All" {
		status = ""
	}

	orders, total, err := ctrl.orderRepo.GetAllOrders(page, limit, status)
	if err != nil {
		log.Println("Failed to list orders:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}

	c.JSON(http.StatusOK, paginatedResponse("Orders retrieved successfully", orders, page, limit, total))
}

// @Summary Get order by ID
// @Description Get any order's detail (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *AdminOrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Invalid order ID"))
		return
	}

	detail, err := ctrl.orderRepo.GetOrderDetail(id, 0)
	if errors.Is(err, repositories.ErrOrderNotFound) {
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

// @Summary Update order shipping
// @Description Record courier details and mark the order shipped (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param shipping body models.UpdateShippingRequest true "Shipping details"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/shipping [put]
func (ctrl *AdminOrderController) UpdateShipping(c *gin.Context) {
	adminID := c.GetInt("user_id")

	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Invalid order ID"))
		return
	}

	var req models.UpdateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Courier name and tracking number are required"))
		return
	}

	if req.EstimatedDeliveryDate != "" {
		if _, err := time.Parse("2006-01-02", req.EstimatedDeliveryDate); err != nil {
			c.JSON(http.StatusBadRequest,
				models.NewErrorResponse(models.ErrorTypeRequest, "Estimated delivery date must be YYYY-MM-DD"))
			return
		}
	}

	err := ctrl.orderRepo.UpsertShippingDetails(id, adminID, req)
	if errors.Is(err, repositories.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound,
			models.NewErrorResponse(models.ErrorTypeRequest, "Order not found"))
		return
	}
	if err != nil {
		log.Println("Failed to update shipping:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Shipping details updated successfully",
		Data: gin.H{
			"order_id":        id,
			"status":          models.OrderStatusShipped,
			"courier_name":    req.CourierName,
			"tracking_number": req.TrackingNumber,
		},
	})
}
