package controllers

import (
	"log"
	"net/http"
	"strconv"

	"bananina-api/models"
	"bananina-api/repositories"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartRepo    *repositories.CartRepository
	productRepo *repositories.ProductRepository
}

func NewCartController() *CartController {
	return &CartController{
		cartRepo:    repositories.NewCartRepository(),
		productRepo: repositories.NewProductRepository(),
	}
}

// @Summary Get cart
// @Description Get the authenticated user's cart items
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	items, err := ctrl.cartRepo.GetCartItems(userID)
	if err != nil {
		log.Println("Failed to load cart:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data:    items,
	})
}

// @Summary Add to cart
// @Description Add a product to the cart; adding again bumps the quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Product and quantity"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Valid product_id and quantity are required"))
		return
	}

	if _, err := ctrl.productRepo.GetProductByID(req.ProductID); err != nil {
		c.JSON(http.StatusNotFound,
			models.NewErrorResponse(models.ErrorTypeRequest, "Product not found"))
		return
	}

	if err := ctrl.cartRepo.AddItem(userID, req.ProductID, req.Quantity); err != nil {
		log.Println("Failed to add cart item:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Item added to cart",
	})
}

// @Summary Update cart item
// @Description Change the quantity of a cart item
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param item body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{id} [patch]
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Invalid cart item ID"))
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Valid quantity is required"))
		return
	}

	updated, err := ctrl.cartRepo.UpdateQuantity(userID, id, req.Quantity)
	if err != nil {
		log.Println("Failed to update cart item:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound,
			models.NewErrorResponse(models.ErrorTypeRequest, "Cart item not found"))
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart item updated",
	})
}

// @Summary Remove cart item
// @Description Remove an item from the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{id} [delete]
func (ctrl *CartController) RemoveCartItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Invalid cart item ID"))
		return
	}

	removed, err := ctrl.cartRepo.RemoveItem(userID, id)
	if err != nil {
		log.Println("Failed to remove cart item:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound,
			models.NewErrorResponse(models.ErrorTypeRequest, "Cart item not found"))
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart item removed",
	})
}
