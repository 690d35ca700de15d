package controllers

import (
	"log"
	"net/http"
	"strconv"

	"bananina-api/libs"
	"bananina-api/models"
	"bananina-api/repositories"
	"bananina-api/services"
	"bananina-api/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{
		productService: services.NewProductService(),
	}
}

// @Summary Get all products
// @Description Get paginated list of active products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Search by product name"
// @Param category_id query int false "Filter by category"
// @Param brand_id query int false "Filter by brand"
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, limit := paginationParams(c, 10)

	categoryID, _ := strconv.Atoi(c.Query("category_id"))
	brandID, _ := strconv.Atoi(c.Query("brand_id"))
	filter := repositories.ProductFilter{
		Search:     c.Query("search"),
		CategoryID: categoryID,
		BrandID:    brandID,
	}

	response, err := ctrl.productService.GetAllProducts(page, limit, filter)
	if err != nil {
		log.Println("Failed to list products:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get product by ID
// @Description Get an active product's detail
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Invalid product ID"))
		return
	}

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound,
			models.NewErrorResponse(models.ErrorTypeRequest, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved successfully",
		Data:    product,
	})
}

// @Summary Create product
// @Description Create a product with an optional primary image (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param category_id formData int false "Category ID"
// @Param brand_id formData int false "Brand ID"
// @Param price formData int true "Price"
// @Param sale_price formData int false "Sale price"
// @Param stock formData int false "Stock"
// @Param weight formData int false "Weight in grams"
// @Param image formData file false "Primary image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, err.Error()))
		return
	}
	req.IsActive = true

	imageURL, err := ctrl.storeImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, err.Error()))
		return
	}

	product, err := ctrl.productService.CreateProduct(req, imageURL)
	if err != nil {
		log.Println("Failed to create product:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// storeImage saves the uploaded primary image, preferring Cloudinary when
// configured and falling back to local disk.
func (ctrl *ProductController) storeImage(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	localPath, err := utils.UploadFile(c, fileHeader, "primary")
	if err != nil {
		return "", err
	}

	if libs.CloudinaryEnabled() {
		url, err := libs.UploadToCloudinary(utils.FullUploadPath(localPath))
		if err != nil {
			log.Println("Cloudinary upload failed, keeping local file:", err)
			return "/assets/images/" + localPath, nil
		}
		utils.DeleteFile(localPath)
		return url, nil
	}

	return "/assets/images/" + localPath, nil
}

// @Summary Update product
// @Description Update product fields (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Invalid product ID"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, err.Error()))
		return
	}

	product, err := ctrl.productService.UpdateProduct(id, req)
	if err != nil {
		c.JSON(http.StatusNotFound,
			models.NewErrorResponse(models.ErrorTypeRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// @Summary Delete product
// @Description Soft-delete a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Invalid product ID"))
		return
	}

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		c.JSON(http.StatusNotFound,
			models.NewErrorResponse(models.ErrorTypeRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product deleted successfully",
		Data:    gin.H{"id": id},
	})
}
