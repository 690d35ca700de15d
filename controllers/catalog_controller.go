package controllers

import (
	"log"
	"net/http"
	"strconv"

	"bananina-api/models"
	"bananina-api/repositories"
	"bananina-api/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogRepo *repositories.CatalogRepository
}

func NewCatalogController() *CatalogController {
	return &CatalogController{
		catalogRepo: repositories.NewCatalogRepository(),
	}
}

// @Summary Get all categories
// @Description Get list of all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.catalogRepo.GetAllCategories()
	if err != nil {
		log.Println("Failed to list categories:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved successfully",
		Data:    categories,
	})
}

// @Summary Get all brands
// @Description Get list of all brands
// @Tags Brands
// @Produce json
// @Success 200 {object} models.Response
// @Router /brands [get]
func (ctrl *CatalogController) GetAllBrands(c *gin.Context) {
	brands, err := ctrl.catalogRepo.GetAllBrands()
	if err != nil {
		log.Println("Failed to list brands:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Brands retrieved successfully",
		Data:    brands,
	})
}

// @Summary Create category
// @Description Create a category (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param category body models.CreateCategoryRequest true "Category name"
// @Success 201 {object} models.Response
// @Router /admin/categories [post]
func (ctrl *CatalogController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Category name is required"))
		return
	}

	category, err := ctrl.catalogRepo.CreateCategory(req.Name, utils.Slugify(req.Name))
	if err != nil {
		log.Println("Failed to create category:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// @Summary Update category
// @Description Rename a category (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body models.CreateCategoryRequest true "Category name"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/categories/{id} [patch]
func (ctrl *CatalogController) UpdateCategory(c *gin.Context) {
	ctrl.updateNamed(c, "Category", ctrl.catalogRepo.UpdateCategory)
}

// @Summary Update brand
// @Description Rename a brand (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param brand body models.CreateBrandRequest true "Brand name"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/brands/{id} [patch]
func (ctrl *CatalogController) UpdateBrand(c *gin.Context) {
	ctrl.updateNamed(c, "Brand", ctrl.catalogRepo.UpdateBrand)
}

func (ctrl *CatalogController) updateNamed(c *gin.Context, entity string, update func(int, string, string) (bool, error)) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Invalid "+entity+" ID"))
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, entity+" name is required"))
		return
	}

	updated, err := update(id, req.Name, utils.Slugify(req.Name))
	if err != nil {
		log.Printf("Failed to update %s: %v", entity, err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound,
			models.NewErrorResponse(models.ErrorTypeRequest, entity+" not found"))
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: entity + " updated successfully",
		Data:    gin.H{"id": id, "name": req.Name},
	})
}

// @Summary Create brand
// @Description Create a brand (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param brand body models.CreateBrandRequest true "Brand name"
// @Success 201 {object} models.Response
// @Router /admin/brands [post]
func (ctrl *CatalogController) CreateBrand(c *gin.Context) {
	var req models.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Brand name is required"))
		return
	}

	brand, err := ctrl.catalogRepo.CreateBrand(req.Name, utils.Slugify(req.Name))
	if err != nil {
		log.Println("Failed to create brand:", err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Brand created successfully",
		Data:    brand,
	})
}

// @Summary Delete category
// @Description Delete a category (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (ctrl *CatalogController) DeleteCategory(c *gin.Context) {
	ctrl.deleteNamed(c, "Category", ctrl.catalogRepo.DeleteCategory)
}

// @Summary Delete brand
// @Description Delete a brand (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/brands/{id} [delete]
func (ctrl *CatalogController) DeleteBrand(c *gin.Context) {
	ctrl.deleteNamed(c, "Brand", ctrl.catalogRepo.DeleteBrand)
}

func (ctrl *CatalogController) deleteNamed(c *gin.Context, entity string, del func(int) (bool, error)) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(models.ErrorTypeRequest, "Invalid "+entity+" ID"))
		return
	}

	deleted, err := del(id)
	if err != nil {
		log.Printf("Failed to delete %s: %v", entity, err)
		c.JSON(http.StatusInternalServerError,
			models.NewErrorResponse(models.ErrorTypeDatabase, "A database error occurred"))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound,
			models.NewErrorResponse(models.ErrorTypeRequest, entity+" not found"))
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: entity + " deleted successfully",
		Data:    gin.H{"id": id},
	})
}
