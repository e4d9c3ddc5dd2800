package categorycontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThaRealJozef/DimaVelo-sub000/models"
	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

type CategoryInput struct {
	NameFr           string `json:"nameFr" binding:"required"`
	NameEn           string `json:"nameEn"`
	NameAr           string `json:"nameAr"`
	Slug             string `json:"slug" binding:"required"`
	DescriptionFr    string `json:"descriptionFr"`
	DescriptionEn    string `json:"descriptionEn"`
	DescriptionAr    string `json:"descriptionAr"`
	ImageURL         string `json:"imageUrl"`
	DisplayOrder     int    `json:"displayOrder"`
	ParentCategoryID string `json:"parentCategoryId"`
}

func (in *CategoryInput) toModel() models.Category {
	return models.Category{
		NameFr:           in.NameFr,
		NameEn:           in.NameEn,
		NameAr:           in.NameAr,
		Slug:             in.Slug,
		DescriptionFr:    in.DescriptionFr,
		DescriptionEn:    in.DescriptionEn,
		DescriptionAr:    in.DescriptionAr,
		ImageURL:         in.ImageURL,
		DisplayOrder:     in.DisplayOrder,
		ParentCategoryID: in.ParentCategoryID,
	}
}

// GetCategories lists top-level categories in display order.
func GetCategories(categories repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetSubcategories lists the children of one category.
func GetSubcategories(categories repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.ListSubcategories(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subcategories"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateCategory adds a category or subcategory.
func CreateCategory(categories repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := input.toModel()
		if err := categories.Create(c.Request.Context(), &category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategory replaces a category.
func UpdateCategory(categories repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := input.toModel()
		category.ID = c.Param("id")

		err := categories.Update(c.Request.Context(), &category)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category.
func DeleteCategory(categories repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := categories.Delete(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
