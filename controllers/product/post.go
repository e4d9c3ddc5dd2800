package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThaRealJozef/DimaVelo-sub000/models"
	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

// ProductInput is the admin panel's create/update payload. Images are hosted
// URLs; the panel uploads files through /admin/images first.
type ProductInput struct {
	CategoryID    string            `json:"categoryId" binding:"required"`
	SubcategoryID string            `json:"subcategoryId"`
	NameFr        string            `json:"nameFr" binding:"required"`
	NameEn        string            `json:"nameEn"`
	NameAr        string            `json:"nameAr"`
	Slug          string            `json:"slug" binding:"required"`
	DescriptionFr string            `json:"descriptionFr"`
	DescriptionEn string            `json:"descriptionEn"`
	DescriptionAr string            `json:"descriptionAr"`
	Price         float64           `json:"price" binding:"required,gt=0"`
	OriginalPrice float64           `json:"originalPrice"`
	DiscountPrice float64           `json:"discountedPrice"`
	StockQuantity int               `json:"stockQuantity" binding:"min=0"`
	IsAvailable   bool              `json:"isAvailable"`
	IsFeatured    bool              `json:"isFeatured"`
	Images        []string          `json:"images"`
	Specs         map[string]string `json:"specifications"`
	DisplayOrder  int               `json:"displayOrder"`
}

func (in *ProductInput) toModel() models.Product {
	return models.Product{
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		NameFr:        in.NameFr,
		NameEn:        in.NameEn,
		NameAr:        in.NameAr,
		Slug:          in.Slug,
		DescriptionFr: in.DescriptionFr,
		DescriptionEn: in.DescriptionEn,
		DescriptionAr: in.DescriptionAr,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		DiscountPrice: in.DiscountPrice,
		StockQuantity: in.StockQuantity,
		IsAvailable:   in.IsAvailable,
		IsFeatured:    in.IsFeatured,
		Images:        in.Images,
		Specs:         in.Specs,
		DisplayOrder:  in.DisplayOrder,
	}
}

// CreateProduct adds a catalog entry.
func CreateProduct(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := input.toModel()
		product.NormalizeAvailability()

		if err := products.Create(c.Request.Context(), &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
