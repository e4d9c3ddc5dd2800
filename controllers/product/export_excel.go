package productcontroller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

// ExportProductsToExcel streams the catalog as an .xlsx workbook for
// back-office reporting.
func ExportProductsToExcel(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := products.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
			return
		}

		header := sheet.AddRow()
		for _, title := range []string{"ID", "Nom (FR)", "Name (EN)", "Catégorie", "Prix", "Prix promo", "Stock", "Disponible", "En avant", "Images"} {
			header.AddCell().Value = title
		}

		for i := range all {
			p := &all[i]
			row := sheet.AddRow()
			row.AddCell().Value = p.ID
			row.AddCell().Value = p.NameFr
			row.AddCell().Value = p.NameEn
			row.AddCell().Value = p.CategoryID
			row.AddCell().SetFloat(p.Price)
			if p.OnPromotion() {
				row.AddCell().SetFloat(p.DiscountPrice)
			} else {
				row.AddCell().Value = ""
			}
			row.AddCell().SetInt(p.StockQuantity)
			row.AddCell().SetBool(p.IsAvailable)
			row.AddCell().SetBool(p.IsFeatured)
			row.AddCell().Value = strings.Join(p.Images, ", ")
		}

		filename := fmt.Sprintf("produits-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
		}
	}
}
