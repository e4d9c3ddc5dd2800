package models

import "time"

type Product struct {
	ID            string            `bson:"_id,omitempty" json:"id"`
	CategoryID    string            `bson:"category_id" json:"categoryId"`
	SubcategoryID string            `bson:"subcategory_id,omitempty" json:"subcategoryId,omitempty"`
	NameFr        string            `bson:"name_fr" json:"nameFr"`
	NameEn        string            `bson:"name_en" json:"nameEn"`
	NameAr        string            `bson:"name_ar" json:"nameAr"`
	Slug          string            `bson:"slug" json:"slug"`
	DescriptionFr string            `bson:"description_fr" json:"descriptionFr"`
	DescriptionEn string            `bson:"description_en" json:"descriptionEn"`
	DescriptionAr string            `bson:"description_ar" json:"descriptionAr"`
	Price         float64           `bson:"price" json:"price"`
	OriginalPrice float64           `bson:"original_price,omitempty" json:"originalPrice,omitempty"`
	DiscountPrice float64           `bson:"discounted_price,omitempty" json:"discountedPrice,omitempty"`
	StockQuantity int               `bson:"stock_quantity" json:"stockQuantity"`
	IsAvailable   bool              `bson:"is_available" json:"isAvailable"`
	IsFeatured    bool              `bson:"is_featured" json:"isFeatured"`
	Images        []string          `bson:"images" json:"images"`
	Specs         map[string]string `bson:"specifications" json:"specifications"`
	DisplayOrder  int               `bson:"display_order" json:"displayOrder"`
	CreatedAt     time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updated_at" json:"updatedAt"`
}

// OnPromotion reports whether the product carries a valid promotion pair.
// There is no stored flag: a discounted price counts only when it is positive
// and strictly below the original price.
func (p *Product) OnPromotion() bool {
	return p.DiscountPrice > 0 && p.OriginalPrice > p.DiscountPrice
}

// EffectivePrice is the price a shopper actually pays.
func (p *Product) EffectivePrice() float64 {
	if p.OnPromotion() {
		return p.DiscountPrice
	}
	return p.Price
}

// NormalizeAvailability keeps is_available consistent with stock on the write
// path. Readers must not assume the pair is consistent for existing documents.
func (p *Product) NormalizeAvailability() {
	if p.StockQuantity <= 0 {
		p.IsAvailable = false
	}
}
