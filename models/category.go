package models

type Category struct {
	ID               string `bson:"_id,omitempty" json:"id"`
	NameFr           string `bson:"name_fr" json:"nameFr"`
	NameEn           string `bson:"name_en" json:"nameEn"`
	NameAr           string `bson:"name_ar" json:"nameAr"`
	Slug             string `bson:"slug" json:"slug"`
	DescriptionFr    string `bson:"description_fr" json:"descriptionFr"`
	DescriptionEn    string `bson:"description_en" json:"descriptionEn"`
	DescriptionAr    string `bson:"description_ar" json:"descriptionAr"`
	ImageURL         string `bson:"image_url" json:"imageUrl"`
	DisplayOrder     int    `bson:"display_order" json:"displayOrder"`
	ParentCategoryID string `bson:"parent_category_id,omitempty" json:"parentCategoryId,omitempty"`
}

// IsSubcategory reports whether the category hangs under a parent.
func (c *Category) IsSubcategory() bool {
	return c.ParentCategoryID != ""
}
