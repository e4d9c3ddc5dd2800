package i18n

import "github.com/ThaRealJozef/DimaVelo-sub000/models"

// ProductName resolves a product's display name.
func ProductName(p *models.Product, lang Language) string {
	return Localized{Fr: p.NameFr, En: p.NameEn, Ar: p.NameAr}.Resolve(lang)
}

// ProductDescription resolves a product's description.
func ProductDescription(p *models.Product, lang Language) string {
	return Localized{Fr: p.DescriptionFr, En: p.DescriptionEn, Ar: p.DescriptionAr}.Resolve(lang)
}

// CategoryName resolves a category's display name.
func CategoryName(c *models.Category, lang Language) string {
	return Localized{Fr: c.NameFr, En: c.NameEn, Ar: c.NameAr}.Resolve(lang)
}

// CategoryDescription resolves a category's description.
func CategoryDescription(c *models.Category, lang Language) string {
	return Localized{Fr: c.DescriptionFr, En: c.DescriptionEn, Ar: c.DescriptionAr}.Resolve(lang)
}
