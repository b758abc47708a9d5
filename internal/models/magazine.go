package models

// Magazine is a brand-authored article.
type Magazine struct {
	BaseModel
	Title   string          `gorm:"size:100;not null" json:"title"`
	Content *string         `gorm:"type:text" json:"content"`
	BrandID uint            `gorm:"index;not null" json:"brandId"`
	Images  []MagazineImage `json:"images"`
}

// MagazineImage follows the same lifecycle rules as ProductImage.
type MagazineImage struct {
	BaseModel
	ImageURL   string `gorm:"size:255;not null" json:"imageUrl"`
	ImageOrder int    `gorm:"not null" json:"imageOrder"`
	MagazineID uint   `gorm:"index;not null" json:"magazineId"`
}
