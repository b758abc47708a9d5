package models

// Product is a perfume listing. Price is an integer in the smallest
// currency unit.
type Product struct {
	BaseModel
	Title        string         `gorm:"size:100;not null" json:"title"`
	Description  *string        `gorm:"size:500" json:"description"`
	TopNote      *string        `gorm:"size:100" json:"topNote"`
	MiddleNote   *string        `gorm:"size:100" json:"middleNote"`
	BaseNote     *string        `gorm:"size:100" json:"baseNote"`
	Price        int            `gorm:"not null" json:"price"`
	MainImageURL *string        `gorm:"size:255" json:"mainImageUrl"`
	BrandID      uint           `gorm:"index;not null" json:"brandId"`
	Images       []ProductImage `json:"images"`
}

// ProductImage is one entry of a product's ordered gallery. Rows only
// exist as a side effect of product create/update; the whole set is
// replaced whenever an update carries an images field.
type ProductImage struct {
	BaseModel
	ImageURL    string  `gorm:"size:255;not null" json:"imageUrl"`
	ImageOrder  int     `gorm:"not null" json:"imageOrder"`
	Description *string `gorm:"size:200" json:"description,omitempty"`
	ProductID   uint    `gorm:"index;not null" json:"productId"`
}
