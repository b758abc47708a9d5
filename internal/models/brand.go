package models

// Brand owns products and magazine articles.
type Brand struct {
	BaseModel
	Title           string     `gorm:"size:100;not null" json:"title"`
	Description     *string    `gorm:"size:500" json:"description"`
	ProfileImageURL *string    `gorm:"size:255" json:"profileImageUrl"`
	Products        []Product  `json:"products,omitempty"`
	Magazines       []Magazine `json:"magazines,omitempty"`
}
