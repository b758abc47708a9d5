package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/example/vinscent/internal/models"
)

// ProductService manages product CRUD together with each product's
// ordered image gallery.
type ProductService struct {
	db *gorm.DB
}

// NewProductService constructs ProductService.
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProductInput is the payload for Create. Images holds gallery
// URLs in display order; blank entries are skipped.
type CreateProductInput struct {
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	TopNote      *string  `json:"topNote"`
	MiddleNote   *string  `json:"middleNote"`
	BaseNote     *string  `json:"baseNote"`
	Price        int      `json:"price"`
	MainImageURL *string  `json:"mainImageUrl"`
	BrandID      uint     `json:"brandId"`
	Images       []string `json:"images"`
}

// UpdateProductInput is a sparse patch. A non-nil Images pointer, even
// to an empty array, replaces the entire gallery.
type UpdateProductInput struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	TopNote      *string   `json:"topNote"`
	MiddleNote   *string   `json:"middleNote"`
	BaseNote     *string   `json:"baseNote"`
	Price        *int      `json:"price"`
	MainImageURL *string   `json:"mainImageUrl"`
	BrandID      *uint     `json:"brandId"`
	Images       *[]string `json:"images"`
}

// List returns every product with its ordered images.
func (s *ProductService) List() ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.Preload("Images", orderByImageOrder).
		Find(&products).Error; err != nil {
		return nil, err
	}
	for i := range products {
		ensureProductImages(&products[i])
	}
	return products, nil
}

// Get returns a single product with its ordered images.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Images", orderByImageOrder).
		First(&product, id).Error; err != nil {
		return nil, asNotFound(err, "product")
	}
	ensureProductImages(&product)
	return &product, nil
}

// ListByBrand returns a brand's products with their ordered images.
func (s *ProductService) ListByBrand(brandID uint) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.Preload("Images", orderByImageOrder).
		Where("brand_id = ?", brandID).
		Find(&products).Error; err != nil {
		return nil, err
	}
	for i := range products {
		ensureProductImages(&products[i])
	}
	return products, nil
}

// Create validates and inserts a product together with its gallery,
// then re-fetches the enriched row so callers always see the canonical
// shape.
func (s *ProductService) Create(in CreateProductInput) (*models.Product, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationError("product title is required")
	}
	if in.Price <= 0 {
		return nil, validationError("valid product price is required")
	}
	if in.BrandID == 0 {
		return nil, validationError("brand id is required")
	}

	product := models.Product{
		Title:        title,
		Description:  trimToNull(in.Description),
		TopNote:      trimToNull(in.TopNote),
		MiddleNote:   trimToNull(in.MiddleNote),
		BaseNote:     trimToNull(in.BaseNote),
		Price:        in.Price,
		MainImageURL: trimToNull(in.MainImageURL),
		BrandID:      in.BrandID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := brandMustExist(tx, in.BrandID); err != nil {
			return err
		}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		return insertProductImages(tx, product.ID, in.Images)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(product.ID)
}

// Update applies a sparse scalar patch and, when the payload carries an
// images field, replaces the whole gallery. Both writes share one
// transaction.
func (s *ProductService) Update(id uint, in UpdateProductInput) (*models.Product, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		if title := strings.TrimSpace(*in.Title); title != "" {
			updates["title"] = title
		}
	}
	if in.Description != nil {
		updates["description"] = trimToNull(in.Description)
	}
	if in.TopNote != nil {
		updates["top_note"] = trimToNull(in.TopNote)
	}
	if in.MiddleNote != nil {
		updates["middle_note"] = trimToNull(in.MiddleNote)
	}
	if in.BaseNote != nil {
		updates["base_note"] = trimToNull(in.BaseNote)
	}
	if in.Price != nil && *in.Price > 0 {
		updates["price"] = *in.Price
	}
	if in.MainImageURL != nil {
		updates["main_image_url"] = trimToNull(in.MainImageURL)
	}
	if in.BrandID != nil {
		updates["brand_id"] = *in.BrandID
	}

	if len(updates) == 0 && in.Images == nil {
		return nil, ErrNoFieldsToUpdate
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if in.BrandID != nil {
			if err := brandMustExist(tx, *in.BrandID); err != nil {
				return err
			}
		}
		if len(updates) > 0 {
			if err := tx.Model(&models.Product{}).Where("id = ?", id).
				Updates(updates).Error; err != nil {
				return err
			}
		}
		if in.Images != nil {
			if err := tx.Where("product_id = ?", id).
				Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			return insertProductImages(tx, id, *in.Images)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes a product and its images. The images go first, inside
// the same transaction, so no orphaned rows survive.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).
			Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}

// Count returns the number of product rows.
func (s *ProductService) Count() (int64, error) {
	var total int64
	if err := s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// insertProductImages writes one row per non-blank URL. Order follows
// the input array position, so skipped blanks leave gaps; the store
// tolerates both gaps and duplicates.
func insertProductImages(tx *gorm.DB, productID uint, urls []string) error {
	for i, raw := range urls {
		url := strings.TrimSpace(raw)
		if url == "" {
			continue
		}
		image := models.ProductImage{
			ImageURL:   url,
			ImageOrder: i + 1,
			ProductID:  productID,
		}
		if err := tx.Create(&image).Error; err != nil {
			return err
		}
	}
	return nil
}

func brandMustExist(tx *gorm.DB, brandID uint) error {
	var total int64
	if err := tx.Model(&models.Brand{}).
		Where("id = ?", brandID).Count(&total).Error; err != nil {
		return err
	}
	if total == 0 {
		return validationError("brand does not exist")
	}
	return nil
}

func orderByImageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("image_order ASC")
}

func ensureProductImages(p *models.Product) {
	if p.Images == nil {
		p.Images = []models.ProductImage{}
	}
}
