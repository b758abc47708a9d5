package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/example/vinscent/internal/models"
)

// BrandService manages brand CRUD.
type BrandService struct {
	db *gorm.DB
}

// NewBrandService constructs BrandService.
func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

// CreateBrandInput is the payload for Create. Optional fields are
// stored as NULL when absent or blank.
type CreateBrandInput struct {
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// UpdateBrandInput is a sparse patch. A nil pointer means the field was
// not sent; a pointer to a blank string clears the column to NULL.
type UpdateBrandInput struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// List returns every brand.
func (s *BrandService) List() ([]models.Brand, error) {
	brands := []models.Brand{}
	if err := s.db.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// Get returns a single brand by id.
func (s *BrandService) Get(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		return nil, asNotFound(err, "brand")
	}
	return &brand, nil
}

// Create validates and inserts a brand.
func (s *BrandService) Create(in CreateBrandInput) (*models.Brand, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationError("brand title is required")
	}

	brand := models.Brand{
		Title:           title,
		Description:     trimToNull(in.Description),
		ProfileImageURL: trimToNull(in.ProfileImageURL),
	}
	if err := s.db.Create(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

// Update applies a sparse patch and returns the re-fetched brand.
func (s *BrandService) Update(id uint, in UpdateBrandInput) (*models.Brand, error) {
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
	if in.ProfileImageURL != nil {
		updates["profile_image_url"] = trimToNull(in.ProfileImageURL)
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.db.Model(&models.Brand{}).Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes a brand. Brands that still own products or magazines
// are rejected so child rows never dangle.
func (s *BrandService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var products int64
		if err := tx.Model(&models.Product{}).
			Where("brand_id = ?", id).Count(&products).Error; err != nil {
			return err
		}
		var magazines int64
		if err := tx.Model(&models.Magazine{}).
			Where("brand_id = ?", id).Count(&magazines).Error; err != nil {
			return err
		}
		if products > 0 || magazines > 0 {
			return ErrBrandInUse
		}
		return tx.Delete(&models.Brand{}, id).Error
	})
}

// Count returns the number of brand rows.
func (s *BrandService) Count() (int64, error) {
	var total int64
	if err := s.db.Model(&models.Brand{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func asNotFound(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return err
}

// trimToNull trims an optional string; blank values become NULL.
func trimToNull(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
