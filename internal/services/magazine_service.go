package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/example/vinscent/internal/models"
)

// MagazineService manages magazine CRUD together with each magazine's
// ordered image set. It mirrors ProductService with content in place of
// the price and note fields.
type MagazineService struct {
	db *gorm.DB
}

// NewMagazineService constructs MagazineService.
func NewMagazineService(db *gorm.DB) *MagazineService {
	return &MagazineService{db: db}
}

// CreateMagazineInput is the payload for Create.
type CreateMagazineInput struct {
	Title   string   `json:"title"`
	Content *string  `json:"content"`
	BrandID uint     `json:"brandId"`
	Images  []string `json:"images"`
}

// UpdateMagazineInput is a sparse patch. A non-nil Images pointer, even
// to an empty array, replaces the entire image set.
type UpdateMagazineInput struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	BrandID *uint     `json:"brandId"`
	Images  *[]string `json:"images"`
}

// List returns every magazine with its ordered images.
func (s *MagazineService) List() ([]models.Magazine, error) {
	magazines := []models.Magazine{}
	if err := s.db.Preload("Images", orderByImageOrder).
		Find(&magazines).Error; err != nil {
		return nil, err
	}
	for i := range magazines {
		ensureMagazineImages(&magazines[i])
	}
	return magazines, nil
}

// Get returns a single magazine with its ordered images.
func (s *MagazineService) Get(id uint) (*models.Magazine, error) {
	var magazine models.Magazine
	if err := s.db.Preload("Images", orderByImageOrder).
		First(&magazine, id).Error; err != nil {
		return nil, asNotFound(err, "magazine")
	}
	ensureMagazineImages(&magazine)
	return &magazine, nil
}

// ListByBrand returns a brand's magazines with their ordered images.
func (s *MagazineService) ListByBrand(brandID uint) ([]models.Magazine, error) {
	magazines := []models.Magazine{}
	if err := s.db.Preload("Images", orderByImageOrder).
		Where("brand_id = ?", brandID).
		Find(&magazines).Error; err != nil {
		return nil, err
	}
	for i := range magazines {
		ensureMagazineImages(&magazines[i])
	}
	return magazines, nil
}

// Create validates and inserts a magazine with its images, then
// re-fetches the enriched row.
func (s *MagazineService) Create(in CreateMagazineInput) (*models.Magazine, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationError("magazine title is required")
	}
	if in.BrandID == 0 {
		return nil, validationError("brand id is required")
	}

	magazine := models.Magazine{
		Title:   title,
		Content: trimToNull(in.Content),
		BrandID: in.BrandID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := brandMustExist(tx, in.BrandID); err != nil {
			return err
		}
		if err := tx.Create(&magazine).Error; err != nil {
			return err
		}
		return insertMagazineImages(tx, magazine.ID, in.Images)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(magazine.ID)
}

// Update applies a sparse scalar patch and, when the payload carries an
// images field, replaces the whole image set in the same transaction.
func (s *MagazineService) Update(id uint, in UpdateMagazineInput) (*models.Magazine, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		if title := strings.TrimSpace(*in.Title); title != "" {
			updates["title"] = title
		}
	}
	if in.Content != nil {
		updates["content"] = trimToNull(in.Content)
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
			if err := tx.Model(&models.Magazine{}).Where("id = ?", id).
				Updates(updates).Error; err != nil {
				return err
			}
		}
		if in.Images != nil {
			if err := tx.Where("magazine_id = ?", id).
				Delete(&models.MagazineImage{}).Error; err != nil {
				return err
			}
			return insertMagazineImages(tx, id, *in.Images)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes a magazine and its images inside one transaction,
// images first.
func (s *MagazineService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("magazine_id = ?", id).
			Delete(&models.MagazineImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Magazine{}, id).Error
	})
}

// Count returns the number of magazine rows.
func (s *MagazineService) Count() (int64, error) {
	var total int64
	if err := s.db.Model(&models.Magazine{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func insertMagazineImages(tx *gorm.DB, magazineID uint, urls []string) error {
	for i, raw := range urls {
		url := strings.TrimSpace(raw)
		if url == "" {
			continue
		}
		image := models.MagazineImage{
			ImageURL:   url,
			ImageOrder: i + 1,
			MagazineID: magazineID,
		}
		if err := tx.Create(&image).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureMagazineImages(m *models.Magazine) {
	if m.Images == nil {
		m.Images = []models.MagazineImage{}
	}
}
