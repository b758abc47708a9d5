package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/vinscent/internal/services"
)

// BrandHandler manages brand CRUD endpoints.
type BrandHandler struct {
	brands *services.BrandService
}

// NewBrandHandler constructs BrandHandler.
func NewBrandHandler(brands *services.BrandService) *BrandHandler {
	return &BrandHandler{brands: brands}
}

// ListBrands returns all brands, or only their count with ?count=true.
func (h *BrandHandler) ListBrands(c *fiber.Ctx) error {
	if c.Query("count") == "true" {
		count, err := h.brands.Count()
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"count": count}})
	}

	brands, err := h.brands.List()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": brands})
}

// GetBrand returns a single brand by ID.
func (h *BrandHandler) GetBrand(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	brand, err := h.brands.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": brand})
}

// CreateBrand persists a new brand.
func (h *BrandHandler) CreateBrand(c *fiber.Ctx) error {
	var in services.CreateBrandInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	brand, err := h.brands.Create(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": brand})
}

// UpdateBrand applies a sparse patch to an existing brand.
func (h *BrandHandler) UpdateBrand(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var in services.UpdateBrandInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	brand, err := h.brands.Update(id, in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": brand})
}

// DeleteBrand removes a brand by ID.
func (h *BrandHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.brands.Delete(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"id": id, "deleted": true}})
}
