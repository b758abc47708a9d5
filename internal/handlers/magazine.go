package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/vinscent/internal/services"
)

// MagazineHandler manages magazine CRUD endpoints.
type MagazineHandler struct {
	magazines *services.MagazineService
}

// NewMagazineHandler constructs MagazineHandler.
func NewMagazineHandler(magazines *services.MagazineService) *MagazineHandler {
	return &MagazineHandler{magazines: magazines}
}

// ListMagazines returns all magazines with their images. Supports
// ?brandId= filtering and ?count=true.
func (h *MagazineHandler) ListMagazines(c *fiber.Ctx) error {
	if c.Query("count") == "true" {
		count, err := h.magazines.Count()
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"count": count}})
	}

	if raw := c.Query("brandId"); raw != "" {
		brandID, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid brand id")
		}
		magazines, err := h.magazines.ListByBrand(clampID(brandID))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": magazines})
	}

	magazines, err := h.magazines.List()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": magazines})
}

// GetMagazine returns a single magazine with its images.
func (h *MagazineHandler) GetMagazine(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	magazine, err := h.magazines.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": magazine})
}

// CreateMagazine persists a new magazine and its images.
func (h *MagazineHandler) CreateMagazine(c *fiber.Ctx) error {
	var in services.CreateMagazineInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	magazine, err := h.magazines.Create(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": magazine})
}

// UpdateMagazine applies a sparse patch; an images field replaces the
// whole image set.
func (h *MagazineHandler) UpdateMagazine(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var in services.UpdateMagazineInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	magazine, err := h.magazines.Update(id, in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": magazine})
}

// DeleteMagazine removes a magazine together with its images.
func (h *MagazineHandler) DeleteMagazine(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.magazines.Delete(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"id": id, "deleted": true}})
}
