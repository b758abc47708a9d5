package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/vinscent/internal/services"
)

// ProductHandler manages product CRUD endpoints.
type ProductHandler struct {
	products *services.ProductService
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts returns all products with their images. Supports
// ?brandId= filtering and ?count=true.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	if c.Query("count") == "true" {
		count, err := h.products.Count()
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
		products, err := h.products.ListByBrand(clampID(brandID))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": products})
	}

	products, err := h.products.List()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": products})
}

// GetProduct returns a single product with its images.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := h.products.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": product})
}

// CreateProduct persists a new product and its gallery.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var in services.CreateProductInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.products.Create(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// UpdateProduct applies a sparse patch; an images field replaces the
// whole gallery.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var in services.UpdateProductInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.products.Update(id, in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": product})
}

// DeleteProduct removes a product together with its images.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.products.Delete(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"id": id, "deleted": true}})
}
