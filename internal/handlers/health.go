package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler reports store reachability.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// TestConnection runs a trivial query against the store.
func (h *HealthHandler) TestConnection(c *fiber.Ctx) error {
	if err := h.db.Exec("SELECT 1").Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "database connection ok"})
}
