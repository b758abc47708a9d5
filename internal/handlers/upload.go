package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/vinscent/internal/config"
)

// UploadHandler stores uploaded catalog images on local disk and hands
// back the URL they will be served under.
type UploadHandler struct {
	uploadDir string
	maxSize   int64
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{uploadDir: cfg.UploadDir, maxSize: cfg.MaxUploadSize}
}

// UploadImage accepts a single multipart image file.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file field is required")
	}

	if file.Size > h.maxSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "file too large")
	}

	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return fiber.NewError(fiber.StatusBadRequest, "only image files are allowed")
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"imageUrl": "/uploads/" + name,
	})
}
