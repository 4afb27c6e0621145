package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"design-api/internal/design/document"
	"design-api/internal/design/importer"
	"design-api/internal/design/models"
)

// ============================================================
// Shape Handlers
// ============================================================

type DesignHandler struct {
	store *document.Store
}

func NewDesignHandler(store *document.Store) *DesignHandler {
	return &DesignHandler{store: store}
}

type createShapeRequest struct {
	Name    string           `json:"name"`
	Type    models.ShapeType `json:"type"`
	FrameID string           `json:"frame_id"`
	Selrect models.Rect      `json:"selrect"`
}

// CreateShape inserts a shape into the document.
func (h *DesignHandler) CreateShape(c fiber.Ctx) error {
	log.Printf("[DESIGN] Create shape")

	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "body required"})
	}

	var req createShapeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}
	if req.Type == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "shape type required"})
	}

	shape := h.store.PutShape(models.Shape{
		Name:    req.Name,
		Type:    req.Type,
		FrameID: req.FrameID,
		Selrect: req.Selrect,
	})
	return c.Status(http.StatusCreated).JSON(shape)
}

// GetShape returns a shape by id.
func (h *DesignHandler) GetShape(c fiber.Ctx) error {
	shape, ok := h.store.Shape(c.Params("id"))
	if !ok {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "shape not found"})
	}
	return c.JSON(shape)
}

// DeleteShape removes a shape and cascades over interactions that
// targeted it.
func (h *DesignHandler) DeleteShape(c fiber.Ctx) error {
	id := c.Params("id")
	log.Printf("[DESIGN] Delete shape %s", id)

	if !h.store.DeleteShape(id) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "shape not found"})
	}
	return c.SendStatus(http.StatusNoContent)
}

// ImportSVG seeds the document from an uploaded SVG file.
func (h *DesignHandler) ImportSVG(c fiber.Ctx) error {
	log.Printf("[DESIGN] Import SVG, content length: %d", len(c.Body()))

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "file required in multipart/form-data"})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to open file"})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read file"})
	}

	shapes, err := importer.ImportSVG(bytes.NewReader(data))
	if err != nil {
		log.Printf("[DESIGN] Import error: %v", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	for i, shape := range shapes {
		shapes[i] = h.store.PutShape(shape)
	}

	log.Printf("[DESIGN] Imported %d shapes", len(shapes))
	return c.Status(http.StatusCreated).JSON(shapes)
}
