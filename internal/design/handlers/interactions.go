package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"design-api/internal/design/document"
	"design-api/internal/design/interactions"
	"design-api/internal/design/models"
)

// ============================================================
// Interaction Handlers
// ============================================================

// ListInteractions returns a shape's interaction list.
func (h *DesignHandler) ListInteractions(c fiber.Ctx) error {
	shape, ok := h.store.Shape(c.Params("id"))
	if !ok {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "shape not found"})
	}
	list := shape.Interactions
	if list == nil {
		list = []models.Interaction{}
	}
	return c.JSON(list)
}

// AddInteraction appends an interaction to a shape. An empty body adds
// the default click/navigate record.
func (h *DesignHandler) AddInteraction(c fiber.Ctx) error {
	shapeID := c.Params("id")
	log.Printf("[DESIGN] Add interaction to %s", shapeID)

	it := interactions.Default()
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &it); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
		}
	}

	shape, err := h.store.Apply(shapeID, func(shape models.Shape, objects models.ObjectsMap) ([]models.Interaction, error) {
		return interactions.Add(shape.Interactions, it)
	})
	if err != nil {
		return interactionError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(shape.Interactions)
}

// RemoveInteraction drops the interaction at index.
func (h *DesignHandler) RemoveInteraction(c fiber.Ctx) error {
	shapeID := c.Params("id")
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid interaction index"})
	}
	log.Printf("[DESIGN] Remove interaction %d from %s", index, shapeID)

	shape, err := h.store.Apply(shapeID, func(shape models.Shape, objects models.ObjectsMap) ([]models.Interaction, error) {
		return interactions.Remove(shape.Interactions, index)
	})
	if err != nil {
		return interactionError(c, err)
	}
	return c.JSON(shape.Interactions)
}

type setEventTypeRequest struct {
	EventType models.EventType `json:"event_type"`
}

// SetEventType switches the event classifier of one interaction.
func (h *DesignHandler) SetEventType(c fiber.Ctx) error {
	var req setEventTypeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	return h.applyAt(c, func(it models.Interaction, shape models.Shape, objects models.ObjectsMap) (models.Interaction, error) {
		return interactions.SetEventType(it, req.EventType)
	})
}

type setActionTypeRequest struct {
	ActionType models.ActionType `json:"action_type"`
}

// SetActionType switches the action classifier of one interaction.
func (h *DesignHandler) SetActionType(c fiber.Ctx) error {
	var req setActionTypeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	return h.applyAt(c, func(it models.Interaction, shape models.Shape, objects models.ObjectsMap) (models.Interaction, error) {
		return interactions.SetActionType(it, req.ActionType)
	})
}

type setDestinationRequest struct {
	Destination *string `json:"destination"`
}

// SetDestination points the interaction at another shape, or clears it
// with a null destination.
func (h *DesignHandler) SetDestination(c fiber.Ctx) error {
	var req setDestinationRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	return h.applyAt(c, func(it models.Interaction, shape models.Shape, objects models.ObjectsMap) (models.Interaction, error) {
		return interactions.SetDestination(it, req.Destination, shape, objects)
	})
}

type setOverlayPosTypeRequest struct {
	PosType models.OverlayPositioning `json:"pos_type"`
	Toggle  bool                      `json:"toggle"`
}

// SetOverlayPosType selects an overlay positioning. With toggle set,
// re-selecting the active choice switches it off to manual.
func (h *DesignHandler) SetOverlayPosType(c fiber.Ctx) error {
	var req setOverlayPosTypeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	return h.applyAt(c, func(it models.Interaction, shape models.Shape, objects models.ObjectsMap) (models.Interaction, error) {
		if req.Toggle {
			return interactions.ToggleOverlayPosType(it, req.PosType, shape, objects)
		}
		return interactions.SetOverlayPosType(it, req.PosType, shape, objects)
	})
}

// SetOverlayPosition places the overlay by hand.
func (h *DesignHandler) SetOverlayPosition(c fiber.Ctx) error {
	var req models.Point
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	return h.applyAt(c, func(it models.Interaction, shape models.Shape, objects models.ObjectsMap) (models.Interaction, error) {
		return interactions.SetOverlayPosition(it, req)
	})
}

// applyAt runs a single-interaction transformation at :index of shape
// :id and responds with the updated record.
func (h *DesignHandler) applyAt(c fiber.Ctx, fn func(it models.Interaction, shape models.Shape, objects models.ObjectsMap) (models.Interaction, error)) error {
	shapeID := c.Params("id")
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid interaction index"})
	}

	shape, err := h.store.Apply(shapeID, func(shape models.Shape, objects models.ObjectsMap) ([]models.Interaction, error) {
		if index < 0 || index >= len(shape.Interactions) {
			return nil, interactions.ErrInvalidArgument
		}
		it, err := fn(shape.Interactions[index], shape, objects)
		if err != nil {
			return nil, err
		}
		return interactions.Update(shape.Interactions, index, it)
	})
	if err != nil {
		return interactionError(c, err)
	}
	return c.JSON(shape.Interactions[index])
}

func interactionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, document.ErrShapeNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "shape not found"})
	case errors.Is(err, interactions.ErrInvalidArgument):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("[DESIGN] Unexpected error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
