package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"design-api/internal/design/document"
	"design-api/internal/design/models"
)

func newTestApp(t *testing.T) (*fiber.App, *document.Store) {
	t.Helper()

	store := document.NewStore()
	handler := NewDesignHandler(store)

	app := fiber.New()
	app.Get("/health/ready", handler.ReadinessProbe)
	api := app.Group("/api/v1")
	api.Post("/shapes", handler.CreateShape)
	api.Post("/shapes/import", handler.ImportSVG)
	api.Get("/shapes/:id", handler.GetShape)
	api.Delete("/shapes/:id", handler.DeleteShape)
	api.Get("/shapes/:id/interactions", handler.ListInteractions)
	api.Post("/shapes/:id/interactions", handler.AddInteraction)
	api.Delete("/shapes/:id/interactions/:index", handler.RemoveInteraction)
	api.Put("/shapes/:id/interactions/:index/event-type", handler.SetEventType)
	api.Put("/shapes/:id/interactions/:index/action-type", handler.SetActionType)
	api.Put("/shapes/:id/interactions/:index/destination", handler.SetDestination)
	api.Put("/shapes/:id/interactions/:index/overlay-pos-type", handler.SetOverlayPosType)
	api.Put("/shapes/:id/interactions/:index/overlay-position", handler.SetOverlayPosition)
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, data
}

func seedShapes(t *testing.T, store *document.Store) (models.Shape, models.Shape, models.Shape) {
	t.Helper()

	frame := store.PutShape(models.Shape{Name: "Screen", Type: models.ShapeFrame, Selrect: models.Rect{Width: 200, Height: 100}})
	button := store.PutShape(models.Shape{Name: "Button", Type: models.ShapeRect, FrameID: frame.ID, Selrect: models.Rect{X: 10, Y: 10, Width: 40, Height: 16}})
	overlay := store.PutShape(models.Shape{Name: "Popup", Type: models.ShapeFrame, Selrect: models.Rect{Width: 50, Height: 20}})
	return frame, button, overlay
}

func TestCreateAndGetShape(t *testing.T) {
	app, _ := newTestApp(t)

	resp, data := doJSON(t, app, "POST", "/api/v1/shapes",
		`{"name":"Screen","type":"frame","selrect":{"width":200,"height":100}}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var shape models.Shape
	require.NoError(t, json.Unmarshal(data, &shape))
	assert.NotEmpty(t, shape.ID)
	assert.Equal(t, models.ShapeFrame, shape.Type)

	resp, data = doJSON(t, app, "GET", "/api/v1/shapes/"+shape.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Shape
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, shape, got)
}

func TestCreateShape_MissingType(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/v1/shapes", `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInteractionFlow(t *testing.T) {
	app, store := newTestApp(t)
	_, button, overlay := seedShapes(t, store)

	base := fmt.Sprintf("/api/v1/shapes/%s/interactions", button.ID)

	// Add the default interaction.
	resp, data := doJSON(t, app, "POST", base, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var list []models.Interaction
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, models.EventClick, list[0].EventType)

	// Switch to open-overlay and point it at the popup frame.
	resp, data = doJSON(t, app, "PUT", base+"/0/action-type", `{"action_type":"open-overlay"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var it models.Interaction
	require.NoError(t, json.Unmarshal(data, &it))
	assert.Equal(t, models.OverlayCenter, it.OverlayPosType)

	resp, data = doJSON(t, app, "PUT", base+"/0/destination",
		fmt.Sprintf(`{"destination":%q}`, overlay.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &it))
	require.NotNil(t, it.OverlayPosition)
	assert.Equal(t, models.Point{X: 75, Y: 40}, *it.OverlayPosition)

	// Toggle bottom-left on, then off again (falls back to manual).
	resp, data = doJSON(t, app, "PUT", base+"/0/overlay-pos-type", `{"pos_type":"bottom-left","toggle":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &it))
	assert.Equal(t, models.OverlayBottomLeft, it.OverlayPosType)
	assert.Equal(t, models.Point{X: 0, Y: 80}, *it.OverlayPosition)

	resp, data = doJSON(t, app, "PUT", base+"/0/overlay-pos-type", `{"pos_type":"bottom-left","toggle":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &it))
	assert.Equal(t, models.OverlayManual, it.OverlayPosType)

	// Drag the overlay by hand.
	resp, data = doJSON(t, app, "PUT", base+"/0/overlay-position", `{"x":12.5,"y":-3}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &it))
	assert.Equal(t, models.Point{X: 12.5, Y: -3}, *it.OverlayPosition)

	// Remove it.
	resp, data = doJSON(t, app, "DELETE", base+"/0", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Empty(t, list)
}

func TestSetEventType_UnknownEnumIs400(t *testing.T) {
	app, store := newTestApp(t)
	_, button, _ := seedShapes(t, store)

	base := fmt.Sprintf("/api/v1/shapes/%s/interactions", button.ID)
	resp, _ := doJSON(t, app, "POST", base, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", base+"/0/event-type", `{"event_type":"triple-click"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInteractionOps_UnknownShapeIs404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/v1/shapes/missing/interactions", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/api/v1/shapes/missing/interactions/0/event-type", `{"event_type":"click"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOverlayOps_WrongActionIs400(t *testing.T) {
	app, store := newTestApp(t)
	_, button, _ := seedShapes(t, store)

	base := fmt.Sprintf("/api/v1/shapes/%s/interactions", button.ID)
	resp, _ := doJSON(t, app, "POST", base, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Default action is navigate: overlay ops must be rejected.
	resp, _ = doJSON(t, app, "PUT", base+"/0/overlay-pos-type", `{"pos_type":"center"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", base+"/0/overlay-position", `{"x":1,"y":2}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteShape_CascadesOverHTTP(t *testing.T) {
	app, store := newTestApp(t)
	_, button, overlay := seedShapes(t, store)

	base := fmt.Sprintf("/api/v1/shapes/%s/interactions", button.ID)
	resp, _ := doJSON(t, app, "POST", base,
		fmt.Sprintf(`{"event_type":"click","action_type":"navigate","destination":%q}`, overlay.ID))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/api/v1/shapes/"+overlay.ID, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, data := doJSON(t, app, "GET", base, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []models.Interaction
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Empty(t, list)
}

func TestListInteractions_EmptyIsArray(t *testing.T) {
	app, store := newTestApp(t)
	_, button, _ := seedShapes(t, store)

	resp, data := doJSON(t, app, "GET", fmt.Sprintf("/api/v1/shapes/%s/interactions", button.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}
