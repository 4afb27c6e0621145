package importer

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"

	"design-api/internal/design/models"
)

// ============================================================
// SVG Import
// ============================================================

type svgRoot struct {
	XMLName xml.Name    `xml:"svg"`
	Width   float64     `xml:"width,attr"`
	Height  float64     `xml:"height,attr"`
	Rects   []svgRect   `xml:"rect"`
	Circles []svgCircle `xml:"circle"`
	Paths   []svgPath   `xml:"path"`
}

type svgRect struct {
	ID     string  `xml:"id,attr"`
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
}

type svgCircle struct {
	ID string  `xml:"id,attr"`
	CX float64 `xml:"cx,attr"`
	CY float64 `xml:"cy,attr"`
	R  float64 `xml:"r,attr"`
}

type svgPath struct {
	ID string `xml:"id,attr"`
	D  string `xml:"d,attr"`
}

// ImportSVG reads an SVG document and turns it into shapes: one root
// frame sized like the svg element, with every rect, circle and path
// parented to it. The first returned shape is the frame.
func ImportSVG(r io.Reader) ([]models.Shape, error) {
	var svg svgRoot
	if err := xml.NewDecoder(r).Decode(&svg); err != nil {
		return nil, fmt.Errorf("decode svg: %w", err)
	}

	frame := models.Shape{
		ID:      uuid.NewString(),
		Name:    "Imported",
		Type:    models.ShapeFrame,
		Selrect: models.Rect{Width: svg.Width, Height: svg.Height},
	}
	shapes := []models.Shape{frame}

	for _, rect := range svg.Rects {
		shapes = append(shapes, models.Shape{
			ID:      uuid.NewString(),
			Name:    nameOr(rect.ID, "Rect"),
			Type:    models.ShapeRect,
			FrameID: frame.ID,
			Selrect: models.Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height},
		})
	}

	for _, circle := range svg.Circles {
		shapes = append(shapes, models.Shape{
			ID:      uuid.NewString(),
			Name:    nameOr(circle.ID, "Circle"),
			Type:    models.ShapeCircle,
			FrameID: frame.ID,
			Selrect: models.Rect{X: circle.CX - circle.R, Y: circle.CY - circle.R, Width: 2 * circle.R, Height: 2 * circle.R},
		})
	}

	for _, path := range svg.Paths {
		points, err := ParsePath(path.D)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", path.ID, err)
		}
		shapes = append(shapes, models.Shape{
			ID:      uuid.NewString(),
			Name:    nameOr(path.ID, "Path"),
			Type:    models.ShapePath,
			FrameID: frame.ID,
			Selrect: boundingBox(points),
		})
	}

	return shapes, nil
}

func nameOr(id, fallback string) string {
	if id != "" {
		return id
	}
	return fallback
}

// boundingBox is the selrect of a path outline.
func boundingBox(points []models.Point) models.Rect {
	if len(points) == 0 {
		return models.Rect{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return models.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
