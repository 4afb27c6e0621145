package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"design-api/internal/design/models"
)

// ============================================================
// Path Outline
// ============================================================

var pathCmdRe = regexp.MustCompile(`([MmLlHhVvZz])([^MmLlHhVvZz]*)`)

// ParsePath walks an SVG path's M/L/H/V/Z commands and returns the
// outline points. Curve commands are not supported; the selrect of an
// imported path only needs the straight-line outline.
func ParsePath(d string) ([]models.Point, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, fmt.Errorf("empty path")
	}

	var points []models.Point
	var x, y float64

	for _, match := range pathCmdRe.FindAllStringSubmatch(d, -1) {
		cmd := match[1]
		coords := parseCoords(match[2])

		switch cmd {
		case "M", "L":
			for i := 0; i+1 < len(coords); i += 2 {
				x, y = coords[i], coords[i+1]
				points = append(points, models.Point{X: x, Y: y})
			}
		case "m", "l":
			for i := 0; i+1 < len(coords); i += 2 {
				x += coords[i]
				y += coords[i+1]
				points = append(points, models.Point{X: x, Y: y})
			}
		case "H":
			for _, c := range coords {
				x = c
				points = append(points, models.Point{X: x, Y: y})
			}
		case "h":
			for _, c := range coords {
				x += c
				points = append(points, models.Point{X: x, Y: y})
			}
		case "V":
			for _, c := range coords {
				y = c
				points = append(points, models.Point{X: x, Y: y})
			}
		case "v":
			for _, c := range coords {
				y += c
				points = append(points, models.Point{X: x, Y: y})
			}
		case "Z", "z":
			if len(points) > 0 {
				points = append(points, points[0])
				x, y = points[0].X, points[0].Y
			}
		}
	}

	return points, nil
}

func parseCoords(s string) []float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", " ")

	var coords []float64
	for _, part := range strings.Fields(s) {
		if val, err := strconv.ParseFloat(part, 64); err == nil {
			coords = append(coords, val)
		}
	}
	return coords
}
