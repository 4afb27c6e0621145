package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"design-api/internal/design/models"
)

const sampleSVG = `<svg width="400" height="300" xmlns="http://www.w3.org/2000/svg">
  <rect id="Card" x="20" y="30" width="120" height="60"/>
  <circle id="Dot" cx="200" cy="100" r="15"/>
  <path id="Zig" d="M 10 10 L 60 10 L 60 40 Z"/>
</svg>`

func TestImportSVG(t *testing.T) {
	shapes, err := ImportSVG(strings.NewReader(sampleSVG))
	require.NoError(t, err)
	require.Len(t, shapes, 4)

	frame := shapes[0]
	assert.Equal(t, models.ShapeFrame, frame.Type)
	assert.Empty(t, frame.FrameID)
	assert.Equal(t, models.Rect{Width: 400, Height: 300}, frame.Selrect)

	rect := shapes[1]
	assert.Equal(t, "Card", rect.Name)
	assert.Equal(t, models.ShapeRect, rect.Type)
	assert.Equal(t, frame.ID, rect.FrameID)
	assert.Equal(t, models.Rect{X: 20, Y: 30, Width: 120, Height: 60}, rect.Selrect)

	circle := shapes[2]
	assert.Equal(t, models.ShapeCircle, circle.Type)
	assert.Equal(t, models.Rect{X: 185, Y: 85, Width: 30, Height: 30}, circle.Selrect)

	path := shapes[3]
	assert.Equal(t, models.ShapePath, path.Type)
	assert.Equal(t, models.Rect{X: 10, Y: 10, Width: 50, Height: 30}, path.Selrect)
}

func TestImportSVG_BadXML(t *testing.T) {
	_, err := ImportSVG(strings.NewReader("not xml"))
	assert.Error(t, err)
}

func TestParsePath(t *testing.T) {
	points, err := ParsePath("M 0 0 h 10 v 5 H 0 Z")
	require.NoError(t, err)
	require.Len(t, points, 5)
	assert.Equal(t, models.Point{X: 10, Y: 0}, points[1])
	assert.Equal(t, models.Point{X: 10, Y: 5}, points[2])
	assert.Equal(t, models.Point{X: 0, Y: 5}, points[3])
	assert.Equal(t, points[0], points[4])
}

func TestParsePath_RelativeAndCommas(t *testing.T) {
	points, err := ParsePath("m 5,5 l 10,0 10,20")
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, models.Point{X: 25, Y: 25}, points[2])
}

func TestParsePath_Empty(t *testing.T) {
	_, err := ParsePath("   ")
	assert.Error(t, err)
}
