package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonPoints_FirstVertexAtTop(t *testing.T) {
	pts := PolygonPoints(4, 1)
	assert.Len(t, pts, 4)
	assert.InDelta(t, 50, pts[0].X, 1e-9)
	assert.InDelta(t, 20, pts[0].Y, 1e-9)
	assert.InDelta(t, 80, pts[1].X, 1e-9)
	assert.Equal(t, "50.00,20.00 80.00,50.00 50.00,80.00 20.00,50.00", PointsAttr(pts))
}

func TestOverlayScale(t *testing.T) {
	assert.InDelta(t, 0.7, OverlayScale(0), 1e-9)
	assert.InDelta(t, 0.85, OverlayScale(15), 1e-9)
	assert.InDelta(t, 1.0, OverlayScale(500), 1e-9)
}
