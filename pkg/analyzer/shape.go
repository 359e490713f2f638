package analyzer

import (
	"fmt"
	"math"
	"strings"
)

const (
	glyphCenter = 50.0
	glyphRadius = 30.0

	overlayBaseScale = 0.7
	overlayMaxGrowth = 0.3
)

// Point is a vertex in the 100x100 glyph viewBox.
type Point struct {
	X float64
	Y float64
}

// PolygonPoints returns the vertices of a regular polygon with n points
// centred in the glyph viewBox, first vertex at the top.
func PolygonPoints(n int, scale float64) []Point {
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts = append(pts, Point{
			X: glyphCenter + glyphRadius*scale*math.Cos(angle),
			Y: glyphCenter + glyphRadius*scale*math.Sin(angle),
		})
	}
	return pts
}

// PointsAttr formats vertices for an SVG points attribute.
func PointsAttr(pts []Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

// OverlayScale grows a category's overlay glyph with its hover time.
func OverlayScale(hoverTicks int) float64 {
	return overlayBaseScale + math.Min(float64(hoverTicks)/100, overlayMaxGrowth)
}
