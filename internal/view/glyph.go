package view

import (
	"bytes"
	"html/template"
	"io"
	"math"

	"imagine-algorithm/pkg/analyzer"

	svg "github.com/ajstarks/svgo"
)

const (
	// glyph geometry is defined on a 100x100 box; svgo takes integer
	// coordinates, so everything is drawn at ten times that.
	unit    = 10
	viewBox = 100 * unit

	accent = "#BFE752"
)

func scaled(pts []analyzer.Point) (xs, ys []int) {
	xs = make([]int, len(pts))
	ys = make([]int, len(pts))
	for i, p := range pts {
		xs[i] = int(math.Round(p.X * unit))
		ys[i] = int(math.Round(p.Y * unit))
	}
	return xs, ys
}

func start(w io.Writer, size int) *svg.SVG {
	canvas := svg.New(w)
	canvas.Startview(size, size, 0, 0, viewBox, viewBox)
	return canvas
}

// WriteTile draws the outline glyph of one category, highlighted while it
// is the active category.
func WriteTile(w io.Writer, points int, active bool, size int) {
	stroke := "#000"
	if active {
		stroke = accent
	}
	canvas := start(w, size)
	xs, ys := scaled(analyzer.PolygonPoints(points, 1))
	canvas.Polygon(xs, ys, "fill:none;stroke:"+stroke+";stroke-width:10")
	canvas.End()
}

// WriteOverlay stacks every category's glyph, each grown by its hover time.
func WriteOverlay(w io.Writer, cats []analyzer.CategoryView, size int) {
	canvas := start(w, size)
	for _, c := range cats {
		xs, ys := scaled(analyzer.PolygonPoints(c.Points, c.OverlayScale))
		canvas.Polygon(xs, ys, "fill:"+accent+";fill-opacity:0.15;stroke:"+accent+";stroke-width:5")
	}
	canvas.End()
}

// WriteCard draws a workshop card's filled polygon.
func WriteCard(w io.Writer, sides int, color string, size int) {
	canvas := start(w, size)
	pts := analyzer.PolygonPoints(sides, 50.0/30.0)
	xs, ys := scaled(pts)
	canvas.Polygon(xs, ys, "fill:"+color)
	canvas.End()
}

func inline(draw func(io.Writer)) template.HTML {
	var buf bytes.Buffer
	draw(&buf)
	return template.HTML(buf.String())
}
