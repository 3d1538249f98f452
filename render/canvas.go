package render

import (
	"errors"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/astar"
)

// ErrBadCanvas indicates a non-positive canvas dimension or dot radius.
var ErrBadCanvas = errors.New("render: width, height and radius must be positive")

const (
	wallColor  = "#476042"
	pathColor  = "#1ded0e"
	startColor = "#FF5733"
	goalColor  = "#3F33FF"
)

// Canvas draws walls, visit dots, the path and markers with a fixed dot radius.
// It is not safe for concurrent use.
type Canvas struct {
	dc     *gg.Context
	radius float64
	drawn  int
}

// NewCanvas creates a white width×height canvas whose dots have the given
// radius, normally the search step size.
func NewCanvas(width, height, radius int) (*Canvas, error) {
	if width <= 0 || height <= 0 || radius <= 0 {
		return nil, ErrBadCanvas
	}
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	return &Canvas{dc: dc, radius: float64(radius)}, nil
}

// Visit draws a visit dot for p and returns its draw index as the handle.
// Its signature matches astar.VisitHook.
func (c *Canvas) Visit(p astar.Position, count int) any {
	r, g, b := VisitColor(count)
	c.dc.SetRGB255(r, g, b)
	return c.dot(p)
}

// VisitColor returns the tint for a position popped count times.
func VisitColor(count int) (r, g, b int) {
	g = 255 - 20*count
	if g < 0 {
		g = 0
	}

	return 170, g, 241
}

// DrawWalls fills one pixel per blocked position. The whole wall layer is a
// single draw operation: Drawn grows by one however many positions ps holds.
func (c *Canvas) DrawWalls(ps []astar.Position) {
	c.dc.SetHexColor(wallColor)
	for _, p := range ps {
		c.dc.SetPixel(p.X, p.Y)
	}
	c.drawn++
}

// DrawPath draws a dot for every path position.
func (c *Canvas) DrawPath(path []astar.Position) {
	c.dc.SetHexColor(pathColor)
	for _, p := range path {
		c.dot(p)
	}
}

// DrawMarkers draws the start and goal dots on top of everything else.
func (c *Canvas) DrawMarkers(start, goal astar.Position) {
	c.dc.SetHexColor(startColor)
	c.dot(start)
	c.dc.SetHexColor(goalColor)
	c.dot(goal)
}

// Drawn returns the number of draw operations issued so far: one per dot
// (visit, path or marker) plus one per DrawWalls call.
func (c *Canvas) Drawn() int { return c.drawn }

// Image returns the rendered image.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// SavePNG writes the canvas as PNG to path.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

func (c *Canvas) dot(p astar.Position) int {
	c.dc.DrawCircle(float64(p.X), float64(p.Y), c.radius)
	c.dc.Fill()
	id := c.drawn
	c.drawn++

	return id
}
