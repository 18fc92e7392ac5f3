package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// dbgDraw renders the cloud and its hull ring to a PNG and cats it to the
// terminal. Coordinates are y-up, so the context is flipped before
// drawing.
func dbgDraw[T Float](points []Point[T], hull []HullPoint[T], scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	if len(hull) > 0 {
		c.SetLineWidth(2)
		c.MoveTo(float64(hull[0].Point.X), float64(hull[0].Point.Y))
		for _, hp := range hull[1:] {
			c.LineTo(float64(hp.Point.X), float64(hp.Point.Y))
		}
		c.ClosePath()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(float64(p.X), float64(p.Y), 2/scale)
		c.Fill()
	}

	c.SavePNG("/tmp/concave_hull.png")
	imgcat.CatFile("/tmp/concave_hull.png", os.Stdout)
}
