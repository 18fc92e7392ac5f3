package internal

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file loads the SVG fixtures and outputs point clouds. It is not a
// full (or even correct) SVG handler: it parses the SVG and collects every
// circle's center, in document order. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point[float64] {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point[float64], 0, len(circles))
	for _, circle := range circles {
		x, err := strconv.ParseFloat(circle.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circle.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circle.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circle.Attributes["cy"], err)
		}
		points = append(points, Point[float64]{X: x, Y: y})
	}
	return points
}

// Some ad hoc code specified fixtures

// UnitSquare is four points one unit apart, with no interior points.
func UnitSquare() []Point[float64] {
	return []Point[float64]{
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 0, Y: 2},
		{X: 1, Y: 2},
	}
}

// NotchedTrapezoid is a trapezoid with a single interior point near its
// longest (bottom) edge. With a small enough concavity, the bottom edge
// opens around index 4 and the ring becomes 0→4→1→2→3; with a large one,
// the convex ring 0→1→2→3 survives untouched.
func NotchedTrapezoid() []Point[float64] {
	return []Point[float64]{
		{X: 0, Y: 0},
		{X: 8, Y: 0},
		{X: 7, Y: 5},
		{X: 0, Y: 5},
		{X: 4, Y: 1},
	}
}
