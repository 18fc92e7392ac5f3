package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	concavehull "github.com/sixfold-origami/concave-hull"
)

// Basic CLI to interface with the concave hull library. Input is a
// headerless CSV of "x,y" rows; the hull polyline is written back out as
// CSV in winding order, and can optionally be rendered to a PNG.

const imgPadding = 10.0

var (
	input     = kingpin.Arg("input", "Path to input CSV of x,y points.").Required().String()
	concavity = kingpin.Arg("concavity", "Concavity parameter to use.").Required().Float64()
	output    = kingpin.Flag("output", "Path to output polyline points to.").Short('o').Default("output.csv").String()
	render    = kingpin.Flag("render", "Path to render a PNG of the points and hull to.").Short('r').String()
	show      = kingpin.Flag("show", "Display the rendered PNG inline (imgcat).").Bool()
)

func main() {
	kingpin.Parse()

	points, err := readPoints(*input)
	if err != nil {
		kingpin.Fatalf("reading %s: %v", *input, err)
	}

	fmt.Printf("Generating concave hull for %s [concavity: %v]\n", *input, *concavity)

	hull, err := concavehull.ConcaveHull(points, *concavity)
	if err != nil {
		kingpin.Fatalf("computing hull: %v", err)
	}

	if err := writeHull(*output, hull); err != nil {
		kingpin.Fatalf("writing %s: %v", *output, err)
	}
	fmt.Printf("Wrote %d hull points to %s\n", len(hull), *output)

	if *render != "" {
		if err := drawPointsAndHull(*render, points, hull); err != nil {
			kingpin.Fatalf("rendering %s: %v", *render, err)
		}
		if *show {
			imgcat.CatFile(*render, os.Stdout)
		}
	}
}

func readPoints(path string) ([]concavehull.Point[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([]concavehull.Point[float64], 0, len(records))
	for _, record := range records {
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, err
		}
		points = append(points, concavehull.Point[float64]{X: x, Y: y})
	}
	return points, nil
}

func writeHull(path string, hull []concavehull.HullPoint[float64]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	for _, hp := range hull {
		record := []string{
			strconv.FormatFloat(hp.Point.X, 'g', -1, 64),
			strconv.FormatFloat(hp.Point.Y, 'g', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// drawPointsAndHull renders the cloud in white and the hull ring in red,
// fading each segment toward pink along the winding so the direction is
// visible. Coordinates are mirrored about the x axis before drawing, since
// images are y-down but the hull math is y-up.
func drawPointsAndHull(path string, points []concavehull.Point[float64], hull []concavehull.HullPoint[float64]) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	minX -= imgPadding
	minY -= imgPadding
	maxX += imgPadding
	maxY += imgPadding

	width := int(maxX - minX)
	height := int(maxY - minY)
	pointSize := math.Max(float64(max(width, height))/250, 2)

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip to y-up
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for k, hp := range hull {
		next := hull[(k+1)%len(hull)]
		frac := float64(k) / float64(len(hull))
		c.SetRGB255(255, int(200*frac), int(200*frac))
		c.DrawLine(hp.Point.X, hp.Point.Y, next.Point.X, next.Point.Y)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, pointSize)
		c.Fill()
	}

	return c.SavePNG(path)
}
