// Package render rasterizes GeoJSON geometries into preview images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"

	"github.com/woozymasta/geojson"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	xdraw "golang.org/x/image/draw"
)

// Options controls the output image.
type Options struct {
	Width      int
	Height     int
	Background color.RGBA
	Stroke     color.RGBA
}

// DefaultOptions returns the options used when a field is left zero.
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Background: color.RGBA{245, 245, 245, 255},
		Stroke:     color.RGBA{30, 90, 200, 255},
	}
}

// DefaultQuality is the WebP quality used when SaveWebP gets zero.
const DefaultQuality = 85

// supersample factor: geometry is drawn on a larger canvas and scaled down
// for cheap anti-aliasing.
const supersample = 4

// Render draws every geometry in doc onto a single image. Documents without
// any coordinates cannot be rendered.
func Render(doc geojson.GeoJSON, opts Options) (image.Image, error) {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Background == (color.RGBA{}) {
		opts.Background = def.Background
	}
	if opts.Stroke == (color.RGBA{}) {
		opts.Stroke = def.Stroke
	}

	geoms := collect(doc)

	vp, ok := viewportFor(geoms)
	if !ok {
		return nil, fmt.Errorf("render: document has no coordinates")
	}

	w, h := opts.Width*supersample, opts.Height*supersample
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: opts.Background}, image.Point{}, draw.Src)

	vp.fit(w, h)
	for _, g := range geoms {
		drawGeometry(canvas, vp, g, opts.Stroke)
	}

	log.Debug().
		Int("geometries", len(geoms)).
		Int("width", opts.Width).
		Int("height", opts.Height).
		Msg("Rendered document")

	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return out, nil
}

// SaveWebP encodes the image as WebP and writes it to path.
func SaveWebP(path string, img image.Image, quality float32) error {
	if quality <= 0 {
		quality = DefaultQuality
	}

	data, err := webp.EncodeRGBA(img, quality)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// collect flattens the document into its drawable geometries.
func collect(doc geojson.GeoJSON) []*geojson.Geometry {
	switch d := doc.(type) {
	case *geojson.Geometry:
		return []*geojson.Geometry{d}
	case *geojson.Feature:
		if d.Geometry == nil {
			return nil
		}
		return []*geojson.Geometry{d.Geometry}
	case *geojson.FeatureCollection:
		var geoms []*geojson.Geometry
		for _, f := range d.Features {
			if f.Geometry != nil {
				geoms = append(geoms, f.Geometry)
			}
		}
		return geoms
	}
	return nil
}

// viewport maps projected unit-square coordinates to canvas pixels.
type viewport struct {
	minX, minY, maxX, maxY float64
	scale, cx, cy          float64
}

func viewportFor(geoms []*geojson.Geometry) (*viewport, bool) {
	vp := &viewport{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}

	any := false
	for _, g := range geoms {
		eachPosition(g, func(p geojson.Position) {
			x, y := Project(p.Lng(), p.Lat())
			vp.minX = math.Min(vp.minX, x)
			vp.minY = math.Min(vp.minY, y)
			vp.maxX = math.Max(vp.maxX, x)
			vp.maxY = math.Max(vp.maxY, y)
			any = true
		})
	}

	return vp, any
}

// fit computes scale and offsets so the bounds fill the canvas with a small
// margin, preserving aspect ratio.
func (vp *viewport) fit(w, h int) {
	const margin = 0.05

	spanX := vp.maxX - vp.minX
	spanY := vp.maxY - vp.minY
	// Degenerate spans (single point, horizontal line) still need a scale.
	if spanX == 0 {
		spanX = 1e-9
	}
	if spanY == 0 {
		spanY = 1e-9
	}

	usableW := float64(w) * (1 - 2*margin)
	usableH := float64(h) * (1 - 2*margin)
	vp.scale = math.Min(usableW/spanX, usableH/spanY)

	vp.cx = float64(w) / 2
	vp.cy = float64(h) / 2
}

func (vp *viewport) pixel(p geojson.Position) (int, int) {
	x, y := Project(p.Lng(), p.Lat())
	px := (x-(vp.minX+vp.maxX)/2)*vp.scale + vp.cx
	py := (y-(vp.minY+vp.maxY)/2)*vp.scale + vp.cy
	return int(px), int(py)
}

// eachPosition visits every position of a geometry, recursing into
// collections.
func eachPosition(g *geojson.Geometry, fn func(geojson.Position)) {
	switch g.Type {
	case geojson.TypePoint:
		fn(g.Point)
	case geojson.TypeMultiPoint:
		for _, p := range g.MultiPoint {
			fn(p)
		}
	case geojson.TypeLineString:
		for _, p := range g.LineString {
			fn(p)
		}
	case geojson.TypeMultiLineString:
		for _, line := range g.MultiLineString {
			for _, p := range line {
				fn(p)
			}
		}
	case geojson.TypePolygon:
		for _, ring := range g.Polygon {
			for _, p := range ring {
				fn(p)
			}
		}
	case geojson.TypeMultiPolygon:
		for _, poly := range g.MultiPolygon {
			for _, ring := range poly {
				for _, p := range ring {
					fn(p)
				}
			}
		}
	case geojson.TypeGeometryCollection:
		for _, sub := range g.Geometries {
			eachPosition(sub, fn)
		}
	}
}

func drawGeometry(img *image.RGBA, vp *viewport, g *geojson.Geometry, c color.RGBA) {
	switch g.Type {
	case geojson.TypePoint:
		drawMarker(img, vp, g.Point, c)
	case geojson.TypeMultiPoint:
		for _, p := range g.MultiPoint {
			drawMarker(img, vp, p, c)
		}
	case geojson.TypeLineString:
		drawPolyline(img, vp, g.LineString, c)
	case geojson.TypeMultiLineString:
		for _, line := range g.MultiLineString {
			drawPolyline(img, vp, line, c)
		}
	case geojson.TypePolygon:
		for _, ring := range g.Polygon {
			drawPolyline(img, vp, ring, c)
		}
	case geojson.TypeMultiPolygon:
		for _, poly := range g.MultiPolygon {
			for _, ring := range poly {
				drawPolyline(img, vp, ring, c)
			}
		}
	case geojson.TypeGeometryCollection:
		for _, sub := range g.Geometries {
			drawGeometry(img, vp, sub, c)
		}
	}
}

func drawMarker(img *image.RGBA, vp *viewport, p geojson.Position, c color.RGBA) {
	x, y := vp.pixel(p)
	r := supersample * 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			img.SetRGBA(x+dx, y+dy, c)
		}
	}
}

func drawPolyline(img *image.RGBA, vp *viewport, line []geojson.Position, c color.RGBA) {
	for i := 1; i < len(line); i++ {
		x0, y0 := vp.pixel(line[i-1])
		x1, y1 := vp.pixel(line[i])
		drawLine(img, x0, y0, x1, y1, c)
	}
}

// drawLine plots a thick segment using simple stepping.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	steps := int(math.Max(math.Abs(float64(x1-x0)), math.Abs(float64(y1-y0))))
	if steps == 0 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(float64(x0) + t*float64(x1-x0)))
		y := int(math.Round(float64(y0) + t*float64(y1-y0)))
		for dy := -supersample / 2; dy <= supersample/2; dy++ {
			for dx := -supersample / 2; dx <= supersample/2; dx++ {
				img.SetRGBA(x+dx, y+dy, c)
			}
		}
	}
}
