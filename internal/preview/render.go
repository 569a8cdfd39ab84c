package preview

import (
	"errors"
	"image"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/image/vector"

	"github.com/ironsheep/roadcal/internal/calibration"
	"github.com/ironsheep/roadcal/internal/classify"
	"github.com/ironsheep/roadcal/internal/config"
	"github.com/ironsheep/roadcal/internal/geometry"
)

// ErrNothingToDraw is returned when no trace has a vertex.
var ErrNothingToDraw = errors.New("no traces to draw")

// maxCanvasSide bounds each side of the canvas before scaling.
const maxCanvasSide = 16384

// Stroke is one polyline to draw.
type Stroke struct {
	Vertices []geometry.Point
	Color    colorful.Color
}

// Result contains the rendered preview.
type Result struct {
	Width  int
	Height int
	// Origin is the SVG user-space point drawn at pixel (0,0) before scaling.
	Origin geometry.Point
	Image  *image.NRGBA
}

// FromMeasurements turns measured traces into strokes coloured by category.
func FromMeasurements(ms []calibration.Measurement, colors map[classify.Category]colorful.Color) []Stroke {
	strokes := make([]Stroke, 0, len(ms))
	for _, m := range ms {
		strokes = append(strokes, Stroke{
			Vertices: m.Trace.Vertices(),
			Color:    colors[m.Category],
		})
	}
	return strokes
}

// Render draws strokes onto a canvas fitted to their bounds.
func Render(strokes []Stroke, opts config.PreviewOptions) (*Result, error) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range strokes {
		for _, v := range s.Vertices {
			minX, minY = math.Min(minX, v.X), math.Min(minY, v.Y)
			maxX, maxY = math.Max(maxX, v.X), math.Max(maxY, v.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return nil, ErrNothingToDraw
	}

	margin := float64(opts.Margin) + opts.StrokeWidth/2
	// Checked as floats so huge or non-finite extents cannot overflow int.
	extentX := maxX - minX + 2*margin
	extentY := maxY - minY + 2*margin
	if !(extentX < maxCanvasSide) || !(extentY < maxCanvasSide) {
		return nil, pkgerrors.Errorf("canvas %gx%g exceeds %d pixels per side", extentX, extentY, maxCanvasSide)
	}
	origin := geometry.Point{X: math.Floor(minX - margin), Y: math.Floor(minY - margin)}
	width := int(math.Ceil(maxX+margin-origin.X)) + 1
	height := int(math.Ceil(maxY+margin-origin.Y)) + 1

	background, err := colorful.Hex(opts.Background)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "background %q", opts.Background)
	}

	layer := image.NewRGBA(image.Rect(0, 0, width, height))
	z := vector.NewRasterizer(width, height)
	for _, s := range strokes {
		drawStroke(z, layer, s, origin, opts.StrokeWidth)
	}

	canvas := imaging.Clone(blend.Normal(imaging.New(width, height, background), layer))

	if opts.GridSpacing > 0 {
		GridOverlay(canvas, opts.GridSpacing, origin, gridColor)
	}

	if opts.Scale != 1.0 && opts.Scale > 0 {
		newWidth := max(1, int(float64(width)*opts.Scale))
		newHeight := max(1, int(float64(height)*opts.Scale))
		canvas = imaging.Resize(canvas, newWidth, newHeight, imaging.Lanczos)
	}

	return &Result{
		Width:  canvas.Bounds().Dx(),
		Height: canvas.Bounds().Dy(),
		Origin: origin,
		Image:  canvas,
	}, nil
}

// drawStroke fills one quad per segment and one square per vertex.
func drawStroke(z *vector.Rasterizer, dst draw.Image, s Stroke, origin geometry.Point, width float64) {
	src := image.NewUniform(s.Color)
	h := width / 2

	fill := func(pts ...geometry.Point) {
		z.Reset(dst.Bounds().Dx(), dst.Bounds().Dy())
		z.DrawOp = draw.Over
		z.MoveTo(float32(pts[0].X-origin.X), float32(pts[0].Y-origin.Y))
		for _, p := range pts[1:] {
			z.LineTo(float32(p.X-origin.X), float32(p.Y-origin.Y))
		}
		z.ClosePath()
		z.Draw(dst, dst.Bounds(), src, image.Point{})
	}

	for _, v := range s.Vertices {
		fill(
			geometry.Point{X: v.X - h, Y: v.Y - h},
			geometry.Point{X: v.X + h, Y: v.Y - h},
			geometry.Point{X: v.X + h, Y: v.Y + h},
			geometry.Point{X: v.X - h, Y: v.Y + h},
		)
	}

	for i := 1; i < len(s.Vertices); i++ {
		a, b := s.Vertices[i-1], s.Vertices[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Sqrt(dx*dx + dy*dy)
		if length == 0 {
			continue
		}
		n := geometry.Point{X: -dy / length * h, Y: dx / length * h}
		fill(
			geometry.Point{X: a.X + n.X, Y: a.Y + n.Y},
			geometry.Point{X: b.X + n.X, Y: b.Y + n.Y},
			geometry.Point{X: b.X - n.X, Y: b.Y - n.Y},
			geometry.Point{X: a.X - n.X, Y: a.Y - n.Y},
		)
	}
}
