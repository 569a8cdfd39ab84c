package geometry

import (
	"math"

	pkgerrors "github.com/pkg/errors"

	"github.com/ironsheep/roadcal/internal/svgpath"
)

// PathLength measures points under the given coordinate convention.
func PathLength(pos svgpath.Position, points []Point) (float64, error) {
	if pos == svgpath.Relative {
		return RelativeLength(points)
	}
	return AbsoluteLength(points)
}

// RelativeLength sums the magnitudes of every displacement after the first
// point. The first point is the absolute start and adds nothing, so a single
// point measures 0.
func RelativeLength(points []Point) (float64, error) {
	if len(points) < 1 {
		return 0, pkgerrors.Wrap(ErrTooFewPoints, "relative trace needs a start point")
	}

	var distance float64
	for _, p := range points[1:] {
		distance += math.Sqrt(p.X*p.X + p.Y*p.Y)
	}
	return distance, nil
}

// AbsoluteLength sums the distances between consecutive positions.
func AbsoluteLength(points []Point) (float64, error) {
	if len(points) < 2 {
		return 0, pkgerrors.Wrapf(ErrTooFewPoints, "absolute trace needs 2 points, got %d", len(points))
	}

	var distance float64
	prev := points[0]
	for _, p := range points[1:] {
		deltaX := p.X - prev.X
		deltaY := p.Y - prev.Y
		distance += math.Sqrt(deltaX*deltaX + deltaY*deltaY)
		prev = p
	}
	return distance, nil
}

// Positions resolves points into absolute vertices. Relative displacements
// are accumulated from the start point; absolute points are copied.
func Positions(pos svgpath.Position, points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	if pos != svgpath.Relative {
		return out
	}
	for i := 1; i < len(out); i++ {
		out[i] = out[i-1].Add(points[i])
	}
	return out
}
