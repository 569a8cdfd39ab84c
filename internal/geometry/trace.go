package geometry

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/ironsheep/roadcal/internal/svgpath"
)

var (
	// ErrOddParams is returned when a move carries an odd number of values.
	ErrOddParams = errors.New("odd number of path parameters")

	// ErrCommandCount is returned when path data holds anything but one command.
	ErrCommandCount = errors.New("path data must hold exactly one command")

	// ErrNotMove is returned when the single command of a trace is not a move.
	ErrNotMove = errors.New("non-move command found")

	// ErrTooFewPoints is returned when a trace has too few points to measure.
	ErrTooFewPoints = errors.New("too few points")
)

// Point is a position or displacement in image pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Trace is one road drawn as a single move command.
type Trace struct {
	Position svgpath.Position `json:"position"`
	Points   []Point          `json:"points"`
}

// Sample groups a flat parameter list into points, x first, keeping order.
func Sample(params []float64) ([]Point, error) {
	if len(params)%2 != 0 {
		return nil, pkgerrors.Wrapf(ErrOddParams, "got %d values", len(params))
	}

	points := make([]Point, 0, len(params)/2)
	for i := 0; i < len(params); i += 2 {
		points = append(points, Point{X: params[i], Y: params[i+1]})
	}
	return points, nil
}

// TraceFromData builds a Trace from parsed path data. Only a single move
// command is accepted; multi-segment paths are rejected.
func TraceFromData(data svgpath.Data) (*Trace, error) {
	if len(data) != 1 {
		return nil, pkgerrors.Wrapf(ErrCommandCount, "found %d commands %v", len(data), data)
	}

	cmd := data[0]
	if cmd.Kind != svgpath.Move {
		return nil, pkgerrors.Wrapf(ErrNotMove, "found %s", cmd.Kind)
	}

	points, err := Sample(cmd.Params)
	if err != nil {
		return nil, err
	}

	return &Trace{Position: cmd.Position, Points: points}, nil
}

// Length returns the pixel length of the trace.
func (t *Trace) Length() (float64, error) {
	return PathLength(t.Position, t.Points)
}

// Vertices returns the absolute positions visited by the trace.
func (t *Trace) Vertices() []Point {
	return Positions(t.Position, t.Points)
}
