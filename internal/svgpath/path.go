package svgpath

import (
	"errors"
	"fmt"
	"math"

	pkgerrors "github.com/pkg/errors"
	"github.com/tdewolff/parse/v2/strconv"
)

// ErrSyntax is returned for path data that cannot be tokenised.
var ErrSyntax = errors.New("malformed path data")

// Position is the coordinate convention declared by a command letter.
type Position int

const (
	// Absolute commands (upper-case letters) carry positions.
	Absolute Position = iota
	// Relative commands (lower-case letters) carry displacements.
	Relative
)

func (p Position) String() string {
	if p == Relative {
		return "relative"
	}
	return "absolute"
}

// Kind identifies a path command irrespective of its position.
type Kind byte

const (
	Move                 Kind = 'M'
	Line                 Kind = 'L'
	HorizontalLine       Kind = 'H'
	VerticalLine         Kind = 'V'
	CubicCurve           Kind = 'C'
	SmoothCubicCurve     Kind = 'S'
	QuadraticCurve       Kind = 'Q'
	SmoothQuadraticCurve Kind = 'T'
	EllipticalArc        Kind = 'A'
	Close                Kind = 'Z'
)

var kindNames = map[Kind]string{
	Move:                 "move",
	Line:                 "line",
	HorizontalLine:       "horizontal line",
	VerticalLine:         "vertical line",
	CubicCurve:           "cubic curve",
	SmoothCubicCurve:     "smooth cubic curve",
	QuadraticCurve:       "quadratic curve",
	SmoothQuadraticCurve: "smooth quadratic curve",
	EllipticalArc:        "elliptical arc",
	Close:                "close",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("command(%c)", byte(k))
}

// Command is one command letter and the numbers that follow it.
type Command struct {
	Kind     Kind
	Position Position
	Params   []float64
}

func (c Command) String() string {
	return fmt.Sprintf("%s %s %v", c.Position, c.Kind, c.Params)
}

// Data is the ordered list of commands of one path.
type Data []Command

// lookupCommand maps a command letter to its kind and position.
func lookupCommand(c byte) (Kind, Position, bool) {
	pos := Absolute
	upper := c
	if 'a' <= c && c <= 'z' {
		pos = Relative
		upper -= 'a' - 'A'
	}
	if _, ok := kindNames[Kind(upper)]; !ok {
		return 0, 0, false
	}
	return Kind(upper), pos, true
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// Parse tokenises SVG path data into commands.
//
// Empty (or whitespace-only) data yields an empty Data and no error.
func Parse(d string) (Data, error) {
	path := []byte(d)
	data := Data{}

	i := skipCommaWhitespace(path)
	for i < len(path) {
		kind, pos, ok := lookupCommand(path[i])
		if !ok {
			if len(data) == 0 && isNumberStart(path[i]) {
				return nil, pkgerrors.Wrap(ErrSyntax, "path should start with a command")
			}
			return nil, pkgerrors.Wrapf(ErrSyntax, "unknown command %q at position %d", path[i], i+1)
		}
		i++

		cmd := Command{Kind: kind, Position: pos}
		for {
			i += skipCommaWhitespace(path[i:])
			if i >= len(path) || !isNumberStart(path[i]) {
				break
			}
			num, n := strconv.ParseFloat(path[i:])
			if n == 0 {
				return nil, pkgerrors.Wrapf(ErrSyntax, "bad number after %s command at position %d", kind, i+1)
			}
			if math.IsInf(num, 0) || math.IsNaN(num) {
				return nil, pkgerrors.Wrapf(ErrSyntax, "number out of range after %s command at position %d", kind, i+1)
			}
			cmd.Params = append(cmd.Params, num)
			i += n
		}
		data = append(data, cmd)
	}

	return data, nil
}
