// Package classify sorts road traces into categories by their stroke colour.
package classify

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrUnknownStyle is returned when a style carries none of the markers.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrAmbiguousStyle is returned when a style carries more than one marker.
	ErrAmbiguousStyle = errors.New("ambiguous style")

	// ErrOverlappingMarkers is returned by Validate when one marker contains
	// another, so no style could ever match just one of them.
	ErrOverlappingMarkers = errors.New("overlapping markers")
)

// Category is the closed set of trace kinds. The zero value is not a valid
// category.
type Category int

const (
	// Reference is the single trace of known real-world length.
	Reference Category = iota + 1
	// GroupA traces are summed into the first total.
	GroupA
	// GroupB traces are summed into the second total.
	GroupB
)

// Categories lists every valid category in output order.
var Categories = []Category{Reference, GroupA, GroupB}

func (c Category) String() string {
	switch c {
	case Reference:
		return "reference"
	case GroupA:
		return "group-a"
	case GroupB:
		return "group-b"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Markers holds the style substring that identifies each category.
type Markers struct {
	Reference string `json:"reference,omitempty"`
	GroupA    string `json:"groupA,omitempty"`
	GroupB    string `json:"groupB,omitempty"`
}

// DefaultMarkers match red reference, blue group-A and green group-B strokes.
var DefaultMarkers = Markers{
	Reference: "stroke:#ff0000",
	GroupA:    "stroke:#0000ff",
	GroupB:    "stroke:#008000",
}

// For returns the marker of a category.
func (m Markers) For(c Category) string {
	switch c {
	case Reference:
		return m.Reference
	case GroupA:
		return m.GroupA
	case GroupB:
		return m.GroupB
	}
	return ""
}

// Validate checks that every marker is set and that no marker contains
// another one.
func (m Markers) Validate() error {
	for _, a := range Categories {
		if m.For(a) == "" {
			return pkgerrors.Errorf("%s marker is empty", a)
		}
		for _, b := range Categories {
			if a == b {
				continue
			}
			if strings.Contains(m.For(a), m.For(b)) {
				return pkgerrors.Wrapf(ErrOverlappingMarkers, "%s marker %q contains %s marker %q", a, m.For(a), b, m.For(b))
			}
		}
	}
	return nil
}

// Classifier matches style strings against a fixed set of markers.
type Classifier struct {
	markers Markers
}

// New creates a Classifier. Empty markers fall back to DefaultMarkers.
func New(markers Markers) *Classifier {
	if markers.Reference == "" {
		markers.Reference = DefaultMarkers.Reference
	}
	if markers.GroupA == "" {
		markers.GroupA = DefaultMarkers.GroupA
	}
	if markers.GroupB == "" {
		markers.GroupB = DefaultMarkers.GroupB
	}
	return &Classifier{markers: markers}
}

// Markers returns the markers in effect.
func (c *Classifier) Markers() Markers {
	return c.markers
}

// Classify returns the one category whose marker is contained in style.
//
// Matching is by exact substring and does not depend on marker order: a style
// containing no marker fails with ErrUnknownStyle and one containing several
// fails with ErrAmbiguousStyle.
func (c *Classifier) Classify(style string) (Category, error) {
	var found []Category
	for _, cat := range Categories {
		if strings.Contains(style, c.markers.For(cat)) {
			found = append(found, cat)
		}
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return 0, pkgerrors.Wrapf(ErrUnknownStyle, "%q", style)
	default:
		return 0, pkgerrors.Wrapf(ErrAmbiguousStyle, "%q matches %v", style, found)
	}
}
