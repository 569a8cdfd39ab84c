package calibration

import (
	"errors"

	"github.com/ironsheep/roadcal/internal/classify"
)

var (
	// ErrMultipleReferences is returned on the second reference trace.
	ErrMultipleReferences = errors.New("multiple reference traces")

	// ErrMissingReference is returned when no reference trace was seen.
	ErrMissingReference = errors.New("no reference trace found")

	// ErrDegenerateReference is returned when the reference trace has zero length.
	ErrDegenerateReference = errors.New("reference trace has zero length")
)

// State accumulates pixel lengths over one run: a reference slot that can be
// filled once, and the ordered lengths of each group.
type State struct {
	referencePixels float64
	hasReference    bool
	groupA          []float64
	groupB          []float64
}

// SetReference fills the reference slot. It fails if the slot is taken.
func (s *State) SetReference(pixels float64) error {
	if s.hasReference {
		return ErrMultipleReferences
	}
	s.referencePixels = pixels
	s.hasReference = true
	return nil
}

// HasReference reports whether the reference slot is filled.
func (s *State) HasReference() bool {
	return s.hasReference
}

// Reference returns the reference pixel length and whether it is set.
func (s *State) Reference() (float64, bool) {
	return s.referencePixels, s.hasReference
}

// Append records the pixel length of a group trace.
func (s *State) Append(cat classify.Category, pixels float64) {
	switch cat {
	case classify.GroupA:
		s.groupA = append(s.groupA, pixels)
	case classify.GroupB:
		s.groupB = append(s.groupB, pixels)
	}
}

// Group returns the recorded pixel lengths of a group in insertion order.
func (s *State) Group(cat classify.Category) []float64 {
	switch cat {
	case classify.GroupA:
		return s.groupA
	case classify.GroupB:
		return s.groupB
	}
	return nil
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
