package calibration

import "github.com/ironsheep/roadcal/internal/classify"

// Result holds the calibrated totals of a finalized run.
type Result struct {
	ReferencePixels float64 `json:"reference_pixels"`
	PixelsPerUnit   float64 `json:"pixels_per_unit"`
	GroupAPixels    float64 `json:"group_a_pixels"`
	GroupBPixels    float64 `json:"group_b_pixels"`
	// GroupA and GroupB are the totals in Unit.
	GroupA float64 `json:"group_a"`
	GroupB float64 `json:"group_b"`

	Measurements []Measurement `json:"-"`
}

// Total returns the calibrated total of a category. The reference total is
// always ReferenceLength.
func (r *Result) Total(cat classify.Category) float64 {
	switch cat {
	case classify.Reference:
		return ReferenceLength
	case classify.GroupA:
		return r.GroupA
	case classify.GroupB:
		return r.GroupB
	}
	return 0
}

// Convert turns a pixel length into Unit.
func (r *Result) Convert(pixels float64) float64 {
	return pixels / r.PixelsPerUnit
}
