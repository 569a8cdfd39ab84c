package calibration

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/ironsheep/roadcal/internal/classify"
	"github.com/ironsheep/roadcal/internal/geometry"
	"github.com/ironsheep/roadcal/internal/svgdoc"
	"github.com/ironsheep/roadcal/internal/svgpath"
)

// fakeTag is a Tag backed by a map.
type fakeTag map[string]string

func (f fakeTag) Attr(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

func path(style, d string) fakeTag {
	return fakeTag{AttrStyle: style, AttrData: d}
}

const (
	red   = "fill:none;stroke:#ff0000;stroke-width:3"
	blue  = "fill:none;stroke:#0000ff;stroke-width:3"
	green = "fill:none;stroke:#008000;stroke-width:3"
)

func newTestEngine() *Engine {
	return NewEngine(classify.New(classify.Markers{}), nil)
}

func TestRun_Scenario(t *testing.T) {
	tags := []fakeTag{
		path(red, "M 0,0 100,0"),
		path(blue, "m 0,0 10,0 0,10"),
	}

	result, err := Run(slices.Values(tags), newTestEngine())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.ReferencePixels != 100 {
		t.Errorf("ReferencePixels: got %v, want 100", result.ReferencePixels)
	}
	if result.PixelsPerUnit != 20 {
		t.Errorf("PixelsPerUnit: got %v, want 20", result.PixelsPerUnit)
	}
	if math.Abs(result.GroupA-1.0) > 1e-9 {
		t.Errorf("GroupA: got %v, want 1.0", result.GroupA)
	}
	if result.GroupB != 0 {
		t.Errorf("GroupB: got %v, want 0", result.GroupB)
	}
}

func TestRun_ScaleCorrect(t *testing.T) {
	tags := []fakeTag{
		path(green, "M 0,0 120,0"),
		path(red, "M 0,0 0,100"),
		path(green, "M 0,0 80,0"),
		path(blue, "m 5,5 30,40"),
	}

	result, err := Run(slices.Values(tags), newTestEngine())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 200 px of green at 20 px per km.
	if math.Abs(result.GroupB-10.0) > 1e-9 {
		t.Errorf("GroupB: got %v, want 10.0", result.GroupB)
	}
	// 50 px of blue.
	if math.Abs(result.GroupA-2.5) > 1e-9 {
		t.Errorf("GroupA: got %v, want 2.5", result.GroupA)
	}
	if result.Total(classify.Reference) != ReferenceLength {
		t.Errorf("reference total: got %v", result.Total(classify.Reference))
	}
	if got := result.Convert(40); got != 2 {
		t.Errorf("Convert(40): got %v, want 2", got)
	}
	if len(result.Measurements) != 4 {
		t.Fatalf("Measurements: got %d, want 4", len(result.Measurements))
	}
	if m := result.Measurements[1]; m.Index != 1 || m.Category != classify.Reference || m.Pixels != 100 {
		t.Errorf("reference measurement: got %+v", m)
	}
}

func TestRun_SkipsDecorativeTags(t *testing.T) {
	tags := []fakeTag{
		{AttrStyle: "stroke:#cccccc"},          // no path data
		{AttrData: "M 0 0 L 1 1 C 2 2 3 3 4 4"}, // no style
		{"width": "100"},
		path(red, "M 0,0 50,0"),
	}

	result, err := Run(slices.Values(tags), newTestEngine())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.PixelsPerUnit != 10 {
		t.Errorf("PixelsPerUnit: got %v, want 10", result.PixelsPerUnit)
	}
	if result.Measurements[0].Index != 3 {
		t.Errorf("Index: got %d, want 3", result.Measurements[0].Index)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tags    []fakeTag
		wantErr error
	}{
		{
			name:    "missing reference",
			tags:    []fakeTag{path(blue, "m 0,0 10,0"), path(green, "M 0,0 1,1")},
			wantErr: ErrMissingReference,
		},
		{
			name:    "no tags",
			wantErr: ErrMissingReference,
		},
		{
			name:    "duplicate reference",
			tags:    []fakeTag{path(red, "M 0,0 100,0"), path(blue, "m 0,0 1,0"), path(red, "M 0,0 10,0")},
			wantErr: ErrMultipleReferences,
		},
		{
			name:    "zero length reference",
			tags:    []fakeTag{path(red, "m 0,0")},
			wantErr: ErrDegenerateReference,
		},
		{
			name:    "unknown style",
			tags:    []fakeTag{path(red, "M 0,0 100,0"), path("stroke:#cccccc", "M 0,0 1,1")},
			wantErr: classify.ErrUnknownStyle,
		},
		{
			name:    "odd parameters",
			tags:    []fakeTag{path(blue, "m 0,0 10")},
			wantErr: geometry.ErrOddParams,
		},
		{
			name:    "extra line command",
			tags:    []fakeTag{path(red, "M 0,0 L 100,0")},
			wantErr: geometry.ErrCommandCount,
		},
		{
			name:    "line instead of move",
			tags:    []fakeTag{path(green, "l 0,0 10,0")},
			wantErr: geometry.ErrNotMove,
		},
		{
			name:    "absolute single point",
			tags:    []fakeTag{path(green, "M 0,0")},
			wantErr: geometry.ErrTooFewPoints,
		},
		{
			name:    "syntax",
			tags:    []fakeTag{path(green, "M 0,0 ?")},
			wantErr: svgpath.ErrSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Run(slices.Values(tt.tags), newTestEngine())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
			if result != nil {
				t.Errorf("partial result returned: %+v", result)
			}
		})
	}
}

func TestObserve_RejectsOnSecondSighting(t *testing.T) {
	e := newTestEngine()

	if err := e.Observe(path(red, "M 0,0 100,0")); err != nil {
		t.Fatalf("first reference: %v", err)
	}
	// The second sighting fails before its path data is even looked at.
	err := e.Observe(path(red, "not path data"))
	if !errors.Is(err, ErrMultipleReferences) {
		t.Fatalf("second reference: got %v, want ErrMultipleReferences", err)
	}
	if !strings.Contains(err.Error(), "trace 1") {
		t.Errorf("error should name the trace: %v", err)
	}

	// First occurrence keeps the slot.
	if px, ok := e.state.Reference(); !ok || px != 100 {
		t.Errorf("reference slot: got %v, %v", px, ok)
	}
}

func TestEngine_Lifecycle(t *testing.T) {
	e := newTestEngine()
	if e.Phase() != PhaseIdle {
		t.Fatalf("initial phase: got %s", e.Phase())
	}

	if err := e.Observe(path(red, "M 0,0 100,0")); err != nil {
		t.Fatalf("Observe failed: %v", err)
	}
	if e.Phase() != PhaseAccumulating {
		t.Errorf("phase after observe: got %s", e.Phase())
	}

	if _, err := e.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if e.Phase() != PhaseFinalized {
		t.Errorf("phase after finalize: got %s", e.Phase())
	}

	if err := e.Observe(path(blue, "m 0,0 1,1")); !errors.Is(err, ErrFinalized) {
		t.Errorf("Observe after finalize: got %v", err)
	}
	if _, err := e.Finalize(); !errors.Is(err, ErrFinalized) {
		t.Errorf("second Finalize: got %v", err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	tags := []fakeTag{
		path(red, "M 3,4 53,124"),
		path(blue, "m 0,0 1.5,2 -7,24"),
		path(green, "M 1,1 4,5 4,17 -5,17"),
	}

	first, err := Run(slices.Values(tags), newTestEngine())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Run(slices.Values(tags), newTestEngine())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if first.GroupA != second.GroupA || first.GroupB != second.GroupB || first.PixelsPerUnit != second.PixelsPerUnit {
		t.Errorf("runs differ: %+v vs %+v", first, second)
	}
}

func TestRun_Document(t *testing.T) {
	const svg = `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="200">
  <title>roads</title>
  <g>
    <path style="fill:none;stroke:#ff0000;stroke-width:2" d="M 0,0 100,0"/>
    <path style="fill:none;stroke:#0000ff;stroke-width:2" d="m 0,0 10,0 0,10"/>
  </g>
  <circle cx="5" cy="5" r="2" style="fill:#cccccc"/>
</svg>`

	doc, err := svgdoc.Read(strings.NewReader(svg))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	result, err := Run(doc.Elements(), newTestEngine())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if math.Abs(result.GroupA-1.0) > 1e-9 || result.GroupB != 0 {
		t.Errorf("totals: got %v/%v, want 1/0", result.GroupA, result.GroupB)
	}
}
