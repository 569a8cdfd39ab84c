package calibration

import (
	"errors"
	"iter"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/roadcal/internal/classify"
	"github.com/ironsheep/roadcal/internal/geometry"
	"github.com/ironsheep/roadcal/internal/svgpath"
)

const (
	// ReferenceLength is the known real-world length of the reference trace.
	ReferenceLength = 5.0
	// Unit is the unit ReferenceLength is expressed in.
	Unit = "km"
)

// Attribute names read from each tag.
const (
	AttrData  = "d"
	AttrStyle = "style"
)

// ErrFinalized is returned when a finalized engine is used again.
var ErrFinalized = errors.New("calibration already finalized")

// Phase is the lifecycle stage of an Engine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAccumulating
	PhaseFinalized
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAccumulating:
		return "accumulating"
	case PhaseFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Tag is a decoded element that may carry path data and a style.
type Tag interface {
	Attr(key string) (string, bool)
}

// Measurement is one classified and measured trace.
type Measurement struct {
	// Index counts observed tags, including skipped ones, from 0.
	Index    int
	Category classify.Category
	Trace    *geometry.Trace
	Pixels   float64
}

// Engine classifies and measures traces and turns them into calibrated
// totals. It is not safe for concurrent use.
type Engine struct {
	classifier   *classify.Classifier
	log          logrus.FieldLogger
	state        State
	phase        Phase
	observed     int
	measurements []Measurement
}

// NewEngine creates an idle engine. A nil logger discards log output.
func NewEngine(classifier *classify.Classifier, log logrus.FieldLogger) *Engine {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Engine{
		classifier: classifier,
		log:        log,
	}
}

// Phase returns the engine's lifecycle stage.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Measurements returns the traces measured so far in observation order.
func (e *Engine) Measurements() []Measurement {
	return e.measurements
}

// Observe processes one tag. Tags without path data or without a style are
// decorative and skipped.
func (e *Engine) Observe(tag Tag) error {
	if e.phase == PhaseFinalized {
		return ErrFinalized
	}
	e.phase = PhaseAccumulating

	index := e.observed
	e.observed++

	d, ok := tag.Attr(AttrData)
	if !ok {
		return nil
	}
	style, ok := tag.Attr(AttrStyle)
	if !ok {
		return nil
	}

	cat, err := e.classifier.Classify(style)
	if err != nil {
		return pkgerrors.Wrapf(err, "trace %d", index)
	}

	if cat == classify.Reference && e.state.HasReference() {
		return pkgerrors.Wrapf(ErrMultipleReferences, "trace %d", index)
	}

	trace, pixels, err := measure(d)
	if err != nil {
		return pkgerrors.Wrapf(err, "trace %d", index)
	}

	switch cat {
	case classify.Reference:
		if err := e.state.SetReference(pixels); err != nil {
			return pkgerrors.Wrapf(err, "trace %d", index)
		}
	case classify.GroupA, classify.GroupB:
		e.state.Append(cat, pixels)
	}

	e.measurements = append(e.measurements, Measurement{
		Index:    index,
		Category: cat,
		Trace:    trace,
		Pixels:   pixels,
	})

	e.log.WithFields(logrus.Fields{
		"index":    index,
		"category": cat,
		"position": trace.Position,
		"points":   len(trace.Points),
		"pixels":   pixels,
	}).Debug("Measured trace")

	return nil
}

// measure parses path data into a trace and returns its pixel length.
func measure(d string) (*geometry.Trace, float64, error) {
	data, err := svgpath.Parse(d)
	if err != nil {
		return nil, 0, err
	}
	trace, err := geometry.TraceFromData(data)
	if err != nil {
		return nil, 0, err
	}
	pixels, err := trace.Length()
	if err != nil {
		return nil, 0, err
	}
	return trace, pixels, nil
}

// Finalize derives the pixels-per-unit ratio from the reference trace and
// converts both group totals. The engine cannot be used afterwards.
func (e *Engine) Finalize() (*Result, error) {
	if e.phase == PhaseFinalized {
		return nil, ErrFinalized
	}
	e.phase = PhaseFinalized

	referencePixels, ok := e.state.Reference()
	if !ok {
		return nil, ErrMissingReference
	}
	if referencePixels == 0 {
		return nil, ErrDegenerateReference
	}

	pixelsPerUnit := referencePixels / ReferenceLength
	result := &Result{
		ReferencePixels: referencePixels,
		PixelsPerUnit:   pixelsPerUnit,
		GroupAPixels:    sum(e.state.Group(classify.GroupA)),
		GroupBPixels:    sum(e.state.Group(classify.GroupB)),
		Measurements:    e.measurements,
	}
	result.GroupA = result.GroupAPixels / pixelsPerUnit
	result.GroupB = result.GroupBPixels / pixelsPerUnit

	e.log.WithFields(logrus.Fields{
		"referencePixels": referencePixels,
		"pixelsPerUnit":   pixelsPerUnit,
		"groupATraces":    len(e.state.Group(classify.GroupA)),
		"groupBTraces":    len(e.state.Group(classify.GroupB)),
	}).Debug("Calibration finalized")

	return result, nil
}

// Run feeds every tag to the engine in order and finalizes it. It stops at
// the first error.
func Run[T Tag](tags iter.Seq[T], engine *Engine) (*Result, error) {
	for tag := range tags {
		if err := engine.Observe(tag); err != nil {
			return nil, err
		}
	}
	return engine.Finalize()
}
