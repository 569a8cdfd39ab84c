package config

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/roadcal/internal/classify"
)

var (
	defaultFileConfig = &RawFileConfig{
		Markers: &classify.DefaultMarkers,
		Labels: &RawLabels{
			Reference: ptrTo("red"),
			GroupA:    ptrTo("blue"),
			GroupB:    ptrTo("green"),
		},
		Preview: &RawPreview{
			StrokeWidth: ptrTo(3.0),
			Scale:       ptrTo(1.0),
			GridSpacing: ptrTo(0),
			Margin:      ptrTo(10),
			Background:  ptrTo("#ffffff"),
		},
	}
)

var _ Config = &File{}

// File is a Config backed by a JSON file. Keys missing from the file keep
// their defaults.
type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

// NewFile loads the configuration at configPath. An empty path yields the
// defaults.
func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// NewFileFromConfig wraps an already decoded configuration.
func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = &RawFileConfig{}
	}

	return &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}
}

// RawFileConfig is the on-disk layout.
type RawFileConfig struct {
	Markers *classify.Markers `json:"markers,omitempty"`
	Labels  *RawLabels        `json:"labels,omitempty"`
	Preview *RawPreview       `json:"preview,omitempty"`
}

type RawLabels struct {
	Reference *string `json:"reference,omitempty"`
	GroupA    *string `json:"groupA,omitempty"`
	GroupB    *string `json:"groupB,omitempty"`
}

type RawPreview struct {
	StrokeWidth *float64 `json:"strokeWidth,omitempty"`
	Scale       *float64 `json:"scale,omitempty"`
	GridSpacing *int     `json:"gridSpacing,omitempty"`
	Margin      *int     `json:"margin,omitempty"`
	Background  *string  `json:"background,omitempty"`
}

func (f *File) Markers() classify.Markers {
	f.mu.RLock()
	defer f.mu.RUnlock()

	m := *defaultFileConfig.Markers
	if f.c.Markers != nil {
		if f.c.Markers.Reference != "" {
			m.Reference = f.c.Markers.Reference
		}
		if f.c.Markers.GroupA != "" {
			m.GroupA = f.c.Markers.GroupA
		}
		if f.c.Markers.GroupB != "" {
			m.GroupB = f.c.Markers.GroupB
		}
	}
	return m
}

func (f *File) Label(cat classify.Category) string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	pick := func(l *RawLabels) *string {
		if l == nil {
			return nil
		}
		switch cat {
		case classify.Reference:
			return l.Reference
		case classify.GroupA:
			return l.GroupA
		case classify.GroupB:
			return l.GroupB
		}
		return nil
	}

	if v := pick(f.c.Labels); v != nil {
		return *v
	}
	if v := pick(defaultFileConfig.Labels); v != nil {
		return *v
	}
	return cat.String()
}

func (f *File) Preview() PreviewOptions {
	f.mu.RLock()
	defer f.mu.RUnlock()

	d := defaultFileConfig.Preview
	p := f.c.Preview
	if p == nil {
		p = &RawPreview{}
	}

	return PreviewOptions{
		StrokeWidth: *or(p.StrokeWidth, d.StrokeWidth),
		Scale:       *or(p.Scale, d.Scale),
		GridSpacing: *or(p.GridSpacing, d.GridSpacing),
		Margin:      *or(p.Margin, d.Margin),
		Background:  *or(p.Background, d.Background),
	}
}

func (f *File) LogrusFields() logrus.Fields {
	m := f.Markers()
	p := f.Preview()
	return logrus.Fields{
		"config":           f.filepath,
		"referenceMarker":  m.Reference,
		"groupAMarker":     m.GroupA,
		"groupBMarker":     m.GroupB,
		"groupALabel":      f.Label(classify.GroupA),
		"groupBLabel":      f.Label(classify.GroupB),
		"previewScale":     p.Scale,
		"previewGrid":      p.GridSpacing,
		"previewThickness": p.StrokeWidth,
	}
}

// Load reads and validates the file. A missing path leaves the defaults.
func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.c = &RawFileConfig{}
	if f.filepath == "" {
		return nil
	}

	file, err := os.Open(f.filepath)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open config file %s", f.filepath)
	}
	defer file.Close()

	rawConfig, err := io.ReadAll(file)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read config file %s", f.filepath)
	}

	c := &RawFileConfig{}
	if err := json.Unmarshal(rawConfig, c); err != nil {
		return pkgerrors.Wrapf(err, "failed to parse config file %s", f.filepath)
	}
	if err := validate(c); err != nil {
		return pkgerrors.Wrapf(err, "invalid config file %s", f.filepath)
	}

	f.c = c
	logrus.WithField("config", f.filepath).Debug("Loaded config file")
	return nil
}

func validate(c *RawFileConfig) error {
	if c.Markers != nil {
		for _, marker := range []string{c.Markers.Reference, c.Markers.GroupA, c.Markers.GroupB} {
			if marker == "" {
				continue
			}
			if _, err := classify.MarkerColor(marker); err != nil {
				return err
			}
		}
		// Checked after merging so an override cannot clash with a default.
		if err := NewFileFromConfig(c, "").Markers().Validate(); err != nil {
			return err
		}
	}
	if p := c.Preview; p != nil {
		if p.Scale != nil && *p.Scale <= 0 {
			return pkgerrors.Errorf("preview scale must be positive, got %v", *p.Scale)
		}
		if p.StrokeWidth != nil && *p.StrokeWidth <= 0 {
			return pkgerrors.Errorf("preview stroke width must be positive, got %v", *p.StrokeWidth)
		}
		if p.GridSpacing != nil && *p.GridSpacing < 0 {
			return pkgerrors.Errorf("preview grid spacing cannot be negative, got %d", *p.GridSpacing)
		}
		if p.Margin != nil && *p.Margin < 0 {
			return pkgerrors.Errorf("preview margin cannot be negative, got %d", *p.Margin)
		}
		if p.Background != nil {
			if _, err := colorful.Hex(*p.Background); err != nil {
				return pkgerrors.Wrapf(err, "preview background %q", *p.Background)
			}
		}
	}
	return nil
}

func ptrTo[T any](v T) *T {
	return &v
}

func or[T any](v, fallback *T) *T {
	if v != nil {
		return v
	}
	return fallback
}
