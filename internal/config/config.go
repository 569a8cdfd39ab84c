// Package config loads the optional roadcal configuration file.
package config

import (
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/roadcal/internal/classify"
)

// Config is the effective configuration of a run.
type Config interface {
	// Markers returns the style substrings identifying each category.
	Markers() classify.Markers
	// Label returns the human name of a category, e.g. "blue".
	Label(classify.Category) string
	// Preview returns the rendering options of the preview command.
	Preview() PreviewOptions

	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
}

// PreviewOptions control how traces are rendered by the preview command.
type PreviewOptions struct {
	StrokeWidth float64
	Scale       float64
	GridSpacing int
	Margin      int
	Background  string
}
