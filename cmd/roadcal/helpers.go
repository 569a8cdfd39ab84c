package main

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/roadcal/internal/calibration"
	"github.com/ironsheep/roadcal/internal/classify"
	"github.com/ironsheep/roadcal/internal/svgdoc"
)

var categoryColors = map[classify.Category]*color.Color{
	classify.Reference: color.New(color.FgRed, color.Bold),
	classify.GroupA:    color.New(color.FgBlue, color.Bold),
	classify.GroupB:    color.New(color.FgGreen, color.Bold),
}

func label(cat classify.Category) string {
	return categoryColors[cat].Sprint(conf.Label(cat))
}

// formatFloat prints the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newEngine() *calibration.Engine {
	return calibration.NewEngine(classify.New(conf.Markers()), logrus.StandardLogger())
}

// measureFile runs the whole calibration over the SVG at path.
func measureFile(path string) (*calibration.Result, error) {
	doc, err := svgdoc.Open(path)
	if err != nil {
		return nil, err
	}

	logrus.WithField("file", path).Info("Measuring roads")
	return calibration.Run(doc.Elements(), newEngine())
}
