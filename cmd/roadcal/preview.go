package main

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/roadcal/internal/preview"
	"github.com/ironsheep/roadcal/internal/svgdoc"
)

func NewPreviewCommand() *cobra.Command {
	var (
		output      string
		scale       float64
		gridSpacing int
		strokeWidth float64
	)

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Render the measured roads to a PNG in their group colours",
		Long: `Render the measured roads to a PNG in their group colours.

Every road is checked exactly as by "measure", but the image is written even
when the reference road is missing, so it can be used to find out why.`,
		Example: "  roadcal preview roads.svg -o roads.png --grid 100",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := conf.Preview()
			if cmd.Flags().Changed("scale") {
				opts.Scale = scale
			}
			if cmd.Flags().Changed("grid") {
				opts.GridSpacing = gridSpacing
			}
			if cmd.Flags().Changed("stroke-width") {
				opts.StrokeWidth = strokeWidth
			}
			if opts.Scale <= 0 || opts.StrokeWidth <= 0 || opts.GridSpacing < 0 {
				return pkgerrors.Errorf("invalid preview options: scale %v, stroke width %v, grid %d",
					opts.Scale, opts.StrokeWidth, opts.GridSpacing)
			}

			colors, err := conf.Markers().Colors()
			if err != nil {
				return err
			}

			doc, err := svgdoc.Open(args[0])
			if err != nil {
				return err
			}
			engine := newEngine()
			for el := range doc.Elements() {
				if err := engine.Observe(el); err != nil {
					return err
				}
			}

			result, err := preview.Render(preview.FromMeasurements(engine.Measurements(), colors), opts)
			if err != nil {
				return err
			}
			if err := result.Save(output); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"output": output,
				"width":  result.Width,
				"height": result.Height,
				"traces": len(engine.Measurements()),
			}).Info("Wrote preview")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %dx%d preview of %d roads to %s\n",
				result.Width, result.Height, len(engine.Measurements()), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "preview.png", "output image path (format from extension)")
	cmd.Flags().Float64Var(&scale, "scale", 1.0, "resize factor applied after rendering")
	cmd.Flags().IntVar(&gridSpacing, "grid", 0, "grid spacing in SVG units (0 disables the grid)")
	cmd.Flags().Float64Var(&strokeWidth, "stroke-width", 3.0, "stroke width in SVG units")

	return cmd
}
