package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/roadcal/internal/calibration"
	"github.com/ironsheep/roadcal/internal/classify"
)

func NewMeasureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "measure FILE",
		Short: "Print the calibrated length of each road group",
		Long: `Print the calibrated length of each road group.

FILE is an SVG image, or - to read from standard input. Nothing is printed
unless the whole image measures cleanly.`,
		Example: "  roadcal measure roads.svg",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := measureFile(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s, %s %s: %s\n",
				label(classify.GroupA), calibration.Unit, formatFloat(result.GroupA),
				label(classify.GroupB), calibration.Unit, formatFloat(result.GroupB),
			)
			return nil
		},
	}
}
