package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/roadcal/internal/calibration"
)

func NewTracesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "traces FILE",
		Short: "List every measured road with its pixel and calibrated length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := measureFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s %-10s %-9s %6s %12s %12s\n", "INDEX", "GROUP", "POSITION", "POINTS", "PIXELS", calibration.Unit)
			for _, m := range result.Measurements {
				// Pad before colouring so escape codes don't break alignment.
				group := categoryColors[m.Category].Sprint(fmt.Sprintf("%-10s", conf.Label(m.Category)))
				fmt.Fprintf(out, "%-6d %s %-9s %6d %12.2f %12.3f\n",
					m.Index, group, m.Trace.Position, len(m.Trace.Points), m.Pixels, result.Convert(m.Pixels))
			}
			fmt.Fprintf(out, "\n%s px per %s\n", formatFloat(result.PixelsPerUnit), calibration.Unit)
			return nil
		},
	}
}
