package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ironsheep/roadcal/internal/calibration"
	"github.com/ironsheep/roadcal/internal/classify"
	"github.com/ironsheep/roadcal/internal/config"
	"github.com/ironsheep/roadcal/internal/geometry"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	logLevel   = "warn"
	configPath = ""
	conf       config.Config
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to parse log level")
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	switch {
	case errors.Is(err, calibration.ErrMissingReference):
		fmt.Fprintln(os.Stderr, "\nHint: draw exactly one reference road using the reference stroke colour")
	case errors.Is(err, calibration.ErrMultipleReferences):
		fmt.Fprintln(os.Stderr, "\nHint: only one road may use the reference stroke colour")
	case errors.Is(err, classify.ErrUnknownStyle), errors.Is(err, classify.ErrAmbiguousStyle):
		fmt.Fprintln(os.Stderr, "\nHint: every path must carry exactly one of the configured stroke markers")
	case errors.Is(err, geometry.ErrCommandCount), errors.Is(err, geometry.ErrNotMove):
		fmt.Fprintln(os.Stderr, "\nHint: draw each road as a single polyline (one move command, no curves)")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadcal",
		Short: "roadcal measures hand-drawn roads in an SVG against a reference road",
		Long: fmt.Sprintf(`roadcal measures hand-drawn roads in an SVG image.

One road, drawn in the reference colour, must be exactly %g %s long. Every
other road is drawn in one of two group colours; roadcal sums each group and
reports its length in %s.`, calibration.ReferenceLength, calibration.Unit, calibration.Unit),
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := setupLogger(); err != nil {
				return err
			}

			f, err := config.NewFile(configPath)
			if err != nil {
				return err
			}
			conf = f
			logrus.WithFields(conf.LogrusFields()).Debug("Using config")

			return nil
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "warn", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", "", "config file path (JSON)")

	cmd.AddCommand(
		NewMeasureCommand(),
		NewTracesCommand(),
		NewPreviewCommand(),
		NewVersionCommand(),
	)

	return cmd
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "roadcal %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}
