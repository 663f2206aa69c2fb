package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/arruler/internal/measurement"
	"github.com/philipparndt/arruler/internal/tracking"
	"github.com/philipparndt/arruler/pkg/analysis"
	"github.com/philipparndt/arruler/pkg/stl"
	"github.com/philipparndt/arruler/pkg/viewer"
)

var (
	taps        []string
	frameWidth  int
	frameHeight int
	hitTestType string
	outputPath  string
)

var measureCmd = &cobra.Command{
	Use:   "measure <world.stl>",
	Short: "Replay taps against a world without opening a window",
	Long: `Replay a sequence of screen taps against the tracked world and print the
scene commands each tap produces. The default camera frames the whole world.

Example:
  arruler measure room.stl --tap 320,240 --tap 400,260 --output frame.png`,
	Args: cobra.ExactArgs(1),
	RunE: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().StringArrayVar(&taps, "tap", nil, "screen tap as x,y (repeatable)")
	measureCmd.Flags().IntVar(&frameWidth, "width", 640, "viewport width in pixels")
	measureCmd.Flags().IntVar(&frameHeight, "height", 480, "viewport height in pixels")
	measureCmd.Flags().StringVar(&hitTestType, "hit-test", "", "hit-test type (featurePoint, surface); defaults to config")
	measureCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the final frame as PNG")

	_ = measureCmd.MarkFlagRequired("tap")
}

// parseTap parses an "x,y" screen coordinate
func parseTap(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid tap %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid tap %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid tap %q: %w", s, err)
	}
	return x, y, nil
}

func runMeasure(cmd *cobra.Command, args []string) error {
	model, err := stl.Parse(args[0])
	if err != nil {
		return fmt.Errorf("error parsing STL file: %w", err)
	}

	trackingCfg := cfg.Tracking
	if hitTestType != "" {
		if trackingCfg.HitTest, err = tracking.ParseHitTestType(hitTestType); err != nil {
			return err
		}
	}

	ts := tracking.NewSession(model, logger)
	ts.Debug.ShowFeaturePoints = cfg.ShowFeaturePoints
	ts.Run(trackingCfg)

	scene := viewer.NewScene()
	session := measurement.NewSession(scene)

	if err := replayTaps(cmd.OutOrStdout(), session, ts.HitTester(float64(frameWidth), float64(frameHeight)), taps); err != nil {
		return err
	}

	features := ts.FeaturePoints()
	for _, point := range session.Points() {
		if nearest, offset, ok := analysis.NearestFeaturePoint(features, point.Position); ok {
			logger.Debug().Stringer("point", point.Position).Stringer("feature", nearest).Float64("offset", offset).Msg("Nearest feature point")
		}
	}

	if outputPath != "" {
		if err := writeFrame(outputPath, ts.Frame(scene)); err != nil {
			return err
		}
		logger.Info().Str("file", outputPath).Msg("Frame written")
	}
	return nil
}

// replayTaps feeds each tap to the session and prints the resulting effects
func replayTaps(out io.Writer, session *measurement.Session, tester measurement.HitTester, taps []string) error {
	for i, tap := range taps {
		x, y, err := parseTap(tap)
		if err != nil {
			return err
		}

		effects := session.Tap(x, y, tester)
		fmt.Fprintf(out, "Tap %d (%g, %g): %s\n", i+1, x, y, session.State())
		if len(effects) == 0 {
			fmt.Fprintln(out, "  no hit")
		}
		for _, effect := range effects {
			fmt.Fprintf(out, "  %s\n", describeEffect(effect))
		}
	}

	if _, ok := session.Distance(); ok {
		fmt.Fprintf(out, "\nDistance: %s\n", session.LabelText())
	}
	return nil
}

func describeEffect(effect measurement.Effect) string {
	switch effect.Kind {
	case measurement.PlaceMarker:
		return fmt.Sprintf("%s at %s", effect.Kind, effect.Position)
	case measurement.PlaceLabel:
		return fmt.Sprintf("%s %q at %s", effect.Kind, effect.Text, effect.Position)
	default:
		return fmt.Sprintf("%s (%d artifacts)", effect.Kind, len(effect.Handles))
	}
}

func writeFrame(path string, frame viewer.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, frame.Render(frameWidth, frameHeight)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}
