package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/arruler/pkg/analysis"
	"github.com/philipparndt/arruler/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info <world.stl>",
	Short: "Display information about a tracked world",
	Long:  "Show the triangle and feature point counts, bounds and feature spacing of a world file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		return fmt.Errorf("error parsing STL file: %w", err)
	}

	survey := analysis.SurveyWorld(model)
	bbox := survey.BoundingBox
	size := survey.Dimensions
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "World Information")
	fmt.Fprintln(out, "=================")
	if model.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", model.Name)
	}
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintf(out, "Triangles: %d\n", survey.TriangleCount)
	fmt.Fprintf(out, "Feature points: %d\n", survey.FeaturePointCount)
	fmt.Fprintf(out, "Surface area: %.6f\n\n", survey.SurfaceArea)

	fmt.Fprintln(out, "Feature spacing:")
	fmt.Fprintf(out, "  Min: %.6f\n", survey.MinEdgeLength)
	fmt.Fprintf(out, "  Max: %.6f\n", survey.MaxEdgeLength)
	fmt.Fprintf(out, "  Avg: %.6f\n\n", survey.AvgEdgeLength)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", bbox.Min)
	fmt.Fprintf(out, "  Max: %s\n", bbox.Max)
	fmt.Fprintf(out, "  Size: %.6f x %.6f x %.6f\n", size.X, size.Y, size.Z)
	fmt.Fprintf(out, "  Diagonal: %.6f\n", bbox.Diagonal())
	return nil
}
