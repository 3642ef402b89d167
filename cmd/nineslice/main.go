package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/ironsheep/nineslice-mcp/internal/export"
	"github.com/ironsheep/nineslice-mcp/internal/imaging"
	"github.com/ironsheep/nineslice-mcp/internal/slicer"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	inputPath string
	outputDir string

	marginLeft   int
	marginTop    int
	marginRight  int
	marginBottom int

	atlasPadding int

	withCorners     bool
	withSlices      bool
	withAtlas       bool
	withCoordinates bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nineslice",
		Short: "Slice a bitmap into nine-slice regions and export them",
		Long:  "A tool to split a bitmap into the nine regions of a nine-slice grid (fixed corners, stretchable edges and center) and export them as individual slices, a stitched corner sheet, a packed atlas, or a JSON coordinate description",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input image file (required)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "nineslice-out", "Output directory")
	rootCmd.Flags().IntVarP(&marginLeft, "left", "l", -1, "Left margin in pixels (default 25% of width)")
	rootCmd.Flags().IntVarP(&marginTop, "top", "t", -1, "Top margin in pixels (default 25% of height)")
	rootCmd.Flags().IntVarP(&marginRight, "right", "r", -1, "Right margin in pixels (default 25% of width)")
	rootCmd.Flags().IntVarP(&marginBottom, "bottom", "b", -1, "Bottom margin in pixels (default 25% of height)")
	rootCmd.Flags().IntVar(&atlasPadding, "padding", 0, "Pixel gap around and between atlas cells")
	rootCmd.Flags().BoolVar(&withCorners, "corners", false, "Export the four corners stitched into one PNG")
	rootCmd.Flags().BoolVar(&withSlices, "slices", false, "Export each of the nine slices as its own PNG")
	rootCmd.Flags().BoolVar(&withAtlas, "atlas", false, "Export all nine slices packed into one atlas PNG")
	rootCmd.Flags().BoolVar(&withCoordinates, "coordinates", false, "Export the slice coordinates as JSON")

	rootCmd.MarkFlagRequired("input")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nineslice version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\nNine-Slice Exporter")
	cyan.Println("===================")

	// Nothing selected means export everything.
	if !withCorners && !withSlices && !withAtlas && !withCoordinates {
		withCorners, withSlices, withAtlas, withCoordinates = true, true, true, true
	}

	cache := imaging.NewCache()
	src, err := cache.Load(inputPath)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	fmt.Printf("  Loaded %s (%d x %d px)\n", inputPath, width, height)

	// Unset margins fall back to 25% of the relevant dimension.
	if marginLeft < 0 {
		marginLeft = quarter(width)
	}
	if marginRight < 0 {
		marginRight = quarter(width)
	}
	if marginTop < 0 {
		marginTop = quarter(height)
	}
	if marginBottom < 0 {
		marginBottom = quarter(height)
	}

	geo, err := slicer.New(width, height, slicer.Margins{
		Left:   marginLeft,
		Top:    marginTop,
		Right:  marginRight,
		Bottom: marginBottom,
	})
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	m := geo.Margins()
	fmt.Printf("  Margins: left=%d top=%d right=%d bottom=%d\n", m.Left, m.Top, m.Right, m.Bottom)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if withCorners {
		dest := filepath.Join(outputDir, "corners.png")
		res, err := export.Stitched(src, geo, dest)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Printf("  ✓ corners  %s (%d x %d px)\n", dest, res.Width, res.Height)
	}

	if withSlices {
		dir := filepath.Join(outputDir, "slices")
		paths, err := export.Slices(src, geo, dir)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Printf("  ✓ slices   %s (%d files)\n", dir, len(paths))
	}

	if withAtlas {
		dest := filepath.Join(outputDir, "atlas.png")
		if err := export.Atlas(src, geo, atlasPadding, dest); err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Printf("  ✓ atlas    %s (padding %d)\n", dest, atlasPadding)
	}

	if withCoordinates {
		dest := filepath.Join(outputDir, "coordinates.json")
		if err := export.Coordinates(geo, dest); err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Printf("  ✓ coords   %s\n", dest)
	}

	green.Printf("\nDone. Output written to %s\n\n", outputDir)
}

func quarter(dim int) int {
	return int(math.Round(float64(dim) * 0.25))
}
