package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sieis/Pixel-Color-By-Number/internal/palette"
	"github.com/sieis/Pixel-Color-By-Number/internal/pipeline"
)

var (
	flagColors       int
	flagMethod       string
	flagInputDir     string
	flagArtDir       string
	flagTemplateDir  string
	flagUpscale      int
	flagPaletteStrip bool
)

var rootCmd = &cobra.Command{
	Use:   "paintbynumber <width> <height>",
	Short: "Convert images to pixel art and numbered paint-by-number templates",
	Long: "Reads every image in the input directory, reduces it to a small " +
		"palette on a width x height grid, and writes an upscaled pixel-art " +
		"PNG plus a printable PDF template with numbered cells and a color key.",
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	width, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("width must be an integer: %w", err)
	}
	height, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("height must be an integer: %w", err)
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("width and height must be positive, got %dx%d", width, height)
	}
	method, err := palette.ParseMethod(flagMethod)
	if err != nil {
		return err
	}

	opts := pipeline.DefaultOptions()
	opts.Width = width
	opts.Height = height
	opts.MaxColors = flagColors
	opts.Method = method
	opts.InputDir = flagInputDir
	opts.ArtDir = flagArtDir
	opts.TemplateDir = flagTemplateDir
	opts.UpscaleSize = flagUpscale
	opts.PaletteStrip = flagPaletteStrip

	// Batch failures are reported, not turned into a non-zero exit: a bad
	// input directory should not look different from a clean empty run to
	// calling scripts.
	if err := pipeline.Run(opts); err != nil {
		log.Printf("an error occurred: %v", err)
		return nil
	}
	log.Println("processing complete")
	return nil
}

func main() {
	defaults := pipeline.DefaultOptions()
	rootCmd.Flags().IntVar(&flagColors, "colors", defaults.MaxColors, "maximum number of palette colors")
	rootCmd.Flags().StringVar(&flagMethod, "method", defaults.Method.String(), "palette method: kmeans, dominant or mediancut")
	rootCmd.Flags().StringVar(&flagInputDir, "in", defaults.InputDir, "directory of source images")
	rootCmd.Flags().StringVar(&flagArtDir, "art-dir", defaults.ArtDir, "output directory for pixel-art PNGs")
	rootCmd.Flags().StringVar(&flagTemplateDir, "template-dir", defaults.TemplateDir, "output directory for PDF templates")
	rootCmd.Flags().IntVar(&flagUpscale, "upscale", defaults.UpscaleSize, "longer side of the pixel-art output in pixels")
	rootCmd.Flags().BoolVar(&flagPaletteStrip, "palette-strip", false, "also write a palette strip PNG per image")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
