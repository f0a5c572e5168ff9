// Package pipeline drives the full conversion for a directory of source
// images: resize, palette reduction, pixel-art output and PDF template.
package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sieis/Pixel-Color-By-Number/internal/grid"
	"github.com/sieis/Pixel-Color-By-Number/internal/imaging"
	"github.com/sieis/Pixel-Color-By-Number/internal/palette"
	"github.com/sieis/Pixel-Color-By-Number/internal/template"
)

// Options controls one batch run.
type Options struct {
	Width, Height int            // pixel-art grid shape
	MaxColors     int            // requested palette ceiling
	Method        palette.Method // palette extraction method
	InputDir      string         // source images
	ArtDir        string         // high-res pixel-art PNGs
	TemplateDir   string         // numbered PDF templates
	UpscaleSize   int            // longer side of the pixel-art output
	PaletteStrip  bool           // also write a palette strip PNG per image
}

func DefaultOptions() Options {
	return Options{
		MaxColors:   8,
		Method:      palette.MethodKMeans,
		InputDir:    "pics",
		ArtDir:      "pixel_art",
		TemplateDir: "templates",
		UpscaleSize: 1000,
	}
}

// FileResult describes the outputs written for one source image.
type FileResult struct {
	ArtPath      string
	TemplatePath string
	Palette      []grid.RGB
}

// Run processes every supported image in opts.InputDir. A missing input
// directory is fatal; a failure on a single image is logged and the
// batch moves on to the next file.
func Run(opts Options) error {
	if opts.Width < 1 || opts.Height < 1 {
		return fmt.Errorf("invalid grid size %dx%d: width and height must be positive", opts.Width, opts.Height)
	}
	if _, err := os.Stat(opts.InputDir); err != nil {
		return fmt.Errorf("required input directory %q not found: %w", opts.InputDir, err)
	}
	if err := os.MkdirAll(opts.ArtDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(opts.TemplateDir, 0o755); err != nil {
		return err
	}

	entries, err := os.ReadDir(opts.InputDir)
	if err != nil {
		return err
	}

	log.Printf("processing images to %dx%d pixel art", opts.Width, opts.Height)
	for _, e := range entries {
		if e.IsDir() || !supported(e.Name()) {
			continue
		}
		path := filepath.Join(opts.InputDir, e.Name())
		log.Printf("processing %s", e.Name())
		res, err := ProcessFile(path, opts)
		if err != nil {
			log.Printf("%s: %v", e.Name(), err)
			continue
		}
		log.Printf("created pixel art: %s", res.ArtPath)
		log.Printf("created template: %s", res.TemplatePath)
	}
	return nil
}

// ProcessFile converts one source image into its two outputs. The output
// stem is the source file's base name.
func ProcessFile(path string, opts Options) (*FileResult, error) {
	src, err := imaging.Load(path)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	small := imaging.ResizeNearest(src, opts.Width, opts.Height)
	reduced, err := palette.Reduce(grid.FromImage(small), opts.MaxColors, opts.Method)
	if err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	artPath := filepath.Join(opts.ArtDir, stem+"_pixel_art.png")
	highRes := imaging.Upscale(reduced.Quantized.ToImage(), opts.UpscaleSize)
	if err := imaging.SavePNG(highRes, artPath); err != nil {
		return nil, fmt.Errorf("save pixel art: %w", err)
	}

	if opts.PaletteStrip {
		stripPath := filepath.Join(opts.ArtDir, stem+"_palette.png")
		if err := imaging.SavePaletteStrip(reduced.Colors, 64, stripPath); err != nil {
			return nil, fmt.Errorf("save palette strip: %w", err)
		}
	}

	templatePath := filepath.Join(opts.TemplateDir, stem+"_template.pdf")
	page := template.NewPDFPage()
	template.Render(reduced.Indexes, reduced.Colors, stem, page)
	if err := page.Save(templatePath); err != nil {
		return nil, fmt.Errorf("save template: %w", err)
	}

	return &FileResult{
		ArtPath:      artPath,
		TemplatePath: templatePath,
		Palette:      reduced.Colors,
	}, nil
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
