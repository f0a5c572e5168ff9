// Package imaging wraps image decode, nearest-neighbor resampling and
// PNG encode for the pipeline. Nearest-neighbor is used throughout so
// block edges stay sharp.
package imaging

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/KononK/resize"

	"github.com/sieis/Pixel-Color-By-Number/internal/grid"
)

func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// ResizeNearest resamples img to exactly w×h.
func ResizeNearest(img image.Image, w, h int) image.Image {
	return resize.Resize(uint(w), uint(h), img, resize.NearestNeighbor)
}

// Upscale enlarges img so its longer side equals target, preserving the
// aspect ratio.
func Upscale(img image.Image, target int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w >= h {
		return resize.Resize(uint(target), uint(h*target/w), img, resize.NearestNeighbor)
	}
	return resize.Resize(uint(w*target/h), uint(target), img, resize.NearestNeighbor)
}

func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SavePaletteStrip writes the palette as a horizontal strip of square
// swatches, one tile per color in palette order.
func SavePaletteStrip(colors []grid.RGB, tileSize int, path string) error {
	if len(colors) == 0 {
		return fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}
	strip := grid.NewPixels(tileSize*len(colors), tileSize)
	for i, c := range colors {
		for y := 0; y < tileSize; y++ {
			for x := i * tileSize; x < (i+1)*tileSize; x++ {
				strip.Set(x, y, c)
			}
		}
	}
	return SavePNG(strip.ToImage(), path)
}
