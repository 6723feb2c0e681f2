package loaders

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// ImageData is a decoded raster as gamma-encoded RGBA bytes
type ImageData struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major, top row first
}

// LoadImage loads a PNG or JPEG image
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	return FromImage(img), nil
}

// FromImage copies any image into an ImageData
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]color.RGBA, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = color.RGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.RGBA)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// At returns the pixel at (x, y). Coordinates outside the image are
// clamped to the nearest edge.
func (d *ImageData) At(x, y int) color.RGBA {
	if d.Width == 0 || d.Height == 0 {
		return color.RGBA{}
	}
	x = min(max(x, 0), d.Width-1)
	y = min(max(y, 0), d.Height-1)
	return d.Pixels[y*d.Width+x]
}

// SaveImage writes the image as PNG or GIF depending on the file extension
func SaveImage(filename string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gif":
		return SaveGIF(filename, img)
	case ".png":
		return SavePNG(filename, img)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(filename))
	}
}

// SavePNG encodes the image as PNG
func SavePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}

// SaveGIF encodes the image as a single-frame GIF on the 216-color web-safe
// palette, using Floyd-Steinberg error diffusion
func SaveGIF(filename string, img image.Image) error {
	bounds := img.Bounds()
	paletted := image.NewPaletted(bounds, palette.WebSafe)
	draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := gif.Encode(file, paletted, &gif.Options{NumColors: len(palette.WebSafe)}); err != nil {
		file.Close()
		return fmt.Errorf("error saving GIF: %w", err)
	}
	return file.Close()
}
