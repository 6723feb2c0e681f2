package scene

import (
	"github.com/fogleman/gg"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/loaders"
)

// SolidBackground is one color everywhere
type SolidBackground core.Color

// At returns the background color
func (b SolidBackground) At(x, y int) core.Color {
	return core.Color(b)
}

// ImageBackground samples an image by integer pixel coordinate. Stored
// pixels are gamma encoded and decoded to linear on lookup; coordinates
// outside the image are clamped to its edge.
type ImageBackground struct {
	image *loaders.ImageData
	gamma float64
}

// NewImageBackground wraps decoded image data
func NewImageBackground(image *loaders.ImageData, gamma float64) *ImageBackground {
	return &ImageBackground{image: image, gamma: gamma}
}

// At returns the linear color of pixel (x, y)
func (b *ImageBackground) At(x, y int) core.Color {
	return core.ColorFromRGBA(b.image.At(x, y), b.gamma)
}

// Size returns the dimensions of the underlying image
func (b *ImageBackground) Size() (int, int) {
	return b.image.Width, b.image.Height
}

// NewGradientBackground rasterizes a vertical gradient from top to bottom
// at the given resolution. Colors are linear and are encoded with gamma
// before rasterizing, so At returns them up to quantization at the two edges.
func NewGradientBackground(width, height int, top, bottom core.Color, gamma float64) *ImageBackground {
	dc := gg.NewContext(width, height)

	gradient := gg.NewLinearGradient(0, 0, 0, float64(height))
	gradient.AddColorStop(0, top.ToRGBA(gamma))
	gradient.AddColorStop(1, bottom.ToRGBA(gamma))

	dc.SetFillStyle(gradient)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	return NewImageBackground(loaders.FromImage(dc.Image()), gamma)
}
