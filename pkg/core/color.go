package core

import (
	"image/color"
	"math"
)

// Color is a linear-space RGB value. All operations return new values.
type Color struct {
	R, G, B float64
}

// NewColor creates a new linear color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero color
var Black = Color{}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every channel by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the component-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Divide divides every channel by a scalar
func (c Color) Divide(scalar float64) Color {
	return Color{c.R / scalar, c.G / scalar, c.B / scalar}
}

// Luminance returns the perceptual luminance of the color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// GammaEncode applies value^(1/gamma) to each channel
func (c Color) GammaEncode(gamma float64) Color {
	invGamma := 1.0 / gamma
	return Color{
		R: math.Pow(c.R, invGamma),
		G: math.Pow(c.G, invGamma),
		B: math.Pow(c.B, invGamma),
	}
}

// GammaDecode applies value^gamma to each channel
func (c Color) GammaDecode(gamma float64) Color {
	return Color{
		R: math.Pow(c.R, gamma),
		G: math.Pow(c.G, gamma),
		B: math.Pow(c.B, gamma),
	}
}

// ToRGBA gamma-encodes the color and truncates each channel to a byte.
// Channels saturate at 0 and 255; alpha is always opaque.
func (c Color) ToRGBA(gamma float64) color.RGBA {
	encoded := c.GammaEncode(gamma)
	return color.RGBA{
		R: quantize(encoded.R),
		G: quantize(encoded.G),
		B: quantize(encoded.B),
		A: 255,
	}
}

// ColorFromRGBA converts a gamma-encoded byte color back to linear space
func ColorFromRGBA(rgba color.RGBA, gamma float64) Color {
	encoded := Color{
		R: float64(rgba.R) / 255.0,
		G: float64(rgba.G) / 255.0,
		B: float64(rgba.B) / 255.0,
	}
	return encoded.GammaDecode(gamma)
}

func quantize(v float64) uint8 {
	// NaN fails both comparisons and lands here as 0
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255.0)
}
