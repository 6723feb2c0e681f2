package loaders

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func newQuadImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{G: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{B: 255, A: 255})
	return img
}

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, newQuadImage()); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	imageData, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if imageData.Width != 2 || imageData.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}
	if len(imageData.Pixels) != 4 {
		t.Errorf("Expected 4 pixels, got %d", len(imageData.Pixels))
	}

	tests := []struct {
		x, y     int
		expected color.RGBA
	}{
		{0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{1, 0, color.RGBA{R: 255, A: 255}},
		{0, 1, color.RGBA{G: 255, A: 255}},
		{1, 1, color.RGBA{B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := imageData.At(tt.x, tt.y); got != tt.expected {
			t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.expected, got)
		}
	}
}

func TestLoadImage_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadImage(garbage); err == nil {
		t.Error("Expected error for undecodable file")
	}
}

func TestImageData_AtClampsToEdges(t *testing.T) {
	data := FromImage(newQuadImage())

	tests := []struct {
		x, y  int
		wantX int
		wantY int
	}{
		{-5, 0, 0, 0},
		{7, 0, 1, 0},
		{0, -1, 0, 0},
		{1, 99, 1, 1},
		{-3, 42, 0, 1},
	}
	for _, tt := range tests {
		if got, want := data.At(tt.x, tt.y), data.At(tt.wantX, tt.wantY); got != want {
			t.Errorf("At(%d,%d) = %v, expected edge pixel %v", tt.x, tt.y, got, want)
		}
	}

	if got := (&ImageData{}).At(0, 0); got != (color.RGBA{}) {
		t.Errorf("Expected zero color from empty image, got %v", got)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 12, 21))
	img.SetRGBA(11, 20, color.RGBA{R: 9, G: 8, B: 7, A: 255})

	data := FromImage(img)
	if data.Width != 2 || data.Height != 1 {
		t.Fatalf("Expected 2x1, got %dx%d", data.Width, data.Height)
	}
	if got := data.At(1, 0); got != (color.RGBA{R: 9, G: 8, B: 7, A: 255}) {
		t.Errorf("Expected translated pixel, got %v", got)
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	img := newQuadImage()

	pngPath := filepath.Join(dir, "out.png")
	if err := SaveImage(pngPath, img); err != nil {
		t.Fatalf("SaveImage PNG failed: %v", err)
	}
	loaded, err := LoadImage(pngPath)
	if err != nil {
		t.Fatalf("Failed to reload PNG: %v", err)
	}
	if loaded.At(1, 0) != img.RGBAAt(1, 0) {
		t.Errorf("PNG round trip changed pixel: %v", loaded.At(1, 0))
	}

	gifPath := filepath.Join(dir, "out.GIF")
	if err := SaveImage(gifPath, img); err != nil {
		t.Fatalf("SaveImage GIF failed: %v", err)
	}
	f, err := os.Open(gifPath)
	if err != nil {
		t.Fatalf("Failed to open GIF: %v", err)
	}
	defer f.Close()
	decoded, err := gif.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode GIF: %v", err)
	}
	// Primaries and white are all in the web-safe palette
	r, g, b, _ := decoded.At(1, 1).RGBA()
	if r != 0 || g != 0 || b != 0xffff {
		t.Errorf("Expected pure blue after GIF round trip, got %d %d %d", r, g, b)
	}

	if err := SaveImage(filepath.Join(dir, "out.bmp"), img); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}
