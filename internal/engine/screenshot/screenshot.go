// Package screenshot saves the current frame as a PNG.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Capture reads the framebuffer and writes it to dir as
// <prefix>_<timestamp>.png, returning the file name.
func Capture(dir, prefix string, width, height int) (string, error) {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return Save(img, dir, prefix, time.Now())
}

// FromPixels builds an image from bottom-up RGBA rows as OpenGL returns
// them.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := range height {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Save writes img as a PNG named after prefix and the capture time.
func Save(img image.Image, dir, prefix string, at time.Time) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, at.Format("2006-01-02_15-04-05")))
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}
