package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func tgaHeader(imageType byte, w, h int, bpp byte, descriptor byte) []byte {
	hdr := make([]byte, tgaHeaderSize)
	hdr[2] = imageType
	hdr[12], hdr[13] = byte(w), byte(w>>8)
	hdr[14], hdr[15] = byte(h), byte(h>>8)
	hdr[16] = bpp
	hdr[17] = descriptor
	return hdr
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x1, bottom-up, BGR: red then green.
	data := append(tgaHeader(TGATypeUncompressed, 2, 1, 24, 0),
		0, 0, 255,
		0, 255, 0,
	)

	img, err := DecodeTGA(data)
	require.NoError(t, err)
	rgba := img.(*image.RGBA)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, rgba.RGBAAt(1, 0))
}

func TestDecodeTGAFlip(t *testing.T) {
	bgra := []byte{
		255, 0, 0, 128, // blue, first in file
		0, 0, 255, 255, // red
	}

	bottomUp, err := DecodeTGA(append(tgaHeader(TGATypeUncompressed, 1, 2, 32, 0), bgra...))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{B: 255, A: 128}, bottomUp.(*image.RGBA).RGBAAt(0, 1))

	topDown, err := DecodeTGA(append(tgaHeader(TGATypeUncompressed, 1, 2, 32, 0x20), bgra...))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{B: 255, A: 128}, topDown.(*image.RGBA).RGBAAt(0, 0))
}

func TestDecodeTGARLE(t *testing.T) {
	// Run of three blue pixels, then one raw white pixel, top-down.
	data := append(tgaHeader(TGATypeRLE, 4, 1, 24, 0x20),
		0x82, 255, 0, 0,
		0x00, 255, 255, 255,
	)

	img, err := DecodeTGA(data)
	require.NoError(t, err)
	rgba := img.(*image.RGBA)
	for x := range 3 {
		assert.Equal(t, color.RGBA{B: 255, A: 255}, rgba.RGBAAt(x, 0))
	}
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgba.RGBAAt(3, 0))
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"color mapped", func() []byte { h := tgaHeader(TGATypeUncompressed, 1, 1, 24, 0); h[1] = 1; return h }()},
		{"grayscale", tgaHeader(3, 1, 1, 8, 0)},
		{"16 bit", tgaHeader(TGATypeUncompressed, 1, 1, 16, 0)},
		{"truncated pixels", append(tgaHeader(TGATypeUncompressed, 2, 2, 24, 0), 1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTGA(tt.data)
			assert.Error(t, err)
		})
	}
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	return img
}

func TestDecodeFiles(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "water.png")
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, testImage()))
	require.NoError(t, f.Close())

	bmpPath := filepath.Join(dir, "water.BMP")
	f, err = os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, testImage()))
	require.NoError(t, f.Close())

	for _, path := range []string{pngPath, bmpPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			img, err := Decode(path)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
			assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, img.RGBAAt(0, 0))
			assert.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, img.RGBAAt(2, 1))
		})
	}
}

func TestDecodeMissing(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestFitPowerOfTwo(t *testing.T) {
	img := ToRGBA(image.NewRGBA(image.Rect(0, 0, 300, 64)))

	fit := FitPowerOfTwo(img, 128)
	assert.Equal(t, image.Rect(0, 0, 128, 64), fit.Bounds())

	same := ToRGBA(image.NewRGBA(image.Rect(0, 0, 64, 32)))
	assert.Same(t, same, FitPowerOfTwo(same, 128))
}
