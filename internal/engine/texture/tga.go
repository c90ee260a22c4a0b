package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("TGA data truncated")

// DecodeTGA decodes uncompressed or RLE true-color TGA data at 24 or 32 bits
// per pixel.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, errTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		width:       width,
		height:      height,
		bytesPP:     bpp / 8,
		topToBottom: descriptor&0x20 != 0,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = d.decodeRaw()
	} else {
		err = d.decodeRLE()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	img           *image.RGBA
	src           []byte
	pos           int
	width, height int
	bytesPP       int
	topToBottom   bool
	written       int
}

// next reads one BGR(A) pixel from the source.
func (d *tgaDecoder) next() (color.RGBA, bool) {
	if d.pos+d.bytesPP > len(d.src) {
		return color.RGBA{}, false
	}
	p := d.src[d.pos : d.pos+d.bytesPP]
	d.pos += d.bytesPP

	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bytesPP == 4 {
		c.A = p[3]
	}
	return c, true
}

// put stores c at the next pixel in file order. Bottom-up files are flipped
// so row 0 of the image is always the top.
func (d *tgaDecoder) put(c color.RGBA) {
	x, y := d.written%d.width, d.written/d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
	d.written++
}

func (d *tgaDecoder) total() int { return d.width * d.height }

func (d *tgaDecoder) decodeRaw() error {
	for d.written < d.total() {
		c, ok := d.next()
		if !ok {
			return errTGATruncated
		}
		d.put(c)
	}
	return nil
}

// decodeRLE stops quietly at the end of the data; some encoders omit the
// trailing packet.
func (d *tgaDecoder) decodeRLE() error {
	for d.written < d.total() && d.pos < len(d.src) {
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := d.next()
			if !ok {
				return nil
			}
			for range min(count, d.total()-d.written) {
				d.put(c)
			}
			continue
		}

		for range min(count, d.total()-d.written) {
			c, ok := d.next()
			if !ok {
				return nil
			}
			d.put(c)
		}
	}
	return nil
}
