// Package raster holds the packed 4-byte-per-pixel buffer shared by the
// resamplers and the image I/O layer.
package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"pixelscale/internal/colorspace"
)

// BytesPerPixel is fixed: every supported layout packs four 8-bit channels.
const BytesPerPixel = 4

var (
	// ErrInvalidDimension reports a width, height or stride that cannot
	// describe a buffer.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrBufferTooSmall reports pixel memory shorter than stride*height.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// ChannelOrder is the byte order of the four channels inside one pixel.
type ChannelOrder uint8

const (
	BGRA ChannelOrder = iota
	RGBA
)

func (o ChannelOrder) String() string {
	switch o {
	case BGRA:
		return "BGRA"
	case RGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

// Buffer is a row-major pixel buffer. Row y starts at Pix[y*Stride]; bytes
// between 4*Width and Stride are padding and are never read.
type Buffer struct {
	Width  int
	Height int
	Stride int
	Order  ChannelOrder
	Pix    []byte
}

// NewBuffer allocates a zeroed buffer with no row padding. Sizes whose
// byte length does not fit in an int are ErrInvalidDimension.
func NewBuffer(w, h int, order ChannelOrder) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	if w > math.MaxInt/BytesPerPixel/h {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimension, w, h)
	}
	return &Buffer{
		Width:  w,
		Height: h,
		Stride: w * BytesPerPixel,
		Order:  order,
		Pix:    make([]byte, w*h*BytesPerPixel),
	}, nil
}

// Wrap validates caller-owned pixel memory and returns a Buffer over it.
// The memory is not copied.
func Wrap(pix []byte, w, h, stride int, order ChannelOrder) (*Buffer, error) {
	b := &Buffer{Width: w, Height: h, Stride: stride, Order: order, Pix: pix}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the dimension and length invariants.
func (b *Buffer) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, b.Width, b.Height)
	}
	if b.Width > math.MaxInt/BytesPerPixel {
		return fmt.Errorf("%w: width %d overflows", ErrInvalidDimension, b.Width)
	}
	if b.Stride < b.Width*BytesPerPixel {
		return fmt.Errorf("%w: stride %d < %d", ErrInvalidDimension, b.Stride, b.Width*BytesPerPixel)
	}
	// No slice can be longer than MaxInt, so an overflowing size never fits.
	if b.Height > math.MaxInt/b.Stride {
		return fmt.Errorf("%w: %d rows of %d bytes", ErrBufferTooSmall, b.Height, b.Stride)
	}
	if need := b.Stride * b.Height; len(b.Pix) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(b.Pix), need)
	}
	return nil
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return y*b.Stride + x*BytesPerPixel
}

// Row returns the pixel bytes of row y without padding.
func (b *Buffer) Row(y int) []byte {
	i := y * b.Stride
	return b.Pix[i : i+b.Width*BytesPerPixel]
}

// Pixel decodes pixel (x, y) according to the channel order.
func (b *Buffer) Pixel(x, y int) colorspace.PackedColor {
	p := b.Pix[b.PixOffset(x, y):]
	if b.Order == RGBA {
		return colorspace.PackedColor{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
	return colorspace.PackedColor{B: p[0], G: p[1], R: p[2], A: p[3]}
}

// SetPixel stores c at (x, y) according to the channel order.
func (b *Buffer) SetPixel(x, y int, c colorspace.PackedColor) {
	p := b.Pix[b.PixOffset(x, y):]
	if b.Order == RGBA {
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
		return
	}
	p[0], p[1], p[2], p[3] = c.B, c.G, c.R, c.A
}

// Tight returns the pixels as a fresh slice with Stride == 4*Width.
func (b *Buffer) Tight() []byte {
	rowLen := b.Width * BytesPerPixel
	out := make([]byte, rowLen*b.Height)
	for y := 0; y < b.Height; y++ {
		copy(out[y*rowLen:(y+1)*rowLen], b.Row(y))
	}
	return out
}

// Clone returns an independent tight copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Stride: b.Width * BytesPerPixel,
		Order:  b.Order,
		Pix:    b.Tight(),
	}
}

// FromNRGBA copies a straight-alpha image into a new buffer with the given
// channel order.
func FromNRGBA(img *image.NRGBA, order ChannelOrder) (*Buffer, error) {
	r := img.Bounds()
	dst, err := NewBuffer(r.Dx(), r.Dy(), order)
	if err != nil {
		return nil, err
	}
	for y := 0; y < dst.Height; y++ {
		si := img.PixOffset(r.Min.X, r.Min.Y+y)
		src := img.Pix[si : si+dst.Width*BytesPerPixel]
		row := dst.Row(y)
		if order == RGBA {
			copy(row, src)
			continue
		}
		for i := 0; i < len(row); i += BytesPerPixel {
			row[i], row[i+1], row[i+2], row[i+3] = src[i+2], src[i+1], src[i], src[i+3]
		}
	}
	return dst, nil
}

// NRGBA copies the buffer into a new straight-alpha image.
func (b *Buffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		src := b.Row(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+b.Width*BytesPerPixel]
		if b.Order == RGBA {
			copy(dst, src)
			continue
		}
		for i := 0; i < len(dst); i += BytesPerPixel {
			dst[i], dst[i+1], dst[i+2], dst[i+3] = src[i+2], src[i+1], src[i], src[i+3]
		}
	}
	return img
}
