package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelscale/internal/colorspace"
)

func TestNewBuffer(t *testing.T) {
	b, err := NewBuffer(3, 2, BGRA)
	require.NoError(t, err)
	assert.Equal(t, 12, b.Stride)
	assert.Len(t, b.Pix, 24)

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 4}, {math.MaxInt32, math.MaxInt32}, {math.MaxInt / 2, 1}} {
		_, err := NewBuffer(dims[0], dims[1], BGRA)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	}
}

func TestWrapValidation(t *testing.T) {
	tests := []struct {
		name    string
		pixLen  int
		w, h    int
		stride  int
		wantErr error
	}{
		{"tight", 16, 2, 2, 8, nil},
		{"padded", 24, 2, 2, 12, nil},
		{"padded last row short", 20, 2, 2, 12, ErrBufferTooSmall},
		{"stride too small", 16, 2, 2, 4, ErrInvalidDimension},
		{"zero width", 16, 0, 2, 8, ErrInvalidDimension},
		{"negative height", 16, 2, -1, 8, ErrInvalidDimension},
		{"short buffer", 15, 2, 2, 8, ErrBufferTooSmall},
		{"size overflows", 4, 1, math.MaxInt / 2, 4, ErrBufferTooSmall},
		{"width overflows", 4, math.MaxInt / 2, 1, 4, ErrInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Wrap(make([]byte, tt.pixLen), tt.w, tt.h, tt.stride, RGBA)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.stride, b.Stride)
		})
	}
}

func TestPixelChannelOrder(t *testing.T) {
	c := colorspace.PackedColor{A: 4, R: 1, G: 2, B: 3}

	bgra, _ := NewBuffer(1, 1, BGRA)
	bgra.SetPixel(0, 0, c)
	assert.Equal(t, []byte{3, 2, 1, 4}, bgra.Pix)
	assert.Equal(t, c, bgra.Pixel(0, 0))

	rgba, _ := NewBuffer(1, 1, RGBA)
	rgba.SetPixel(0, 0, c)
	assert.Equal(t, []byte{1, 2, 3, 4}, rgba.Pix)
	assert.Equal(t, c, rgba.Pixel(0, 0))
}

func TestTightDropsPadding(t *testing.T) {
	pix := []byte{
		1, 2, 3, 4, 9, 9,
		5, 6, 7, 8, 9, 9,
	}
	b, err := Wrap(pix, 1, 2, 6, BGRA)
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 6, 7, 8}, b.Row(1))
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b.Tight())

	c := b.Clone()
	assert.Equal(t, 4, c.Stride)
	c.Pix[0] = 0
	assert.Equal(t, byte(1), pix[0], "clone must not alias the source")
}

func TestNRGBAConversion(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	img.SetNRGBA(1, 0, color.NRGBA{R: 50, G: 60, B: 70, A: 80})

	for _, order := range []ChannelOrder{BGRA, RGBA} {
		t.Run(order.String(), func(t *testing.T) {
			b, err := FromNRGBA(img, order)
			require.NoError(t, err)
			assert.Equal(t, colorspace.PackedColor{R: 50, G: 60, B: 70, A: 80}, b.Pixel(1, 0))
			assert.Equal(t, img.Pix, b.NRGBA().Pix)
		})
	}
}

func TestFromNRGBASubImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img.SetNRGBA(2, 2, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)

	b, err := FromNRGBA(sub, RGBA)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Width)
	assert.Equal(t, colorspace.PackedColor{R: 1, G: 2, B: 3, A: 255}, b.Pixel(1, 1))
}
