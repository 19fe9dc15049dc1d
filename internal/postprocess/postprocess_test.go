package postprocess

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelscale/internal/colorspace"
	"pixelscale/internal/raster"
	"pixelscale/internal/resample"
)

func rgba(t *testing.T, w, h int, pix ...byte) *raster.Buffer {
	t.Helper()
	b, err := raster.Wrap(pix, w, h, w*4, raster.RGBA)
	require.NoError(t, err)
	return b
}

func TestPremultiplyRoundTrip(t *testing.T) {
	src := rgba(t, 2, 1,
		200, 100, 50, 128,
		9, 9, 9, 0,
	)

	pre := Premultiply(src)
	assert.Equal(t, []byte{100, 50, 25, 128, 0, 0, 0, 0}, pre.Pix)
	assert.Equal(t, byte(200), src.Pix[0], "source must not change")

	un := Unpremultiply(pre)
	assert.Equal(t, []byte{199, 100, 50, 128, 0, 0, 0, 0}, un.Pix)
}

func TestResamplePremultipliedAvoidsFringe(t *testing.T) {
	src := rgba(t, 2, 1,
		255, 0, 0, 0, // transparent red
		0, 0, 255, 255, // opaque blue
	)

	straight, err := resample.Resample(context.Background(), src, 4, 1, resample.Bilinear)
	require.NoError(t, err)
	assert.Equal(t, colorspace.PackedColor{R: 127, G: 0, B: 127, A: 127}, straight.Pixel(1, 0))

	pre, err := ResamplePremultiplied(context.Background(), src, 4, 1, resample.Bilinear)
	require.NoError(t, err)
	assert.Equal(t, colorspace.PackedColor{R: 0, G: 0, B: 255, A: 127}, pre.Pixel(1, 0))
}

func TestResamplePremultipliedErrors(t *testing.T) {
	_, err := ResamplePremultiplied(context.Background(), nil, 4, 1, resample.Bilinear)
	assert.ErrorIs(t, err, resample.ErrInvalidDimension)

	bad := &raster.Buffer{Width: 2, Height: 2, Stride: 8, Pix: make([]byte, 3)}
	_, err = ResamplePremultiplied(context.Background(), bad, 4, 1, resample.Bilinear)
	assert.ErrorIs(t, err, resample.ErrBufferTooSmall)
}

func TestCropTransparent(t *testing.T) {
	src, _ := raster.NewBuffer(4, 3, raster.BGRA)
	src.SetPixel(1, 1, colorspace.PackedColor{A: 255, R: 1})
	src.SetPixel(2, 1, colorspace.PackedColor{A: 10, G: 2})

	out, err := CropTransparent(src)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Width)
	assert.Equal(t, 1, out.Height)
	assert.Equal(t, colorspace.PackedColor{A: 10, G: 2}, out.Pixel(1, 0))

	empty, _ := raster.NewBuffer(3, 2, raster.BGRA)
	whole, err := CropTransparent(empty)
	require.NoError(t, err)
	assert.Equal(t, 3, whole.Width)
	assert.Equal(t, 2, whole.Height)
}

func TestFitCanvasCenters(t *testing.T) {
	src, _ := raster.NewBuffer(2, 1, raster.RGBA)
	red := colorspace.PackedColor{A: 255, R: 255}
	src.SetPixel(0, 0, red)
	src.SetPixel(1, 0, red)

	out, err := FitCanvas(context.Background(), src, 4, 4, resample.Bilinear)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Width)
	assert.Equal(t, 4, out.Height)

	// 4x2 image centered vertically: rows 1 and 2 opaque, rows 0 and 3 clear
	for x := 0; x < 4; x++ {
		assert.Equal(t, colorspace.PackedColor{}, out.Pixel(x, 0))
		assert.Equal(t, red, out.Pixel(x, 1))
		assert.Equal(t, red, out.Pixel(x, 2))
		assert.Equal(t, colorspace.PackedColor{}, out.Pixel(x, 3))
	}

	_, err = FitCanvas(context.Background(), src, 0, 4, resample.Bilinear)
	assert.ErrorIs(t, err, resample.ErrInvalidDimension)
}

func TestCenter(t *testing.T) {
	src, _ := raster.NewBuffer(1, 1, raster.BGRA)
	c := colorspace.PackedColor{A: 255, G: 9}
	src.SetPixel(0, 0, c)

	out, err := Center(src, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, c, out.Pixel(1, 0))
	assert.Equal(t, colorspace.PackedColor{}, out.Pixel(1, 1))

	same, err := Center(src, 1, 1)
	require.NoError(t, err)
	assert.Same(t, src, same)

	_, err = Center(src, 0, 3)
	assert.ErrorIs(t, err, raster.ErrInvalidDimension)
}
