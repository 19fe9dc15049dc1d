// Package imageio decodes image files into raster buffers and encodes
// buffers back to files. It is the only package that touches file formats.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"pixelscale/internal/raster"
)

// Load reads and decodes the image file at path.
func Load(path string, order raster.ChannelOrder) (*raster.Buffer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: read %s: %w", path, err)
	}
	buf, _, err := Decode(bytes.NewReader(raw), order)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return buf, nil
}

// Decode decodes any registered format and returns the pixels in the
// requested channel order along with the format name.
func Decode(r io.Reader, order raster.ChannelOrder) (*raster.Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	buf, err := raster.FromNRGBA(toNRGBA(img), order)
	if err != nil {
		return nil, format, err
	}
	return buf, format, nil
}

// toNRGBA converts any image to straight-alpha NRGBA. Opaque formats come
// out with alpha 255.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
