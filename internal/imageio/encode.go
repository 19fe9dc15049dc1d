package imageio

import (
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"pixelscale/internal/raster"
)

// Format is an output encoding.
type Format string

const (
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// ErrUnknownFormat is returned for output extensions with no encoder.
var ErrUnknownFormat = errors.New("imageio: unknown format")

// ParseFormat accepts a format name or a file extension with or without
// the leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "webp":
		return FormatWebP, nil
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension used for f, including the dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return "." + string(f)
}

// Options tune encoding.
type Options struct {
	// Quality applies to JPEG only; WebP output is lossless.
	Quality int
}

// Encode writes buf to w in the given format.
func Encode(w io.Writer, buf *raster.Buffer, f Format, o Options) error {
	img := buf.NRGBA()
	switch f {
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		q := o.Quality
		if q <= 0 || q > 100 {
			q = jpeg.DefaultQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Save encodes buf to path, picking the format from the extension and
// creating parent directories as needed.
func Save(path string, buf *raster.Buffer, o Options) error {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: mkdir %s: %w", filepath.Dir(path), err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	if err := Encode(out, buf, f, o); err != nil {
		out.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return out.Close()
}
