// Package postprocess holds optional steps around resampling: alpha
// premultiplication, transparent-border cropping and canvas fitting.
package postprocess

import (
	"context"

	"pixelscale/internal/raster"
	"pixelscale/internal/resample"
)

// alphaIndex is the same for BGRA and RGBA.
const alphaIndex = 3

// Premultiply returns a copy of buf with color channels scaled by alpha.
func Premultiply(buf *raster.Buffer) *raster.Buffer {
	out := buf.Clone()
	for i := 0; i < len(out.Pix); i += raster.BytesPerPixel {
		p := out.Pix[i : i+4 : i+4]
		a := float64(p[alphaIndex]) / 255.0
		for c := range 3 {
			p[c] = uint8(float64(p[c])*a + 0.5)
		}
	}
	return out
}

// Unpremultiply reverses Premultiply. Fully transparent pixels get black.
func Unpremultiply(buf *raster.Buffer) *raster.Buffer {
	out := buf.Clone()
	for i := 0; i < len(out.Pix); i += raster.BytesPerPixel {
		p := out.Pix[i : i+4 : i+4]
		a := float64(p[alphaIndex])
		if a == 0 {
			p[0], p[1], p[2] = 0, 0, 0
			continue
		}
		inv := 255.0 / a
		for c := range 3 {
			p[c] = clamp8(float64(p[c]) * inv)
		}
	}
	return out
}

// ResamplePremultiplied resamples in premultiplied space, which stops
// transparent pixels from tinting partially transparent edges.
func ResamplePremultiplied(ctx context.Context, src *raster.Buffer, w, h int, m resample.Method, opts ...resample.Option) (*raster.Buffer, error) {
	if src == nil {
		return resample.Resample(ctx, src, w, h, m, opts...)
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	dst, err := resample.Resample(ctx, Premultiply(src), w, h, m, opts...)
	if err != nil {
		return nil, err
	}
	return Unpremultiply(dst), nil
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
