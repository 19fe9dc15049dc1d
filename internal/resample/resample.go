// Package resample produces resized copies of packed 4-byte-per-pixel
// buffers using either a 4x4 bicubic convolution or 2x2 bilinear
// interpolation.
//
// Both methods treat every channel, alpha included, as an independent
// straight (non-premultiplied) value. Color from fully transparent source
// pixels therefore bleeds into partially transparent destination edges;
// postprocess.ResamplePremultiplied is the opt-in alternative.
//
// Resampling never mutates the source and never returns a partial buffer.
package resample

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"pixelscale/internal/raster"
)

var (
	ErrInvalidDimension = raster.ErrInvalidDimension
	ErrBufferTooSmall   = raster.ErrBufferTooSmall
)

// Method selects the reconstruction filter.
type Method uint8

const (
	// Bicubic uses a Catmull-Rom kernel over a 4x4 neighborhood.
	Bicubic Method = iota
	// Bilinear interpolates the 2x2 neighborhood.
	Bilinear
)

func (m Method) String() string {
	switch m {
	case Bicubic:
		return "bicubic"
	case Bilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// ParseMethod accepts the names printed by Method.String, case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bicubic", "cubic":
		return Bicubic, nil
	case "bilinear", "linear":
		return Bilinear, nil
	}
	return 0, fmt.Errorf("resample: unknown method %q", s)
}

// rowFunc fills destination rows [y0, y1).
type rowFunc func(src, dst *raster.Buffer, y0, y1 int)

func (m Method) rows() (rowFunc, error) {
	switch m {
	case Bicubic:
		return bicubicRows, nil
	case Bilinear:
		return bilinearRows, nil
	}
	return nil, fmt.Errorf("resample: unknown method %d", m)
}

const defaultRowsPerChunk = 16

type options struct {
	workers      int
	rowsPerChunk int
}

// Option tunes how a resample call is executed. Options never change the
// output bytes.
type Option func(*options)

// WithWorkers processes row chunks on up to n goroutines. n <= 1 runs
// serially on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithRowsPerChunk sets how many destination rows make up one unit of work.
// Cancellation is observed between chunks.
func WithRowsPerChunk(n int) Option {
	return func(o *options) { o.rowsPerChunk = n }
}

// Resample returns a new dstW x dstH buffer reconstructed from src. The
// destination has no row padding and keeps the source channel order.
func Resample(ctx context.Context, src *raster.Buffer, dstW, dstH int, m Method, opts ...Option) (*raster.Buffer, error) {
	fill, err := m.rows()
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("resample: nil source: %w", ErrInvalidDimension)
	}
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("resample: source: %w", err)
	}
	if dstW <= 0 || dstH <= 0 {
		return nil, fmt.Errorf("resample: destination %dx%d: %w", dstW, dstH, ErrInvalidDimension)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	dst, err := raster.NewBuffer(dstW, dstH, src.Order)
	if err != nil {
		return nil, err
	}
	err = forEachChunk(ctx, dstH, o, func(y0, y1 int) {
		fill(src, dst, y0, y1)
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// forEachChunk splits [0, height) into chunks. Every destination pixel
// depends only on the read-only source, so chunks run in any order.
func forEachChunk(ctx context.Context, height int, o options, fn func(y0, y1 int)) error {
	chunk := o.rowsPerChunk
	if chunk <= 0 {
		chunk = defaultRowsPerChunk
	}

	if o.workers <= 1 {
		for y := 0; y < height; y += chunk {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(y, min(y+chunk, height))
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for y := 0; y < height && gctx.Err() == nil; y += chunk {
		y0, y1 := y, min(y+chunk, height)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(y0, y1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// BicubicResample resamples a tightly packed buffer (stride 4*srcW) and
// returns 4*dstW*dstH freshly allocated bytes.
func BicubicResample(buf []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
	return resampleBytes(buf, srcW, srcH, dstW, dstH, Bicubic)
}

// BilinearResample is the bilinear counterpart of BicubicResample.
func BilinearResample(buf []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
	return resampleBytes(buf, srcW, srcH, dstW, dstH, Bilinear)
}

func resampleBytes(buf []byte, srcW, srcH, dstW, dstH int, m Method) ([]byte, error) {
	src := &raster.Buffer{
		Width:  srcW,
		Height: srcH,
		Stride: srcW * raster.BytesPerPixel,
		Pix:    buf,
	}
	dst, err := Resample(context.Background(), src, dstW, dstH, m)
	if err != nil {
		return nil, err
	}
	return dst.Pix, nil
}

// saturate clamps v to [0,255] and truncates toward zero.
//
// Before truncating it adds 1e-7. Kernel weights are inexact in binary
// floating point, so a sum whose exact value is an integer n can come out
// as n-1e-13 and would otherwise truncate to n-1, and a 1x1 source would
// not replicate. Only values within 1e-7 below an integer are moved up.
func saturate(v float64) uint8 {
	v += 1e-7
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
