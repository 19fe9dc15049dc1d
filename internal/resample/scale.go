package resample

import (
	"context"
	"fmt"
	"math"

	"pixelscale/internal/raster"
)

// ScaleDimensions multiplies w and h by factor, truncating.
func ScaleDimensions(w, h int, factor float64) (int, int, error) {
	if !(factor > 0) || math.IsInf(factor, 1) {
		return 0, 0, fmt.Errorf("resample: scale factor %v: %w", factor, ErrInvalidDimension)
	}
	dw := int(float64(w) * factor)
	dh := int(float64(h) * factor)
	if dw <= 0 || dh <= 0 {
		return 0, 0, fmt.Errorf("resample: %dx%d scaled by %v is %dx%d: %w", w, h, factor, dw, dh, ErrInvalidDimension)
	}
	return dw, dh, nil
}

// Scale resamples src by a uniform factor.
func Scale(ctx context.Context, src *raster.Buffer, factor float64, m Method, opts ...Option) (*raster.Buffer, error) {
	if src == nil {
		return nil, fmt.Errorf("resample: nil source: %w", ErrInvalidDimension)
	}
	w, h, err := ScaleDimensions(src.Width, src.Height, factor)
	if err != nil {
		return nil, err
	}
	return Resample(ctx, src, w, h, m, opts...)
}

// FitDimensions returns the largest size with the source aspect ratio that
// fits inside boxW x boxH. The smaller of the two axis ratios wins and the
// result truncates, but never below one pixel.
func FitDimensions(srcW, srcH, boxW, boxH int) (int, int, error) {
	if srcW <= 0 || srcH <= 0 || boxW <= 0 || boxH <= 0 {
		return 0, 0, fmt.Errorf("resample: fit %dx%d into %dx%d: %w", srcW, srcH, boxW, boxH, ErrInvalidDimension)
	}
	ratio := math.Min(float64(boxW)/float64(srcW), float64(boxH)/float64(srcH))
	w := max(int(float64(srcW)*ratio), 1)
	h := max(int(float64(srcH)*ratio), 1)
	return min(w, boxW), min(h, boxH), nil
}

// Fit resamples src to the largest aspect-preserving size inside the box.
func Fit(ctx context.Context, src *raster.Buffer, boxW, boxH int, m Method, opts ...Option) (*raster.Buffer, error) {
	if src == nil {
		return nil, fmt.Errorf("resample: nil source: %w", ErrInvalidDimension)
	}
	w, h, err := FitDimensions(src.Width, src.Height, boxW, boxH)
	if err != nil {
		return nil, err
	}
	return Resample(ctx, src, w, h, m, opts...)
}
