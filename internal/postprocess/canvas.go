package postprocess

import (
	"context"
	"fmt"

	"pixelscale/internal/raster"
	"pixelscale/internal/resample"
)

// CropTransparent returns a copy cropped to the bounding box of pixels with
// non-zero alpha. A fully transparent buffer is returned whole.
func CropTransparent(buf *raster.Buffer) (*raster.Buffer, error) {
	minX, minY := buf.Width, buf.Height
	maxX, maxY := -1, -1
	for y := 0; y < buf.Height; y++ {
		row := buf.Row(y)
		for x := 0; x < buf.Width; x++ {
			if row[x*raster.BytesPerPixel+alphaIndex] == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		return buf.Clone(), nil
	}

	cropW := maxX - minX + 1
	cropH := maxY - minY + 1
	out, err := raster.NewBuffer(cropW, cropH, buf.Order)
	if err != nil {
		return nil, fmt.Errorf("postprocess: crop: %w", err)
	}
	for y := 0; y < cropH; y++ {
		si := buf.PixOffset(minX, minY+y)
		copy(out.Row(y), buf.Pix[si:si+cropW*raster.BytesPerPixel])
	}
	return out, nil
}

// FitCanvas scales src to the largest aspect-preserving size inside w x h
// and centers it on a transparent canvas of exactly w x h.
func FitCanvas(ctx context.Context, src *raster.Buffer, w, h int, m resample.Method, opts ...resample.Option) (*raster.Buffer, error) {
	scaled, err := resample.Fit(ctx, src, w, h, m, opts...)
	if err != nil {
		return nil, err
	}
	return Center(scaled, w, h)
}

// Center places buf in the middle of a transparent w x h canvas. buf must
// fit inside the canvas.
func Center(buf *raster.Buffer, w, h int) (*raster.Buffer, error) {
	if buf.Width > w || buf.Height > h {
		return nil, fmt.Errorf("postprocess: %dx%d does not fit in %dx%d: %w",
			buf.Width, buf.Height, w, h, raster.ErrInvalidDimension)
	}
	if buf.Width == w && buf.Height == h {
		return buf, nil
	}

	canvas, err := raster.NewBuffer(w, h, buf.Order)
	if err != nil {
		return nil, err
	}
	offX := (w - buf.Width) / 2
	offY := (h - buf.Height) / 2
	for y := 0; y < buf.Height; y++ {
		copy(canvas.Pix[canvas.PixOffset(offX, offY+y):], buf.Row(y))
	}
	return canvas, nil
}
