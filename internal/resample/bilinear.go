package resample

import (
	"pixelscale/internal/raster"
)

// bilinearRows maps destination pixel d to source coordinate d*(src/dst)
// (no half-pixel shift) and blends the 2x2 neighborhood. The last row and
// column are replicated at the edges. Equal sizes reproduce the source.
func bilinearRows(src, dst *raster.Buffer, y0, y1 int) {
	xs := float64(src.Width) / float64(dst.Width)
	ys := float64(src.Height) / float64(dst.Height)
	maxX, maxY := src.Width-1, src.Height-1
	pix := src.Pix

	for y := y0; y < y1; y++ {
		sy := float64(y) * ys
		ty := min(int(sy), maxY)
		fracy := sy - float64(ty)
		by := min(ty+1, maxY)
		row0 := ty * src.Stride
		row1 := by * src.Stride

		out := dst.Row(y)
		for x := 0; x < dst.Width; x++ {
			sx := float64(x) * xs
			lx := min(int(sx), maxX)
			fracx := sx - float64(lx)
			rx := min(lx+1, maxX) * raster.BytesPerPixel
			lx *= raster.BytesPerPixel

			i00 := row0 + lx
			i01 := row0 + rx
			i10 := row1 + lx
			i11 := row1 + rx

			o := x * raster.BytesPerPixel
			for c := range 4 {
				top := lerp(float64(pix[i00+c]), float64(pix[i01+c]), fracx)
				bottom := lerp(float64(pix[i10+c]), float64(pix[i11+c]), fracx)
				out[o+c] = saturate(lerp(top, bottom, fracy))
			}
		}
	}
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
