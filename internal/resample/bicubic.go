package resample

import (
	"math"

	"pixelscale/internal/raster"
)

// BicubicKernel is the Catmull-Rom weight (a = -0.5) for distance x.
// It is even and zero outside (-2, 2).
func BicubicKernel(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x <= 1:
		return (1.5*x-2.5)*x*x + 1
	case x < 2:
		return ((-0.5*x+2.5)*x-4)*x + 2
	default:
		return 0
	}
}

// bicubicRows maps destination pixel d to source coordinate
// d*(src/dst) - 0.5 and convolves the clamped 4x4 neighborhood. Equal
// sizes still go through the kernel.
func bicubicRows(src, dst *raster.Buffer, y0, y1 int) {
	xRatio := float64(src.Width) / float64(dst.Width)
	yRatio := float64(src.Height) / float64(dst.Height)
	maxX, maxY := src.Width-1, src.Height-1

	var (
		wx, wy     [4]float64
		cols, rows [4]int
	)
	for dy := y0; dy < y1; dy++ {
		sy := float64(dy)*yRatio - 0.5
		fy := math.Floor(sy)
		fracy := sy - fy
		iy := int(fy)
		for n := -1; n <= 2; n++ {
			wy[n+1] = BicubicKernel(fracy - float64(n))
			rows[n+1] = clamp(iy+n, 0, maxY) * src.Stride
		}

		out := dst.Row(dy)
		for dx := 0; dx < dst.Width; dx++ {
			sx := float64(dx)*xRatio - 0.5
			fx := math.Floor(sx)
			fracx := sx - fx
			ix := int(fx)
			for m := -1; m <= 2; m++ {
				wx[m+1] = BicubicKernel(float64(m) - fracx)
				cols[m+1] = clamp(ix+m, 0, maxX) * raster.BytesPerPixel
			}

			var c0, c1, c2, c3 float64
			for n := range 4 {
				for m := range 4 {
					w := wy[n] * wx[m]
					i := rows[n] + cols[m]
					p := src.Pix[i : i+4 : i+4]
					c0 += w * float64(p[0])
					c1 += w * float64(p[1])
					c2 += w * float64(p[2])
					c3 += w * float64(p[3])
				}
			}

			o := dx * raster.BytesPerPixel
			out[o] = saturate(c0)
			out[o+1] = saturate(c1)
			out[o+2] = saturate(c2)
			out[o+3] = saturate(c3)
		}
	}
}
