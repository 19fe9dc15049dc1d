package colorspace

import "math"

// Transfer function breakpoints (IEC 61966-2-1).
const (
	linearBreak  = 0.0031308
	encodedBreak = 0.04045
	gamma        = 2.4
)

// LinearToEncoded maps a linear channel value to its gamma-encoded byte.
// NaN and values <= 0 are black, values >= 1 saturate at 255.
func LinearToEncoded(v float32) uint8 {
	switch {
	case !(v > 0): // also catches NaN
		return 0
	case v <= linearBreak:
		return uint8(255*v*12.92 + 0.5)
	case v < 1:
		p := float32(math.Pow(float64(v), 1/gamma))
		return uint8(255*(1.055*p-0.055) + 0.5)
	default:
		return 255
	}
}

// EncodedToLinear maps a gamma-encoded byte to a linear value in [0,1].
func EncodedToLinear(b uint8) float32 {
	v := float32(b) / 255
	switch {
	case !(v > 0):
		return 0
	case v <= encodedBreak:
		return v / 12.92
	case v < 1:
		return float32(math.Pow((float64(v)+0.055)/1.055, gamma))
	default:
		return 1
	}
}

// PackedToLinear linearizes R, G and B. Alpha is only normalized.
func PackedToLinear(c PackedColor) LinearColor {
	return LinearColor{
		A: float32(c.A) / 255,
		R: EncodedToLinear(c.R),
		G: EncodedToLinear(c.G),
		B: EncodedToLinear(c.B),
	}
}

// LinearToPacked encodes R, G and B with the sRGB curve. Alpha is clamped
// to [0,1] before scaling; a NaN alpha becomes 0.
func LinearToPacked(c LinearColor) PackedColor {
	a := c.A
	if !(a > 0) {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return PackedColor{
		A: uint8(a*255 + 0.5),
		R: LinearToEncoded(c.R),
		G: LinearToEncoded(c.G),
		B: LinearToEncoded(c.B),
	}
}
