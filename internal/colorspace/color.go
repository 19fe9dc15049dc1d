// Package colorspace converts between gamma-encoded 8-bit sRGB channels and
// linear-light (scRGB) float channels.
package colorspace

import "fmt"

// PackedColor is a straight-alpha color with one byte per channel.
type PackedColor struct {
	A, R, G, B uint8
}

// LinearColor holds linear-light channels in [0,1].
// Alpha is always linear, it is never gamma-encoded.
type LinearColor struct {
	A, R, G, B float32
}

// ARGB packs the color into a word with alpha in the high byte.
func (c PackedColor) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// PackedFromARGB is the inverse of PackedColor.ARGB.
func PackedFromARGB(w uint32) PackedColor {
	return PackedColor{
		A: uint8(w >> 24),
		R: uint8(w >> 16),
		G: uint8(w >> 8),
		B: uint8(w),
	}
}

func (c PackedColor) String() string {
	return fmt.Sprintf("A: %d, R: %d, G: %d, B: %d", c.A, c.R, c.G, c.B)
}
