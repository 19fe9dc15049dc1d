package colorspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodedRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := uint8(i)
		assert.Equal(t, b, LinearToEncoded(EncodedToLinear(b)), "byte %d", i)
	}
}

func TestTransferBoundaries(t *testing.T) {
	assert.Equal(t, float32(0), EncodedToLinear(0))
	assert.Equal(t, float32(1), EncodedToLinear(255))

	tests := []struct {
		name string
		in   float32
		want uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"above one", 1.5, 255},
		{"inf", float32(math.Inf(1)), 255},
		{"negative", -1, 0},
		{"negative inf", float32(math.Inf(-1)), 0},
		{"nan", float32(math.NaN()), 0},
		{"linear segment", 0.002, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LinearToEncoded(tt.in))
		})
	}
}

func TestEncodedToLinearMatchesClosedForm(t *testing.T) {
	v := 188.0 / 255.0
	want := math.Pow((v+0.055)/1.055, 2.4)
	got := EncodedToLinear(188)
	assert.InDelta(t, want, float64(got), 1e-6)
	assert.InDelta(t, 0.5, float64(got), 0.01)

	// 10/255 sits below the 0.04045 break and uses the linear segment.
	assert.InDelta(t, 10.0/255.0/12.92, float64(EncodedToLinear(10)), 1e-7)
}

func TestTransferMonotonic(t *testing.T) {
	prev := EncodedToLinear(0)
	for i := 1; i < 256; i++ {
		cur := EncodedToLinear(uint8(i))
		assert.Greater(t, cur, prev, "byte %d", i)
		prev = cur
	}
}

func TestPackedToLinear(t *testing.T) {
	c := PackedColor{A: 51, R: 255, G: 188, B: 0}
	l := PackedToLinear(c)

	assert.InDelta(t, 0.2, float64(l.A), 1e-6, "alpha is normalized, not linearized")
	assert.Equal(t, float32(1), l.R)
	assert.Equal(t, EncodedToLinear(188), l.G)
	assert.Equal(t, float32(0), l.B)
}

func TestLinearToPacked(t *testing.T) {
	tests := []struct {
		name string
		in   LinearColor
		want PackedColor
	}{
		{"opaque white", LinearColor{A: 1, R: 1, G: 1, B: 1}, PackedColor{A: 255, R: 255, G: 255, B: 255}},
		{"alpha clamped high", LinearColor{A: 7, R: 0, G: 0, B: 0}, PackedColor{A: 255}},
		{"alpha clamped low", LinearColor{A: -3, R: 2, G: -1, B: 0}, PackedColor{A: 0, R: 255}},
		{"alpha rounds", LinearColor{A: 0.5}, PackedColor{A: 128}},
		{"nan alpha", LinearColor{A: float32(math.NaN())}, PackedColor{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LinearToPacked(tt.in))
		})
	}
}

func TestPackedRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := PackedColor{A: uint8(i), R: uint8(i), G: uint8(255 - i), B: uint8(i * 7)}
		assert.Equal(t, c, LinearToPacked(PackedToLinear(c)))
	}
}

func TestARGBWord(t *testing.T) {
	c := PackedColor{A: 0x11, R: 0x22, G: 0x33, B: 0x44}
	assert.Equal(t, uint32(0x11223344), c.ARGB())
	assert.Equal(t, c, PackedFromARGB(0x11223344))
	assert.Equal(t, "A: 17, R: 34, G: 51, B: 68", c.String())
}

func TestEncodedToLinearLUT(t *testing.T) {
	for i := 0; i < 256; i++ {
		assert.Equal(t, EncodedToLinear(uint8(i)), EncodedToLinearLUT(uint8(i)))
	}
}
