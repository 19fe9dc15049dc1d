package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBicubicKernelSymmetric(t *testing.T) {
	for x := -3.0; x <= 3.0; x += 0.01 {
		assert.Equal(t, BicubicKernel(x), BicubicKernel(-x), "x=%v", x)
	}
}

func TestBicubicKernelValues(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 1},
		{0.5, 0.5625},
		{1, 0},
		{1.5, -0.0625},
		{2, 0},
		{2.5, 0},
		{-7, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, BicubicKernel(tt.x), 1e-12, "K(%v)", tt.x)
	}
}

func TestBicubicKernelPartitionOfUnity(t *testing.T) {
	for f := 0.0; f < 1.0; f += 0.05 {
		var sum float64
		for m := -1; m <= 2; m++ {
			sum += BicubicKernel(float64(m) - f)
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "frac=%v", f)
	}
}
