package resample

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleDimensions(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		factor       float64
		wantW, wantH int
		wantErr      bool
	}{
		{"double", 3, 5, 2, 6, 10, false},
		{"half truncates", 5, 3, 0.5, 2, 1, false},
		{"too small", 3, 1, 0.5, 0, 0, true},
		{"zero", 3, 3, 0, 0, 0, true},
		{"negative", 3, 3, -1, 0, 0, true},
		{"nan", 3, 3, math.NaN(), 0, 0, true},
		{"inf", 3, 3, math.Inf(1), 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := ScaleDimensions(tt.w, tt.h, tt.factor)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDimension)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestFitDimensions(t *testing.T) {
	tests := []struct {
		name                   string
		srcW, srcH, boxW, boxH int
		wantW, wantH           int
	}{
		{"landscape", 200, 100, 50, 50, 50, 25},
		{"portrait", 100, 200, 50, 50, 25, 50},
		{"height bound", 100, 100, 50, 30, 30, 30},
		{"upscale", 10, 5, 100, 100, 100, 50},
		{"sliver keeps a pixel", 1000, 1, 10, 10, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := FitDimensions(tt.srcW, tt.srcH, tt.boxW, tt.boxH)
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}

	_, _, err := FitDimensions(0, 10, 5, 5)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestScaleAndFit(t *testing.T) {
	src := gradient(8, 4)

	dst, err := Scale(context.Background(), src, 0.5, Bilinear)
	require.NoError(t, err)
	assert.Equal(t, 4, dst.Width)
	assert.Equal(t, 2, dst.Height)

	dst, err = Fit(context.Background(), src, 4, 4, Bicubic)
	require.NoError(t, err)
	assert.Equal(t, 4, dst.Width)
	assert.Equal(t, 2, dst.Height)

	_, err = Scale(context.Background(), src, 0.1, Bilinear)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
