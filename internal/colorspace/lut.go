package colorspace

// encodedToLinearLUT is filled from EncodedToLinear, so lookups are
// bit-identical to the direct computation.
var encodedToLinearLUT [256]float32

func init() {
	for i := range encodedToLinearLUT {
		encodedToLinearLUT[i] = EncodedToLinear(uint8(i))
	}
}

// EncodedToLinearLUT is a table-driven EncodedToLinear for per-pixel loops.
func EncodedToLinearLUT(b uint8) float32 {
	return encodedToLinearLUT[b]
}
