package thumbhash

import "math"

// quantize maps v in [0,1] to an integer in [0,maxInt], saturating at
// both ends.
func quantize(v float64, maxInt int) int {
	q := int(math.Round(v * float64(maxInt)))
	if q < 0 {
		return 0
	}
	if q > maxInt {
		return maxInt
	}
	return q
}

// quantizeSigned maps v in [-1,1] to [0,maxInt], centered on maxInt/2.
// Chroma DC terms are signed around zero, so they use this form while
// luminance uses quantize.
func quantizeSigned(v float64, maxInt int) int {
	half := float64(maxInt) / 2
	q := int(math.Round(half + half*v))
	if q < 0 {
		return 0
	}
	if q > maxInt {
		return maxInt
	}
	return q
}

func dequantize(q int, maxInt int) float64 {
	return float64(q) / float64(maxInt)
}

func dequantizeSigned(q int, maxInt int) float64 {
	half := float64(maxInt) / 2
	return float64(q)/half - 1
}
