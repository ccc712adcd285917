package thumbhash

// maxInputDim bounds the long side of the plane fed to the DCT.
// Larger inputs are slow with no quality benefit at placeholder sizes.
const maxInputDim = 128

// downscaleNearest resamples an RGBA buffer so the long side fits
// maxInputDim, returning the (possibly original) buffer and its
// dimensions. Nearest-neighbor keeps hashes bit-compatible with other
// implementations of the format.
func downscaleNearest(rgba []byte, w, h int) ([]byte, int, int) {
	if w <= maxInputDim && h <= maxInputDim {
		return rgba, w, h
	}

	dw, dh := w, h
	if w >= h {
		dw = maxInputDim
		dh = max1(h * maxInputDim / w)
	} else {
		dw = max1(w * maxInputDim / h)
		dh = maxInputDim
	}

	out := make([]byte, dw*dh*4)
	for dy := 0; dy < dh; dy++ {
		sy := dy * h / dh
		for dx := 0; dx < dw; dx++ {
			sx := dx * w / dw
			si := (sy*w + sx) * 4
			di := (dy*dw + dx) * 4
			copy(out[di:di+4], rgba[si:si+4])
		}
	}
	return out, dw, dh
}
