package thumbhash

// lpqa holds the decomposed sample planes plus the alpha flag derived
// while building them.
type lpqa struct {
	l, p, q, a []float64
	hasAlpha   bool
}

// rgbaToLPQA converts non-premultiplied 8-bit RGBA samples to the
// L/P/Q/A basis. Each pixel is composited atop the alpha-weighted
// average color first, so fully transparent regions decode to the
// average instead of black.
func rgbaToLPQA(rgba []byte, w, h int) lpqa {
	count := w * h

	var avgR, avgG, avgB, avgA float64
	for i := 0; i < count; i++ {
		j := i * 4
		a := float64(rgba[j+3]) / 255
		avgR += a / 255 * float64(rgba[j])
		avgG += a / 255 * float64(rgba[j+1])
		avgB += a / 255 * float64(rgba[j+2])
		avgA += a
	}
	if avgA > 0 {
		avgR /= avgA
		avgG /= avgA
		avgB /= avgA
	}

	out := lpqa{
		l:        make([]float64, count),
		p:        make([]float64, count),
		q:        make([]float64, count),
		a:        make([]float64, count),
		hasAlpha: avgA < float64(count),
	}
	for i := 0; i < count; i++ {
		j := i * 4
		a := float64(rgba[j+3]) / 255
		r := avgR*(1-a) + a/255*float64(rgba[j])
		g := avgG*(1-a) + a/255*float64(rgba[j+1])
		b := avgB*(1-a) + a/255*float64(rgba[j+2])
		out.l[i] = (r + g + b) / 3
		out.p[i] = (r+g)/2 - b
		out.q[i] = r - g
		out.a[i] = a
	}
	return out
}

// lpqToRGB inverts the color basis at one pixel. The caller clamps to
// [0,1] when converting to bytes.
func lpqToRGB(l, p, q float64) (r, g, b float64) {
	b = l - 2.0/3.0*p
	r = (3*l - b + q) / 2
	g = r - q
	return r, g, b
}
