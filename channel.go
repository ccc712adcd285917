package thumbhash

import "math"

// channel holds one scalar plane's truncated DCT: the DC term, the
// retained AC terms in serialization order, and the normalization
// scale (the max absolute raw AC magnitude).
type channel struct {
	nx, ny int
	dc     float64
	scale  float64
	ac     []float64
}

// retained reports whether frequency (cx,cy) is kept for an nx×ny
// grid. Together with the enumeration order in forEachCoefficient it
// defines the wire layout, so counting, writing and reading must all
// go through it.
func retained(cx, cy, nx, ny int) bool {
	return cx*ny+cy*nx < nx*ny
}

// forEachCoefficient visits the retained AC frequencies in
// serialization order: cy outer, cx inner, (0,0) skipped. The retained
// set is contiguous in cx for every cy, so the predicate doubles as
// the loop condition.
func forEachCoefficient(nx, ny int, fn func(cx, cy int)) {
	for cy := 0; cy < ny; cy++ {
		cx := 0
		if cy == 0 {
			cx = 1
		}
		for ; retained(cx, cy, nx, ny); cx++ {
			fn(cx, cy)
		}
	}
}

// coefficientCount returns the number of retained AC terms for a grid.
func coefficientCount(nx, ny int) int {
	n := 0
	forEachCoefficient(nx, ny, func(_, _ int) { n++ })
	return n
}

func newChannel(nx, ny int) *channel {
	return &channel{nx: nx, ny: ny, ac: make([]float64, 0, coefficientCount(nx, ny))}
}

// encode computes the truncated forward DCT-II of a w×h sample plane.
// AC terms are renormalized to [0,1] via the scale factor so they can
// be quantized to nibbles.
func (c *channel) encode(w, h int, samples []float64) {
	cosX := cosTable(c.nx, w)
	cosY := cosTable(c.ny, h)
	norm := 1 / float64(w*h)
	for cy := 0; cy < c.ny; cy++ {
		for cx := 0; retained(cx, cy, c.nx, c.ny); cx++ {
			var f float64
			for y := 0; y < h; y++ {
				fy := cosY[cy*h+y]
				row := samples[y*w : y*w+w]
				for x, s := range row {
					f += s * cosX[cx*w+x] * fy
				}
			}
			f *= norm
			if cx == 0 && cy == 0 {
				c.dc = f
				continue
			}
			c.ac = append(c.ac, f)
			if a := math.Abs(f); a > c.scale {
				c.scale = a
			}
		}
	}
	if c.scale > 0 {
		for i, f := range c.ac {
			c.ac[i] = 0.5 + 0.5*f/c.scale
		}
	}
}

// writeTo quantizes the normalized AC terms to the nibble stream.
func (c *channel) writeTo(w *nibbleWriter) {
	for _, f := range c.ac {
		w.write(quantize(f, 15))
	}
}

// readFrom reads this channel's AC terms from the nibble stream,
// mapping each back to its signed range scaled by scale.
func (c *channel) readFrom(r *nibbleReader, dc, scale float64) {
	c.dc = dc
	c.scale = scale
	c.ac = c.ac[:0]
	forEachCoefficient(c.nx, c.ny, func(_, _ int) {
		c.ac = append(c.ac, dequantizeSigned(r.read(), 15)*scale)
	})
}

// sample evaluates the inverse transform at one pixel given the
// per-pixel cosine factors fx[cx], fy[cy]. Kept as explicit loops
// rather than forEachCoefficient: this runs once per output pixel per
// channel, but it iterates with the same retained predicate.
func (c *channel) sample(fx, fy []float64) float64 {
	v := c.dc
	i := 0
	for cy := 0; cy < c.ny; cy++ {
		fy2 := fy[cy] * 2
		cx := 0
		if cy == 0 {
			cx = 1
		}
		for ; retained(cx, cy, c.nx, c.ny); cx++ {
			v += c.ac[i] * fx[cx] * fy2
			i++
		}
	}
	return v
}

// cosTable precomputes the DCT-II basis cos(π/size·(i+0.5)·c) for
// c in [0,n), laid out frequency-major: entry c*size+i.
func cosTable(n, size int) []float64 {
	t := make([]float64, n*size)
	for c := 0; c < n; c++ {
		s := math.Pi * float64(c) / float64(size)
		for i := 0; i < size; i++ {
			t[c*size+i] = math.Cos(s * (float64(i) + 0.5))
		}
	}
	return t
}

// pixelCosTable is cosTable laid out pixel-major (entry i*n+c), which
// is the access pattern of the per-pixel decode loop.
func pixelCosTable(n, size int) []float64 {
	t := make([]float64, n*size)
	for i := 0; i < size; i++ {
		s := math.Pi * (float64(i) + 0.5) / float64(size)
		for c := 0; c < n; c++ {
			t[i*n+c] = math.Cos(s * float64(c))
		}
	}
	return t
}
