package thumbhash

import (
	"math"
	"testing"
)

func TestCoefficientCount(t *testing.T) {
	cases := []struct {
		nx, ny, want int
	}{
		{3, 3, 5},
		{5, 5, 14},
		{7, 7, 27},
		{7, 3, 14},
		{3, 7, 14},
		{7, 4, 18},
		{4, 7, 18},
	}
	for _, tc := range cases {
		if got := coefficientCount(tc.nx, tc.ny); got != tc.want {
			t.Errorf("coefficientCount(%d,%d) = %d, want %d", tc.nx, tc.ny, got, tc.want)
		}
	}
}

func TestRetained_TransposeSymmetry(t *testing.T) {
	for nx := 1; nx <= 7; nx++ {
		for ny := 1; ny <= 7; ny++ {
			for cx := 0; cx < nx; cx++ {
				for cy := 0; cy < ny; cy++ {
					if retained(cx, cy, nx, ny) != retained(cy, cx, ny, nx) {
						t.Fatalf("asymmetric at cx=%d cy=%d nx=%d ny=%d", cx, cy, nx, ny)
					}
				}
			}
		}
	}
}

func TestForEachCoefficient_Order(t *testing.T) {
	var got [][2]int
	forEachCoefficient(3, 3, func(cx, cy int) {
		got = append(got, [2]int{cx, cy})
	})
	want := [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {0, 2}}
	if len(got) != len(want) {
		t.Fatalf("visited %d coefficients, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coefficient %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChannelEncode_ConstantSignal(t *testing.T) {
	const v = 0.42
	samples := make([]float64, 8*8)
	for i := range samples {
		samples[i] = v
	}

	c := newChannel(3, 3)
	c.encode(8, 8, samples)

	if math.Abs(c.dc-v) > 1e-9 {
		t.Errorf("dc = %f, want %f", c.dc, v)
	}
	// A flat signal has no frequency content; the scale is at most
	// floating-point noise.
	if c.scale > 1e-9 {
		t.Errorf("scale = %g for constant signal", c.scale)
	}
	if len(c.ac) != 5 {
		t.Errorf("ac count = %d, want 5", len(c.ac))
	}
}

func TestChannelSample_DCOnly(t *testing.T) {
	c := newChannel(3, 3)
	c.dc = 0.7
	c.ac = make([]float64, coefficientCount(3, 3))

	fx := pixelCosTable(3, 4)
	fy := pixelCosTable(3, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := c.sample(fx[x*3:(x+1)*3], fy[y*3:(y+1)*3])
			if math.Abs(got-0.7) > 1e-12 {
				t.Fatalf("sample(%d,%d) = %f, want 0.7", x, y, got)
			}
		}
	}
}

func TestChannelEncode_SingleFrequency(t *testing.T) {
	// A pure cos(π/w·(x+0.5)) signal concentrates in the (1,0) AC
	// term; everything else stays near zero.
	const w, h = 16, 16
	samples := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			samples[y*w+x] = math.Cos(math.Pi / w * (float64(x) + 0.5))
		}
	}

	c := newChannel(3, 3)
	c.encode(w, h, samples)

	if math.Abs(c.dc) > 1e-9 {
		t.Errorf("dc = %g, want 0", c.dc)
	}
	if math.Abs(c.scale-0.5) > 1e-9 {
		t.Errorf("scale = %f, want 0.5", c.scale)
	}
	// After normalization the dominant (1,0) term maps to 1, the
	// rest to 0.5.
	if math.Abs(c.ac[0]-1) > 1e-9 {
		t.Errorf("ac[0] = %f, want 1", c.ac[0])
	}
	for i, f := range c.ac[1:] {
		if math.Abs(f-0.5) > 1e-6 {
			t.Errorf("ac[%d] = %f, want 0.5", i+1, f)
		}
	}
}
