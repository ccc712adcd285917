package thumbhash

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

// ─── test buffer generators ──────────────────────────────────

func solidRGBA(w, h int, r, g, b, a byte) []byte {
	buf := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		buf[i*4] = r
		buf[i*4+1] = g
		buf[i*4+2] = b
		buf[i*4+3] = a
	}
	return buf
}

func gradientRGBA(w, h int) []byte {
	buf := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			j := (y*w + x) * 4
			buf[j] = byte((x * 11) % 256)
			buf[j+1] = byte((y * 7) % 256)
			buf[j+2] = byte(((x + y) * 5) % 256)
			buf[j+3] = 255
		}
	}
	return buf
}

// ─── encode ──────────────────────────────────────────────────

func TestEncode_InvalidInputSize(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		n    int
	}{
		{"short_buffer", 4, 4, 10},
		{"long_buffer", 4, 4, 4*4*4 + 4},
		{"zero_width", 0, 5, 0},
		{"zero_height", 5, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(tc.w, tc.h, make([]byte, tc.n))
			if !errors.Is(err, ErrInvalidInputSize) {
				t.Fatalf("got %v, want ErrInvalidInputSize", err)
			}
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	rgba := gradientRGBA(40, 30)
	h1, err := Encode(40, 30, rgba)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := Encode(40, 30, rgba)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(h1, h2) {
		t.Fatalf("non-deterministic encode:\n  %x\n  %x", h1, h2)
	}
}

func TestEncode_LengthMatchesHeader(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {4, 4}, {20, 10}, {10, 20}, {100, 37}, {128, 128},
	}
	for _, s := range sizes {
		hash, err := Encode(s.w, s.h, gradientRGBA(s.w, s.h))
		if err != nil {
			t.Fatalf("%dx%d: %v", s.w, s.h, err)
		}
		if len(hash) < 5 {
			t.Fatalf("%dx%d: hash too short: %d", s.w, s.h, len(hash))
		}
		info, err := Inspect(hash)
		if err != nil {
			t.Fatalf("%dx%d: inspect: %v", s.w, s.h, err)
		}
		if info.Size != len(hash) {
			t.Errorf("%dx%d: header implies %d bytes, encoder wrote %d", s.w, s.h, info.Size, len(hash))
		}
	}
}

// ─── decode ──────────────────────────────────────────────────

func TestDecode_RoundTrip(t *testing.T) {
	hash, err := Encode(40, 30, gradientRGBA(40, 30))
	if err != nil {
		t.Fatal(err)
	}
	img, err := Decode(hash)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width <= 0 || img.Height <= 0 {
		t.Fatalf("bad dimensions %dx%d", img.Width, img.Height)
	}
	if len(img.RGBA) != img.Width*img.Height*4 {
		t.Fatalf("buffer %d bytes for %dx%d", len(img.RGBA), img.Width, img.Height)
	}

	img2, err := Decode(hash)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(img.RGBA, img2.RGBA) {
		t.Error("non-deterministic decode")
	}
}

func TestDecode_TooShort(t *testing.T) {
	for _, hash := range [][]byte{nil, {}, {1}, {1, 2, 3, 4}} {
		if _, err := Decode(hash); !errors.Is(err, ErrMalformedHash) {
			t.Errorf("len %d: got %v, want ErrMalformedHash", len(hash), err)
		}
	}
}

func TestDecode_AlphaFlagTooShort(t *testing.T) {
	// 5 bytes with the alpha flag (bit 23) set: the header now needs 6.
	hash := []byte{0, 0, 0x80, 3, 0}
	if _, err := Decode(hash); !errors.Is(err, ErrMalformedHash) {
		t.Fatalf("got %v, want ErrMalformedHash", err)
	}
}

func TestDecode_TruncatedAC(t *testing.T) {
	hash, err := Encode(32, 32, gradientRGBA(32, 32))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(hash[:len(hash)-1]); !errors.Is(err, ErrMalformedHash) {
		t.Fatalf("got %v, want ErrMalformedHash", err)
	}
}

func TestDecode_AspectRatio(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		want func(w, h int) bool
	}{
		{"square", 4, 4, func(w, h int) bool { return w == h }},
		{"wide", 20, 10, func(w, h int) bool { return w > h }},
		{"tall", 10, 20, func(w, h int) bool { return h > w }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := Encode(tc.w, tc.h, solidRGBA(tc.w, tc.h, 90, 140, 200, 255))
			if err != nil {
				t.Fatal(err)
			}
			img, err := Decode(hash)
			if err != nil {
				t.Fatal(err)
			}
			if !tc.want(img.Width, img.Height) {
				t.Errorf("decoded %dx%d for %dx%d input", img.Width, img.Height, tc.w, tc.h)
			}
		})
	}
}

func TestDecode_BaseSize(t *testing.T) {
	hash, err := Encode(20, 10, gradientRGBA(20, 10))
	if err != nil {
		t.Fatal(err)
	}
	for _, base := range []int{16, 32, 128} {
		img, err := DecodeWithOptions(hash, DecodeOptions{BaseSize: base})
		if err != nil {
			t.Fatal(err)
		}
		if long := imax(img.Width, img.Height); long != base {
			t.Errorf("base %d: long side %d", base, long)
		}
	}
}

func TestEncode_OversizedInputDownscaled(t *testing.T) {
	rgba := gradientRGBA(150, 150)
	hash, err := Encode(150, 150, rgba)
	if err != nil {
		t.Fatal(err)
	}

	// The oversized input must hash identically to its own
	// nearest-neighbor downscale.
	small, w, h := downscaleNearest(rgba, 150, 150)
	if w > maxInputDim || h > maxInputDim {
		t.Fatalf("downscale produced %dx%d", w, h)
	}
	hash2, err := Encode(w, h, small)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(hash, hash2) {
		t.Error("oversized input does not match pre-downscaled input")
	}

	img, err := DecodeWithOptions(hash, DecodeOptions{BaseSize: 128})
	if err != nil {
		t.Fatal(err)
	}
	if img.Width > 128 || img.Height > 128 {
		t.Errorf("decoded %dx%d exceeds 128", img.Width, img.Height)
	}
}

func TestDecode_AlphaRoundTrip(t *testing.T) {
	rgba := gradientRGBA(20, 20)
	for i := 3; i < len(rgba); i += 4 {
		rgba[i] = 128
	}
	hash, err := Encode(20, 20, rgba)
	if err != nil {
		t.Fatal(err)
	}

	info, err := Inspect(hash)
	if err != nil {
		t.Fatal(err)
	}
	if !info.HasAlpha {
		t.Fatal("alpha flag not set for 50% alpha image")
	}

	img, err := Decode(hash)
	if err != nil {
		t.Fatal(err)
	}
	for i := 3; i < len(img.RGBA); i += 4 {
		if a := img.RGBA[i]; a < 90 || a > 180 {
			t.Fatalf("alpha byte %d out of range for uniform 50%% input", a)
		}
	}
}

// ─── header-derived accessors ────────────────────────────────

func TestAverageRGBA(t *testing.T) {
	hash, err := Encode(8, 8, solidRGBA(8, 8, 200, 100, 50, 255))
	if err != nil {
		t.Fatal(err)
	}
	avg, err := AverageRGBA(hash)
	if err != nil {
		t.Fatal(err)
	}
	want := RGBA{R: 200.0 / 255, G: 100.0 / 255, B: 50.0 / 255, A: 1}
	if math.Abs(avg.R-want.R) > 0.05 || math.Abs(avg.G-want.G) > 0.05 || math.Abs(avg.B-want.B) > 0.05 {
		t.Errorf("avg %+v, want ~%+v", avg, want)
	}
	if avg.A != 1 {
		t.Errorf("opaque image average alpha %f", avg.A)
	}
}

func TestApproximateAspectRatio(t *testing.T) {
	wide, err := Encode(20, 10, gradientRGBA(20, 10))
	if err != nil {
		t.Fatal(err)
	}
	tall, err := Encode(10, 20, gradientRGBA(10, 20))
	if err != nil {
		t.Fatal(err)
	}
	if r, _ := ApproximateAspectRatio(wide); r <= 1 {
		t.Errorf("wide image ratio %f", r)
	}
	if r, _ := ApproximateAspectRatio(tall); r >= 1 {
		t.Errorf("tall image ratio %f", r)
	}
}

// ─── color basis ─────────────────────────────────────────────

func TestLPQInversion(t *testing.T) {
	rgba := []byte{200, 100, 50, 255}
	planes := rgbaToLPQA(rgba, 1, 1)
	r, g, b := lpqToRGB(planes.l[0], planes.p[0], planes.q[0])
	for i, got := range []float64{r, g, b} {
		want := float64(rgba[i]) / 255
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("component %d: got %f, want %f", i, got, want)
		}
	}
}
