package thumbhash

import (
	"encoding/hex"
	"testing"
)

// Golden hashes pin the full wire output — header quantization, AC
// order and nibble packing — for deterministic pseudo-random inputs.
// The pixel generator uses pure integer math so the fixtures are
// reproducible everywhere.

type lcg struct {
	s int64
}

func (l *lcg) next() byte {
	l.s = (l.s*1103515245 + 12345) & 0x7fffffff
	return byte(l.s >> 16)
}

func noiseRGBA(w, h int, opaque bool) []byte {
	g := lcg{s: 12345}
	buf := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		j := i * 4
		buf[j] = g.next()
		buf[j+1] = g.next()
		buf[j+2] = g.next()
		if opaque {
			buf[j+3] = 255
		} else {
			buf[j+3] = g.next()
		}
	}
	return buf
}

var goldenHashes = []struct {
	name     string
	w, h     int
	opaque   bool
	expected string
}{
	{"noise_24x16", 24, 16, true, "20f8010d82bdf4c13b9398454c546b55fd8af55dbc"},
	{"noise_16x24", 16, 24, true, "20f8010d04d0b86b5957a66c896689190abaf56da8"},
	{"noise_alpha_20x20", 20, 20, false, "e00782050208238bf87735aa453808e3209953413f7d66b665"},
}

func TestGoldenValues(t *testing.T) {
	for _, g := range goldenHashes {
		t.Run(g.name, func(t *testing.T) {
			hash, err := Encode(g.w, g.h, noiseRGBA(g.w, g.h, g.opaque))
			if err != nil {
				t.Fatal(err)
			}
			if got := hex.EncodeToString(hash); got != g.expected {
				t.Errorf("hash drifted:\n  got:  %s\n  want: %s", got, g.expected)
			}
		})
	}
}

func TestGoldenDecode(t *testing.T) {
	for _, g := range goldenHashes {
		t.Run(g.name, func(t *testing.T) {
			hash, err := hex.DecodeString(g.expected)
			if err != nil {
				t.Fatal(err)
			}
			img, err := Decode(hash)
			if err != nil {
				t.Fatal(err)
			}
			if img.Width <= 0 || img.Height <= 0 || len(img.RGBA) != img.Width*img.Height*4 {
				t.Fatalf("bad decode: %dx%d, %d bytes", img.Width, img.Height, len(img.RGBA))
			}
			wide := g.w > g.h
			if wide != (img.Width > img.Height) {
				t.Errorf("orientation lost: input %dx%d, output %dx%d", g.w, g.h, img.Width, img.Height)
			}
		})
	}
}
