package preview

import (
	"bytes"
	"image/png"
	"testing"

	thumbhash "github.com/Act-App/Act-Thumbhash"
	"github.com/Act-App/Act-Thumbhash/internal/encoder"
)

func testHash(t *testing.T) []byte {
	t.Helper()
	w, h := 40, 30
	rgba := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			rgba[i] = uint8(x * 255 / w)
			rgba[i+1] = uint8(y * 255 / h)
			rgba[i+2] = 90
			rgba[i+3] = 255
		}
	}
	hash, err := thumbhash.Encode(w, h, rgba)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return hash
}

func TestRenderPNG(t *testing.T) {
	reg := encoder.NewRegistry()
	res, err := Render(reg, testHash(t), Options{Format: "png"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if res.Extension != "png" {
		t.Errorf("extension: got %q", res.Extension)
	}

	img, err := png.Decode(bytes.NewReader(res.Data))
	if err != nil {
		t.Fatalf("output is not valid png: %v", err)
	}
	// Landscape input: long side is the default base size.
	if img.Bounds().Dx() != thumbhash.DefaultBaseSize {
		t.Errorf("width: got %d, want %d", img.Bounds().Dx(), thumbhash.DefaultBaseSize)
	}
	if res.Width != img.Bounds().Dx() || res.Height != img.Bounds().Dy() {
		t.Errorf("result dims %dx%d do not match image %v", res.Width, res.Height, img.Bounds())
	}
}

func TestRenderUpscale(t *testing.T) {
	reg := encoder.NewRegistry()
	res, err := Render(reg, testHash(t), Options{Format: "png", Upscale: 128})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if res.Width != 128 {
		t.Errorf("upscaled width: got %d, want 128", res.Width)
	}
	if res.Height >= res.Width {
		t.Errorf("landscape aspect lost: %dx%d", res.Width, res.Height)
	}
}

func TestRenderBadHash(t *testing.T) {
	reg := encoder.NewRegistry()
	if _, err := Render(reg, []byte{1, 2}, Options{Format: "png"}); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}
