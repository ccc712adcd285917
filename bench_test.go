package thumbhash

import (
	"image"
	"testing"
)

func BenchmarkEncode(b *testing.B) {
	rgba := noiseRGBA(100, 75, true)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(100, 75, rgba); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeOversized(b *testing.B) {
	rgba := noiseRGBA(256, 256, true)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(256, 256, rgba); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	hash, err := Encode(100, 75, noiseRGBA(100, 75, true))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(hash); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeImage(b *testing.B) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 75))
	copy(img.Pix, noiseRGBA(100, 75, false))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := EncodeImage(img); err != nil {
			b.Fatal(err)
		}
	}
}
