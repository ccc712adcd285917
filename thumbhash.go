// Package thumbhash implements the ThumbHash placeholder codec: a
// forward transform from an RGBA pixel buffer to a compact 5-to-~35
// byte hash, and an inverse transform from a hash back to a small
// lossy placeholder image.
//
// The binary format is the published ThumbHash layout, reproduced
// bit-for-bit so hashes interoperate with other implementations of
// the same algorithm family. Encode and Decode are pure functions
// with no shared state; they are safe to call concurrently from
// independent goroutines.
package thumbhash

import (
	"fmt"
	"math"
)

const (
	// DefaultBaseSize is the long-side dimension of decoded
	// placeholders when DecodeOptions.BaseSize is zero.
	DefaultBaseSize = 32

	// DefaultSaturationBoost is applied to the chroma scales at
	// decode time to counter the dulling effect of quantization.
	DefaultSaturationBoost = 1.25
)

// Image is a decoded placeholder: non-premultiplied 8-bit RGBA,
// row-major, exactly Width*Height*4 bytes.
type Image struct {
	Width  int
	Height int
	RGBA   []byte
}

// DecodeOptions control placeholder reconstruction.
type DecodeOptions struct {
	// BaseSize is the output dimension of the long side. Zero means
	// DefaultBaseSize.
	BaseSize int

	// SaturationBoost multiplies the P/Q scales. Zero means
	// DefaultSaturationBoost; use 1 to disable boosting.
	SaturationBoost float64
}

// Encode computes the hash of a width×height RGBA buffer (RGB not
// premultiplied by A). Inputs larger than 128 pixels on the long side
// are downscaled first. Returns ErrInvalidInputSize when the buffer
// length does not match the dimensions.
func Encode(width, height int, rgba []byte) ([]byte, error) {
	if width <= 0 || height <= 0 || len(rgba) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidInputSize, len(rgba), width, height)
	}
	rgba, w, h := downscaleNearest(rgba, width, height)

	planes := rgbaToLPQA(rgba, w, h)

	// Luminance gets more retained frequencies than chroma, scaled
	// toward the aspect ratio; fewer when alpha needs room.
	lLimit := 7
	if planes.hasAlpha {
		lLimit = 5
	}
	maxWH := float64(imax(w, h))
	lx := max1(iround(float64(lLimit*w) / maxWH))
	ly := max1(iround(float64(lLimit*h) / maxWH))

	lCh := newChannel(imax(3, lx), imax(3, ly))
	lCh.encode(w, h, planes.l)
	pCh := newChannel(3, 3)
	pCh.encode(w, h, planes.p)
	qCh := newChannel(3, 3)
	qCh.encode(w, h, planes.q)
	var aCh *channel
	if planes.hasAlpha {
		aCh = newChannel(5, 5)
		aCh.encode(w, h, planes.a)
	}

	hdr := header{
		LDC:         lCh.dc,
		PDC:         pCh.dc,
		QDC:         qCh.dc,
		LScale:      lCh.scale,
		HasAlpha:    planes.hasAlpha,
		PScale:      pCh.scale,
		QScale:      qCh.scale,
		IsLandscape: w > h,
	}
	if hdr.IsLandscape {
		hdr.LCount = ly
	} else {
		hdr.LCount = lx
	}

	acCount := len(lCh.ac) + len(pCh.ac) + len(qCh.ac)
	if aCh != nil {
		hdr.ADC = aCh.dc
		hdr.AScale = aCh.scale
		acCount += len(aCh.ac)
	}

	hash := make([]byte, hdr.size()+(acCount+1)/2)
	hdr.writeTo(hash)

	nw := &nibbleWriter{buf: hash, idx: hdr.acStart()}
	lCh.writeTo(nw)
	pCh.writeTo(nw)
	qCh.writeTo(nw)
	if aCh != nil {
		aCh.writeTo(nw)
	}
	return hash, nil
}

// Decode reconstructs a placeholder from a hash at the default base
// size. Returns ErrMalformedHash when the hash is shorter than its
// header declares.
func Decode(hash []byte) (*Image, error) {
	return DecodeWithOptions(hash, DecodeOptions{})
}

// DecodeWithOptions is Decode with an explicit base size and
// saturation boost.
func DecodeWithOptions(hash []byte, opts DecodeOptions) (*Image, error) {
	base := opts.BaseSize
	if base <= 0 {
		base = DefaultBaseSize
	}
	boost := opts.SaturationBoost
	if boost <= 0 {
		boost = DefaultSaturationBoost
	}

	var hdr header
	if err := hdr.readFrom(hash); err != nil {
		return nil, err
	}

	lx, ly := hdr.lExtents()
	gx, gy := imax(3, lx), imax(3, ly)

	acCount := coefficientCount(gx, gy) + 2*coefficientCount(3, 3)
	if hdr.HasAlpha {
		acCount += coefficientCount(5, 5)
	}
	if want := hdr.size() + (acCount+1)/2; len(hash) < want {
		return nil, fmt.Errorf("%w: %d bytes, header implies %d", ErrMalformedHash, len(hash), want)
	}

	nr := &nibbleReader{buf: hash, idx: hdr.acStart()}
	lCh := newChannel(gx, gy)
	lCh.readFrom(nr, hdr.LDC, hdr.LScale)
	pCh := newChannel(3, 3)
	pCh.readFrom(nr, hdr.PDC, hdr.PScale*boost)
	qCh := newChannel(3, 3)
	qCh.readFrom(nr, hdr.QDC, hdr.QScale*boost)
	var aCh *channel
	if hdr.HasAlpha {
		aCh = newChannel(5, 5)
		aCh.readFrom(nr, hdr.ADC, hdr.AScale)
	}

	ratio := float64(lx) / float64(ly)
	var w, h int
	if ratio > 1 {
		w = base
		h = max1(iround(float64(base) / ratio))
	} else {
		w = max1(iround(float64(base) * ratio))
		h = base
	}

	cxStop := gx
	cyStop := gy
	if hdr.HasAlpha {
		cxStop = imax(cxStop, 5)
		cyStop = imax(cyStop, 5)
	}
	fxT := pixelCosTable(cxStop, w)
	fyT := pixelCosTable(cyStop, h)

	rgba := make([]byte, w*h*4)
	i := 0
	for y := 0; y < h; y++ {
		fy := fyT[y*cyStop : (y+1)*cyStop]
		for x := 0; x < w; x++ {
			fx := fxT[x*cxStop : (x+1)*cxStop]

			l := lCh.sample(fx, fy)
			p := pCh.sample(fx, fy)
			q := qCh.sample(fx, fy)
			a := hdr.ADC
			if aCh != nil {
				a = aCh.sample(fx, fy)
			}

			r, g, b := lpqToRGB(l, p, q)
			rgba[i] = quantByte(r)
			rgba[i+1] = quantByte(g)
			rgba[i+2] = quantByte(b)
			rgba[i+3] = quantByte(a)
			i += 4
		}
	}

	return &Image{Width: w, Height: h, RGBA: rgba}, nil
}

func quantByte(v float64) byte {
	return byte(math.Max(0, math.Round(255*math.Min(1, v))))
}

func iround(v float64) int {
	return int(math.Round(v))
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
