// Package preview turns placeholder hashes into viewable image files.
package preview

import (
	"fmt"

	"github.com/disintegration/imaging"

	thumbhash "github.com/Act-App/Act-Thumbhash"
	"github.com/Act-App/Act-Thumbhash/internal/encoder"
)

// Options control how a hash is rendered to a file.
type Options struct {
	BaseSize        int     // long side of the decoded image, 0 = codec default
	Upscale         int     // long side of the output file, 0 keeps the decoded size
	Format          string  // png, jpeg or webp
	Quality         int     // 1-100 for lossy formats
	SaturationBoost float64 // 0 = codec default
}

// Result is a rendered preview ready to write to disk.
type Result struct {
	Data      []byte
	Extension string
	Width     int
	Height    int
}

// Render decodes a hash and encodes the result with an encoder from the
// registry. When Upscale is set, the decoded image is smoothly resized
// so the blur does not show nearest-neighbor blocks.
func Render(reg *encoder.Registry, hash []byte, opts Options) (*Result, error) {
	img, err := thumbhash.DecodeWithOptions(hash, thumbhash.DecodeOptions{
		BaseSize:        opts.BaseSize,
		SaturationBoost: opts.SaturationBoost,
	})
	if err != nil {
		return nil, fmt.Errorf("decode hash: %w", err)
	}

	nrgba := img.ToNRGBA()
	w, h := img.Width, img.Height
	if opts.Upscale > 0 && opts.Upscale != imax(w, h) {
		if w >= h {
			w = opts.Upscale
			h = 0 // keep aspect ratio
		} else {
			h = opts.Upscale
			w = 0
		}
		nrgba = imaging.Resize(nrgba, w, h, imaging.Gaussian)
		w, h = nrgba.Rect.Dx(), nrgba.Rect.Dy()
	}

	info, err := thumbhash.Inspect(hash)
	if err != nil {
		return nil, err
	}
	enc, err := reg.Resolve(opts.Format, info.HasAlpha)
	if err != nil {
		return nil, err
	}

	data, err := enc.Encode(nrgba, opts.Quality)
	if err != nil {
		return nil, fmt.Errorf("encode %s preview: %w", enc.Format(), err)
	}

	return &Result{
		Data:      data,
		Extension: enc.Extension(),
		Width:     w,
		Height:    h,
	}, nil
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
