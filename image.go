package thumbhash

import (
	"fmt"
	"image"
)

// EncodeImage computes the hash of any image.Image. NRGBA, RGBA and
// Gray images are read directly; everything else goes through the
// generic color interface.
func EncodeImage(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidInputSize)
	}
	return Encode(w, h, extractRGBA(img, bounds, w, h))
}

// extractRGBA flattens an image into a non-premultiplied RGBA buffer.
func extractRGBA(img image.Image, bounds image.Rectangle, w, h int) []byte {
	rgba := make([]byte, w*h*4)

	switch src := img.(type) {
	case *image.NRGBA:
		bY := bounds.Min.Y - src.Rect.Min.Y
		bX4 := (bounds.Min.X - src.Rect.Min.X) * 4
		for y := 0; y < h; y++ {
			off := (bY+y)*src.Stride + bX4
			copy(rgba[y*w*4:(y+1)*w*4], src.Pix[off:off+w*4])
		}
	case *image.RGBA:
		bY := bounds.Min.Y - src.Rect.Min.Y
		bX4 := (bounds.Min.X - src.Rect.Min.X) * 4
		di := 0
		for y := 0; y < h; y++ {
			off := (bY+y)*src.Stride + bX4
			for x := 0; x < w; x++ {
				a := src.Pix[off+3]
				if a > 0 {
					// Un-premultiply back to straight alpha.
					rgba[di] = uint8(int(src.Pix[off]) * 255 / int(a))
					rgba[di+1] = uint8(int(src.Pix[off+1]) * 255 / int(a))
					rgba[di+2] = uint8(int(src.Pix[off+2]) * 255 / int(a))
				}
				rgba[di+3] = a
				off += 4
				di += 4
			}
		}
	case *image.Gray:
		bY := bounds.Min.Y - src.Rect.Min.Y
		bX := bounds.Min.X - src.Rect.Min.X
		di := 0
		for y := 0; y < h; y++ {
			off := (bY+y)*src.Stride + bX
			for x := 0; x < w; x++ {
				v := src.Pix[off]
				rgba[di] = v
				rgba[di+1] = v
				rgba[di+2] = v
				rgba[di+3] = 255
				off++
				di += 4
			}
		}
	default:
		di := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, a := img.At(x, y).RGBA()
				if a > 0 {
					rgba[di] = uint8((r * 255 / a))
					rgba[di+1] = uint8((g * 255 / a))
					rgba[di+2] = uint8((b * 255 / a))
				}
				rgba[di+3] = uint8(a >> 8)
				di += 4
			}
		}
	}
	return rgba
}

// HasAlpha reports whether any pixel has alpha below fully opaque.
func HasAlpha(img image.Image) bool {
	switch src := img.(type) {
	case *image.NRGBA:
		for i := 3; i < len(src.Pix); i += 4 {
			if src.Pix[i] < 255 {
				return true
			}
		}
		return false
	case *image.RGBA:
		for i := 3; i < len(src.Pix); i += 4 {
			if src.Pix[i] < 255 {
				return true
			}
		}
		return false
	case *image.YCbCr, *image.Gray:
		return false
	default:
		bounds := img.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				_, _, _, a := img.At(x, y).RGBA()
				if a < 65535 {
					return true
				}
			}
		}
		return false
	}
}

// ToNRGBA converts a decoded placeholder into a displayable bitmap.
func (im *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+im.Width*4], im.RGBA[y*im.Width*4:(y+1)*im.Width*4])
	}
	return out
}
