package thumbhash

// Info reports the decoded header fields of a hash.
type Info struct {
	HasAlpha    bool
	IsLandscape bool

	// LX and LY are the retained luminance frequency extents as
	// stored (the DCT grid clamps them to at least 3).
	LX, LY int

	// AspectRatio approximates the original width/height.
	AspectRatio float64

	LDC, PDC, QDC          float64
	LScale, PScale, QScale float64
	ADC, AScale            float64

	// Size is the total byte length the header implies.
	Size int
}

// Inspect decodes the header of a hash without reconstructing pixels.
func Inspect(hash []byte) (Info, error) {
	var hdr header
	if err := hdr.readFrom(hash); err != nil {
		return Info{}, err
	}

	lx, ly := hdr.lExtents()
	acCount := coefficientCount(imax(3, lx), imax(3, ly)) + 2*coefficientCount(3, 3)
	if hdr.HasAlpha {
		acCount += coefficientCount(5, 5)
	}

	return Info{
		HasAlpha:    hdr.HasAlpha,
		IsLandscape: hdr.IsLandscape,
		LX:          lx,
		LY:          ly,
		AspectRatio: float64(lx) / float64(ly),
		LDC:         hdr.LDC,
		PDC:         hdr.PDC,
		QDC:         hdr.QDC,
		LScale:      hdr.LScale,
		PScale:      hdr.PScale,
		QScale:      hdr.QScale,
		ADC:         hdr.ADC,
		AScale:      hdr.AScale,
		Size:        hdr.size() + (acCount+1)/2,
	}, nil
}

// ApproximateAspectRatio extracts the approximate width/height ratio
// of the original image from a hash.
func ApproximateAspectRatio(hash []byte) (float64, error) {
	var hdr header
	if err := hdr.readFrom(hash); err != nil {
		return 0, err
	}
	lx, ly := hdr.lExtents()
	return float64(lx) / float64(ly), nil
}

// RGBA is a color with components in [0,1], RGB not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// AverageRGBA extracts the average color encoded in a hash's DC
// terms.
func AverageRGBA(hash []byte) (RGBA, error) {
	var hdr header
	if err := hdr.readFrom(hash); err != nil {
		return RGBA{}, err
	}
	r, g, b := lpqToRGB(hdr.LDC, hdr.PDC, hdr.QDC)
	return RGBA{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
		A: hdr.ADC,
	}, nil
}
