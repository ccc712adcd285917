package thumbhash

// The hash starts with a fixed block of fields packed at bit
// granularity, little-endian bit order within bytes:
//
//	L DC       6 bit
//	P DC       6 bit
//	Q DC       6 bit
//	L scale    5 bit
//	has alpha  1 bit
//	L count    3 bit   (lx for portrait, ly for landscape)
//	P scale    6 bit
//	Q scale    6 bit
//	landscape  1 bit
//
// followed, only when the alpha flag is set, by
//
//	A DC       4 bit
//	A scale    4 bit
//
// AC coefficients then follow as a nibble stream in L, P, Q, A order.
// Field order and widths are a frozen external contract shared with
// every other implementation of the format; the cursor below writes
// them in declaration order, which reproduces the historical byte
// positions exactly.

const (
	headerSize      = 5
	headerSizeAlpha = 6
)

// header is the struct-of-fields view of the fixed block. DC and scale
// values are kept dequantized in [0,1] (DCs of P/Q in [-1,1]).
type header struct {
	LDC, PDC, QDC  float64
	LScale         float64
	HasAlpha       bool
	LCount         int
	PScale, QScale float64
	IsLandscape    bool
	ADC, AScale    float64
}

func (h *header) size() int {
	if h.HasAlpha {
		return headerSizeAlpha
	}
	return headerSize
}

// acStart returns the nibble index of the first AC coefficient.
func (h *header) acStart() int {
	return h.size() * 2
}

// lExtents returns the retained luminance frequency extents implied by
// the header. These are the raw stored values used for the aspect
// ratio; the DCT grid additionally clamps them to at least 3.
func (h *header) lExtents() (lx, ly int) {
	limit := 7
	if h.HasAlpha {
		limit = 5
	}
	count := max1(h.LCount)
	if h.IsLandscape {
		return limit, count
	}
	return count, limit
}

func (h *header) writeTo(buf []byte) {
	w := bitWriter{buf: buf}
	w.write(quantize(h.LDC, 63), 6)
	w.write(quantizeSigned(h.PDC, 63), 6)
	w.write(quantizeSigned(h.QDC, 63), 6)
	w.write(quantize(h.LScale, 31), 5)
	w.writeBool(h.HasAlpha)
	w.write(h.LCount, 3)
	w.write(quantize(h.PScale, 63), 6)
	w.write(quantize(h.QScale, 63), 6)
	w.writeBool(h.IsLandscape)
	if h.HasAlpha {
		w.write(quantize(h.ADC, 15), 4)
		w.write(quantize(h.AScale, 15), 4)
	}
}

func (h *header) readFrom(hash []byte) error {
	if len(hash) < headerSize {
		return ErrMalformedHash
	}
	r := bitReader{buf: hash}
	h.LDC = dequantize(r.read(6), 63)
	h.PDC = dequantizeSigned(r.read(6), 63)
	h.QDC = dequantizeSigned(r.read(6), 63)
	h.LScale = dequantize(r.read(5), 31)
	h.HasAlpha = r.readBool()
	h.LCount = r.read(3)
	h.PScale = dequantize(r.read(6), 63)
	h.QScale = dequantize(r.read(6), 63)
	h.IsLandscape = r.readBool()
	h.ADC, h.AScale = 1, 0
	if h.HasAlpha {
		if len(hash) < headerSizeAlpha {
			return ErrMalformedHash
		}
		h.ADC = dequantize(r.read(4), 15)
		h.AScale = dequantize(r.read(4), 15)
	}
	return nil
}

// bitWriter packs fields into a byte buffer at bit granularity,
// low bit of each byte first. The buffer must be zeroed.
type bitWriter struct {
	buf []byte
	pos int
}

func (w *bitWriter) write(v, width int) {
	for i := 0; i < width; i++ {
		if v&(1<<i) != 0 {
			w.buf[w.pos>>3] |= 1 << (w.pos & 7)
		}
		w.pos++
	}
}

func (w *bitWriter) writeBool(b bool) {
	v := 0
	if b {
		v = 1
	}
	w.write(v, 1)
}

// bitReader is the reading counterpart of bitWriter.
type bitReader struct {
	buf []byte
	pos int
}

func (r *bitReader) read(width int) int {
	v := 0
	for i := 0; i < width; i++ {
		if r.buf[r.pos>>3]&(1<<(r.pos&7)) != 0 {
			v |= 1 << i
		}
		r.pos++
	}
	return v
}

func (r *bitReader) readBool() bool {
	return r.read(1) != 0
}

// nibbleWriter appends 4-bit values to a zeroed buffer starting at an
// absolute nibble index. Even indexes land in the low half of a byte,
// odd in the high half.
type nibbleWriter struct {
	buf []byte
	idx int
}

func (w *nibbleWriter) write(v int) {
	if w.idx&1 == 0 {
		w.buf[w.idx>>1] |= byte(v)
	} else {
		w.buf[w.idx>>1] |= byte(v) << 4
	}
	w.idx++
}

// nibbleReader is the reading counterpart of nibbleWriter.
type nibbleReader struct {
	buf []byte
	idx int
}

func (r *nibbleReader) read() int {
	b := r.buf[r.idx>>1]
	if r.idx&1 != 0 {
		b >>= 4
	}
	r.idx++
	return int(b & 15)
}
