// Package hasher provides cache keys for thumbhash bytes and content
// hashes for source files.
package hasher

import (
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Key returns a 64-bit cache key for a hash's bytes. Two hashes map
// to the same key iff their bytes are equal (modulo xxhash64
// collisions), so cache layers that treat byte-equal hashes as
// identical can key on this instead of comparing slices.
func Key(hash []byte) uint64 {
	return xxhash.Sum64(hash)
}

// HexKey returns Key as a fixed 16-character hex string.
func HexKey(hash []byte) string {
	return hex.EncodeToString(uint64ToBytes(Key(hash)))
}

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to the given length. 16 hex chars (64 bits) is
// collision-safe for practical asset counts.
func ContentHash(data []byte, hexLen int) string {
	full := hex.EncodeToString(uint64ToBytes(xxhash.Sum64(data)))
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}

// ContentHashReader computes xxHash64 from a reader, streaming.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	full := hex.EncodeToString(uint64ToBytes(h.Sum64()))
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen], nil
	}
	return full, nil
}

func uint64ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (56 - 8*i))
	}
	return b
}
