package encoder

import (
	"fmt"
	"strings"
)

// Registry holds all available encoders and selects one per format.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry, probing all encoders for availability.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	all := []Encoder{
		&PNGEncoder{},
		&JPEGEncoder{},
		&WebPEncoder{},
	}

	for _, enc := range all {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}

	return r
}

// Get returns an encoder for the given format, or nil if unavailable.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[strings.ToLower(format)]
}

// Available returns all available format names in priority order.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range []string{"png", "jpeg", "webp"} {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// Resolve returns an encoder for the requested format, falling back to
// PNG for alpha images and JPEG otherwise when the request can't be met.
func (r *Registry) Resolve(format string, hasAlpha bool) (Encoder, error) {
	if enc := r.Get(format); enc != nil {
		return enc, nil
	}
	fallback := "jpeg"
	if hasAlpha || format == "" {
		fallback = "png"
	}
	if enc := r.Get(fallback); enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("no encoder available for format %q", format)
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
