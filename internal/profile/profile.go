// Package profile holds named placeholder-rendering presets.
package profile

// Profile defines how placeholders are decoded and rendered during a
// build.
type Profile struct {
	Name            string
	BaseSize        int     // long side of the decoded placeholder
	Upscale         int     // long side of rendered preview files, 0 keeps BaseSize
	Format          string  // preview file format: png, jpeg, webp
	SaturationBoost float64 // chroma boost at decode, 0 means codec default
	Placeholders    bool    // write rendered preview files next to the manifest
}

// Built-in profiles.
var profiles = map[string]Profile{
	// Hash-only manifest for list/feed UIs that render client-side.
	"feed": {
		Name:     "feed",
		BaseSize: 32,
	},
	// Manifest plus rendered PNG previews for server-side galleries.
	"gallery": {
		Name:         "gallery",
		BaseSize:     32,
		Upscale:      256,
		Format:       "png",
		Placeholders: true,
	},
	// Large blurred covers; jpeg keeps the files small.
	"cover": {
		Name:         "cover",
		BaseSize:     64,
		Upscale:      512,
		Format:       "jpeg",
		Placeholders: true,
	},
}

// Get returns a profile by name. Falls back to feed if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["feed"]
	p.Name = name // preserve requested name
	return p
}

// Names lists the built-in profile names.
func Names() []string {
	return []string{"feed", "gallery", "cover"}
}
