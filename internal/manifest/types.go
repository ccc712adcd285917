package manifest

// Manifest is the top-level output of a thumbctl build: one entry per
// source image with its placeholder hash and metadata.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// BuildInfo captures build-time parameters for diagnostics.
type BuildInfo struct {
	Workers int `json:"workers"`
}

// Asset describes a single source image and its placeholder.
type Asset struct {
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Format      string    `json:"format"`
	Size        int64     `json:"size"`
	HasAlpha    bool      `json:"has_alpha"`
	ThumbHash   string    `json:"thumbhash"`              // base64-encoded hash bytes
	CacheKey    string    `json:"cache_key"`              // xxhash64 of the hash bytes
	AspectRatio float64   `json:"aspect_ratio"`           // width / height
	AvgColor    *[4]uint8 `json:"avg_color,omitempty"`    // RGBA 0–255, from the DC terms
	Placeholder string    `json:"placeholder,omitempty"`  // rendered preview, relative path
	DuplicateOf string    `json:"duplicate_of,omitempty"` // key of a byte-identical source
}

// Stats aggregates build metrics.
type Stats struct {
	TotalAssets     int   `json:"total_assets"`
	TotalInputBytes int64 `json:"total_input_bytes"`
	TotalHashBytes  int   `json:"total_hash_bytes"`
	WithAlpha       int   `json:"with_alpha"`
	Duplicates      int   `json:"duplicates,omitempty"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
