package manifest

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
)

// New creates an empty manifest with defaults.
func New(profileName string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:     profileName,
		Assets:      make(map[string]Asset),
	}
}

// ComputeStats recalculates aggregate statistics from assets.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalAssets = len(m.Assets)
	for _, a := range m.Assets {
		s.TotalInputBytes += a.Size
		if a.HasAlpha {
			s.WithAlpha++
		}
		if a.DuplicateOf != "" {
			s.Duplicates++
		}
		if raw, err := base64.StdEncoding.DecodeString(a.ThumbHash); err == nil {
			s.TotalHashBytes += len(raw)
		}
	}
	m.Stats = s
}

// Write serializes the manifest to path. A ".zst" suffix selects
// zstd-compressed JSON, anything else plain JSON.
func Write(m *Manifest, path string) error {
	if strings.HasSuffix(path, ".zst") {
		return WriteJSONZstd(m, path)
	}
	return WriteJSON(m, path)
}

// WriteJSON serializes the manifest to an indented JSON file.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// WriteJSONZstd serializes the manifest to a zstd-compressed JSON
// file. Manifests for large galleries are dominated by base64 hashes
// and repeated keys, which compress well.
func WriteJSONZstd(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.Marshal(m)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return err
	}
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read loads a manifest written by Write, in either encoding.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		data, err = zr.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress manifest: %w", err)
		}
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
