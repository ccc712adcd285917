package pipeline

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	thumbhash "github.com/Act-App/Act-Thumbhash"
	"github.com/Act-App/Act-Thumbhash/internal/encoder"
	"github.com/Act-App/Act-Thumbhash/internal/hasher"
	"github.com/Act-App/Act-Thumbhash/internal/manifest"
	"github.com/Act-App/Act-Thumbhash/internal/preview"
)

// processResult holds the outcome for a single source image.
type processResult struct {
	key        string
	asset      manifest.Asset
	sourceHash string // content hash of the raw file, for duplicate detection
	err        error
}

// processImage handles one source: read, decode, hash, and optionally
// render a placeholder file.
func processImage(src Source, cfg Config, registry *encoder.Registry) processResult {
	result := processResult{key: src.Key}

	data, err := os.ReadFile(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("read %s: %w", src.RelPath, err)
		return result
	}
	result.sourceHash = hasher.ContentHash(data, 16)

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	bounds := img.Bounds()
	origW := bounds.Dx()
	origH := bounds.Dy()

	hash, err := thumbhash.EncodeImage(img)
	if err != nil {
		result.err = fmt.Errorf("hash %s: %w", src.RelPath, err)
		return result
	}

	info, err := thumbhash.Inspect(hash)
	if err != nil {
		result.err = fmt.Errorf("inspect %s: %w", src.RelPath, err)
		return result
	}
	avg, err := thumbhash.AverageRGBA(hash)
	if err != nil {
		result.err = fmt.Errorf("average color %s: %w", src.RelPath, err)
		return result
	}
	avgColor := [4]uint8{
		uint8(avg.R*255 + 0.5),
		uint8(avg.G*255 + 0.5),
		uint8(avg.B*255 + 0.5),
		uint8(avg.A*255 + 0.5),
	}

	result.asset = manifest.Asset{
		Width:       origW,
		Height:      origH,
		Format:      src.Format,
		Size:        src.Size,
		HasAlpha:    info.HasAlpha,
		ThumbHash:   base64.StdEncoding.EncodeToString(hash),
		CacheKey:    hasher.HexKey(hash),
		AspectRatio: float64(origW) / float64(origH),
		AvgColor:    &avgColor,
	}

	if cfg.Profile.Placeholders {
		rel, err := writePlaceholder(src, cfg, registry, hash)
		if err != nil {
			result.err = err
			return result
		}
		result.asset.Placeholder = rel
	}

	return result
}

// writePlaceholder renders the hash to a preview file under the output
// directory and returns its relative path. Files are content-addressed
// so unchanged placeholders keep stable names across builds.
func writePlaceholder(src Source, cfg Config, registry *encoder.Registry, hash []byte) (string, error) {
	res, err := preview.Render(registry, hash, preview.Options{
		BaseSize:        cfg.Profile.BaseSize,
		Upscale:         cfg.Profile.Upscale,
		Format:          cfg.Profile.Format,
		SaturationBoost: cfg.Profile.SaturationBoost,
	})
	if err != nil {
		return "", fmt.Errorf("render %s: %w", src.RelPath, err)
	}

	keyDir := filepath.Dir(src.Key)
	if keyDir != "." {
		if err := os.MkdirAll(filepath.Join(cfg.OutputDir, keyDir), 0o755); err != nil {
			return "", err
		}
	}

	contentHash := hasher.ContentHash(res.Data, 16)
	fileName := fmt.Sprintf("%s.%dx%d.%s.%s",
		filepath.Base(src.Key), res.Width, res.Height, contentHash[:8], res.Extension)
	relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

	outPath := filepath.Join(cfg.OutputDir, relPath)
	if err := os.WriteFile(outPath, res.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", relPath, err)
	}
	return relPath, nil
}
