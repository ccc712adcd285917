package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	thumbhash "github.com/Act-App/Act-Thumbhash"
	"github.com/Act-App/Act-Thumbhash/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a manifest and check every hash decodes",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	m, err := manifest.Read(manifestPath)
	if err != nil {
		return err
	}

	baseDir := filepath.Dir(manifestPath)
	errors := validateManifest(m, baseDir)

	if len(errors) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d assets — all hashes decode\n", m.Stats.TotalAssets)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	for key, asset := range m.Assets {
		if asset.Width <= 0 || asset.Height <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid dimensions %dx%d",
				key, asset.Width, asset.Height))
		}
		if asset.AspectRatio <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid aspect ratio %.4f", key, asset.AspectRatio))
		}

		if asset.ThumbHash == "" {
			errs = append(errs, fmt.Sprintf("asset %q: missing thumbhash", key))
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(asset.ThumbHash)
		if err != nil {
			errs = append(errs, fmt.Sprintf("asset %q: thumbhash is not valid base64", key))
			continue
		}
		if _, err := thumbhash.Decode(raw); err != nil {
			errs = append(errs, fmt.Sprintf("asset %q: thumbhash does not decode: %v", key, err))
		}

		if asset.DuplicateOf != "" {
			if _, ok := m.Assets[asset.DuplicateOf]; !ok {
				errs = append(errs, fmt.Sprintf("asset %q: duplicate_of %q does not exist",
					key, asset.DuplicateOf))
			}
		}

		if asset.Placeholder != "" {
			fullPath := filepath.Join(baseDir, filepath.FromSlash(asset.Placeholder))
			if _, err := os.Stat(fullPath); err != nil {
				errs = append(errs, fmt.Sprintf("asset %q: placeholder file not found: %s",
					key, asset.Placeholder))
			}
		}
	}

	if m.Stats.TotalAssets != len(m.Assets) {
		errs = append(errs, fmt.Sprintf("stats.total_assets mismatch: %d != %d",
			m.Stats.TotalAssets, len(m.Assets)))
	}

	return errs
}
