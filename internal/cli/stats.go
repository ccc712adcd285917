package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Act-App/Act-Thumbhash/internal/manifest"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a built manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for a manifest inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		plain := filepath.Join(path, "thumbctl.manifest.json")
		if _, err := os.Stat(plain); err == nil {
			path = plain
		} else {
			path = plain + ".zst"
		}
	}

	m, err := manifest.Read(path)
	if err != nil {
		return err
	}

	printStats(m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Profile:          %s\n", m.Profile)
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:          %d\n", m.BuildInfo.Workers)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total assets:     %d\n", s.TotalAssets)
	fmt.Printf("  Input size:       %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Hash bytes:       %s (avg %.1f B/asset)\n",
		formatBytes(int64(s.TotalHashBytes)), avgHashBytes(s))
	fmt.Printf("  With alpha:       %d\n", s.WithAlpha)
	fmt.Printf("  Duplicates:       %d\n", s.Duplicates)
	fmt.Println()

	// Per-format breakdown of the sources.
	formatCounts := map[string]int{}
	placeholders := 0
	for _, a := range m.Assets {
		formatCounts[a.Format]++
		if a.Placeholder != "" {
			placeholders++
		}
	}
	var formats []string
	for f := range formatCounts {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	fmt.Println("  Source formats:")
	for _, f := range formats {
		fmt.Printf("    %-6s  %4d files\n", f, formatCounts[f])
	}
	fmt.Println()
	fmt.Printf("  Rendered placeholders: %d / %d assets\n", placeholders, len(m.Assets))

	// Warnings.
	var warnings []string
	for key, a := range m.Assets {
		if a.ThumbHash == "" {
			warnings = append(warnings, fmt.Sprintf("asset %q missing thumbhash", key))
		}
	}
	if len(warnings) > 0 {
		fmt.Println()
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
	}
	fmt.Println()
}
