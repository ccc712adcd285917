package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/Act-App/Act-Thumbhash/internal/manifest"
	"github.com/Act-App/Act-Thumbhash/internal/pipeline"
	"github.com/Act-App/Act-Thumbhash/internal/profile"
)

var (
	buildOutDir   string
	buildProfile  string
	buildWorkers  int
	buildCompress bool
)

var buildCmd = &cobra.Command{
	Use:   "build <input_dir>",
	Short: "Hash every image in a directory and write a manifest",
	Long: `Scans the input directory for images (png, jpeg, webp, gif, bmp, tiff),
computes a placeholder hash for each, and writes a manifest mapping asset
keys to hashes, average colors and aspect ratios.

Profiles with placeholders enabled also render preview files, named
content-addressed: <key>.<w>x<h>.<hash>.<ext>`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "./thumbctl_out", "output directory")
	buildCmd.Flags().StringVarP(&buildProfile, "profile", "p", "feed", "build profile (feed, gallery, cover)")
	buildCmd.Flags().IntVarP(&buildWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	buildCmd.Flags().BoolVar(&buildCompress, "compress", false, "write a zstd-compressed manifest (.json.zst)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(_ *cobra.Command, args []string) error {
	start := time.Now()

	absInput, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(buildOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	prof := profile.Get(buildProfile)

	logVerbose("input:   %s", absInput)
	logVerbose("output:  %s", absOutput)
	logVerbose("profile: %s (base=%d, placeholders=%v)", prof.Name, prof.BaseSize, prof.Placeholders)

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		InputDir:  absInput,
		OutputDir: absOutput,
		Profile:   prof,
		Workers:   buildWorkers,
		Verbose:   verbose,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	name := "thumbctl.manifest.json"
	if buildCompress {
		name += ".zst"
	}
	manifestPath := filepath.Join(absOutput, name)
	if err := manifest.Write(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBuildReport(m, name, manifestPath, time.Since(start))
	return nil
}

func printBuildReport(m *manifest.Manifest, name, path string, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("  thumbctl build complete")
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Assets:      %d\n", s.TotalAssets)
	fmt.Printf("  Input size:  %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Hash bytes:  %s (avg %.1f B/asset)\n",
		formatBytes(int64(s.TotalHashBytes)), avgHashBytes(s))
	if s.WithAlpha > 0 {
		fmt.Printf("  With alpha:  %d\n", s.WithAlpha)
	}
	if s.Duplicates > 0 {
		fmt.Printf("  Duplicates:  %d\n", s.Duplicates)
	}
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:     %d\n", m.BuildInfo.Workers)
	}
	fmt.Println()

	// Largest sources first; those benefit most from a placeholder.
	if len(m.Assets) > 0 {
		type item struct {
			key  string
			size int64
		}
		var items []item
		for key, a := range m.Assets {
			items = append(items, item{key, a.Size})
		}
		sort.Slice(items, func(i, j int) bool { return items[i].size > items[j].size })
		n := len(items)
		if n > 10 {
			n = 10
		}
		fmt.Printf("  Top %d largest sources:\n", n)
		for _, it := range items[:n] {
			fmt.Printf("    %-40s %8s\n", truncKey(it.key, 40), formatBytes(it.size))
		}
		fmt.Println()
	}

	if info, err := os.Stat(path); err == nil {
		fmt.Printf("  Manifest:    %s (%s)\n", name, formatBytes(info.Size()))
	} else {
		fmt.Printf("  Manifest:    %s\n", name)
	}
	fmt.Println()
}

func avgHashBytes(s manifest.Stats) float64 {
	if s.TotalAssets == 0 {
		return 0
	}
	return float64(s.TotalHashBytes) / float64(s.TotalAssets)
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
