// Package pipeline scans a directory of images and builds a placeholder
// manifest, optionally writing rendered preview files.
package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/Act-App/Act-Thumbhash/internal/dispatch"
	"github.com/Act-App/Act-Thumbhash/internal/encoder"
	"github.com/Act-App/Act-Thumbhash/internal/manifest"
	"github.com/Act-App/Act-Thumbhash/internal/profile"
)

// Config holds all parameters for a build run.
type Config struct {
	InputDir  string
	OutputDir string
	Profile   profile.Profile
	Workers   int
	Verbose   bool
}

// Pipeline orchestrates image processing.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

// Run executes the full build and returns the manifest.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[thumbctl] %s\n", p.registry.String())
	}

	sources, err := ScanImages(p.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[thumbctl] found %d images\n", len(sources))
	}

	results := dispatch.Map(p.cfg.Workers, sources, func(src Source) processResult {
		if p.cfg.Verbose {
			fmt.Fprintf(os.Stderr, "[thumbctl] processing: %s\n", src.Key)
		}
		return processImage(src, p.cfg, p.registry)
	})

	m := manifest.New(p.cfg.Profile.Name)

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Assets[r.key] = r.asset
	}

	markDuplicates(m, results)

	// Report errors but don't fail the build for partial failures.
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[thumbctl] error: %v\n", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to process", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[thumbctl] warning: %d of %d images had errors\n",
			len(errs), len(sources))
	}

	m.BuildInfo = &manifest.BuildInfo{Workers: p.cfg.Workers}
	m.ComputeStats()
	return m, nil
}

// markDuplicates flags assets whose source bytes match an earlier asset.
// The first key in sorted order is the canonical one.
func markDuplicates(m *manifest.Manifest, results []processResult) {
	byHash := make(map[string][]string)
	for _, r := range results {
		if r.err != nil || r.sourceHash == "" {
			continue
		}
		byHash[r.sourceHash] = append(byHash[r.sourceHash], r.key)
	}
	for _, keys := range byHash {
		if len(keys) < 2 {
			continue
		}
		sort.Strings(keys)
		canonical := keys[0]
		for _, key := range keys[1:] {
			a := m.Assets[key]
			a.DuplicateOf = canonical
			m.Assets[key] = a
		}
	}
}
