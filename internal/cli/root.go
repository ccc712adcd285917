// Package cli implements the thumbctl command tree.
package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "thumbctl",
	Short: "Compact image placeholders for instant-loading UIs",
	Long: `thumbctl — encodes images into ~25-byte placeholder hashes that decode
back into small blurred previews, so pages can paint something meaningful
before the real image arrives.

Builds a manifest mapping asset keys to hashes, average colors and aspect
ratios, optionally alongside rendered preview files.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"thumbctl %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[thumbctl] "+format+"\n", args...)
	}
}
