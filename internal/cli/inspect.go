package cli

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	thumbhash "github.com/Act-App/Act-Thumbhash"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <hash>",
	Short: "Show the fields packed inside a placeholder hash",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// parseHash accepts base64 (standard encoding) or hex.
func parseHash(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	if b, err := hex.DecodeString(s); err == nil {
		return b, nil
	}
	return nil, fmt.Errorf("hash is neither valid base64 nor hex: %q", s)
}

func runInspect(_ *cobra.Command, args []string) error {
	hash, err := parseHash(args[0])
	if err != nil {
		return err
	}

	info, err := thumbhash.Inspect(hash)
	if err != nil {
		return err
	}
	avg, err := thumbhash.AverageRGBA(hash)
	if err != nil {
		return err
	}

	orientation := "portrait"
	if info.IsLandscape {
		orientation = "landscape"
	}

	fmt.Printf("  Size:         %d bytes (%d provided)\n", info.Size, len(hash))
	fmt.Printf("  Alpha:        %v\n", info.HasAlpha)
	fmt.Printf("  Orientation:  %s\n", orientation)
	fmt.Printf("  Luma grid:    %dx%d\n", info.LX, info.LY)
	fmt.Printf("  Aspect ratio: %.4f\n", info.AspectRatio)
	fmt.Printf("  Avg color:    rgba(%d, %d, %d, %.2f)\n",
		int(avg.R*255+0.5), int(avg.G*255+0.5), int(avg.B*255+0.5), avg.A)
	return nil
}
