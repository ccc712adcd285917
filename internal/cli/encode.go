package cli

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	thumbhash "github.com/Act-App/Act-Thumbhash"
)

var encodeHex bool

var encodeCmd = &cobra.Command{
	Use:   "encode <image_path>",
	Short: "Compute the placeholder hash of an image file",
	Long: `Decodes the image (png, jpeg, gif, webp, bmp, tiff), downscales it
internally and prints the placeholder hash, base64-encoded by default.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeHex, "hex", false, "print the hash as hex instead of base64")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	logVerbose("decoded %s %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())

	hash, err := thumbhash.EncodeImage(img)
	if err != nil {
		return err
	}
	logVerbose("hash: %d bytes", len(hash))

	if encodeHex {
		fmt.Println(hex.EncodeToString(hash))
	} else {
		fmt.Println(base64.StdEncoding.EncodeToString(hash))
	}
	return nil
}
