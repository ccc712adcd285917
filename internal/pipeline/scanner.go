package pipeline

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Source is a discovered image file.
type Source struct {
	AbsPath string // absolute path on disk
	RelPath string // path relative to the input directory, forward slashes
	Key     string // asset key: RelPath without extension
	Format  string // normalized source format (png, jpeg, webp, gif, bmp, tiff)
	Size    int64  // file size in bytes
}

var sourceExtensions = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".webp": "webp",
	".gif":  "gif",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
}

// ScanImages walks the input directory and returns every image source,
// skipping hidden directories.
func ScanImages(inputDir string) ([]Source, error) {
	var sources []Source

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != inputDir {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		format, ok := sourceExtensions[ext]
		if !ok {
			return nil
		}

		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: filepath.ToSlash(relPath),
			Key:     filepath.ToSlash(strings.TrimSuffix(relPath, ext)),
			Format:  format,
			Size:    info.Size(),
		})
		return nil
	})

	return sources, err
}
