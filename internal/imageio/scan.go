package imageio

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

var inputExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
	".tga":  true,
}

// Supported reports whether path has a decodable extension.
func Supported(path string) bool {
	return inputExts[strings.ToLower(filepath.Ext(path))]
}

// Scan walks dir and returns every decodable file, sorted.
func Scan(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && Supported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
