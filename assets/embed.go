package assets

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultMaze     = "maze.txt"
	DefaultManifest = "textures.yaml"
)

//go:embed maze.txt textures.yaml
var assetsFS embed.FS

// Load reads a file from disk, falling back to the embedded copy so the
// binary runs from any directory.
func Load(path string) ([]byte, error) {
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}
	return assetsFS.ReadFile(cleanAssetPath(path))
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
