package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	MarkdownExtensions = []string{".md", ".markdown"}
	ImageExtensions    = []string{".jpg", ".jpeg", ".png", ".gif"}
)

// HasExtension reports whether path ends in one of extensions, ignoring case.
func HasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// GatherFiles expands roots into absolute file paths. Files are taken as is
// when their extension matches, directories are searched one level deep.
func GatherFiles(roots []string, extensions []string) ([]string, error) {
	appendAbsPath := func(paths []string, path string) ([]string, error) {
		path, err := filepath.Abs(path)
		if err != nil {
			return paths, fmt.Errorf("absolute path: %w", err)
		}
		return append(paths, path), nil
	}

	var paths []string

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if fi.Mode().IsRegular() {
			if !HasExtension(fi.Name(), extensions) {
				continue
			}

			paths, err = appendAbsPath(paths, root)
			if err != nil {
				return nil, err
			}

		} else if fi.Mode().IsDir() {
			files, err := os.ReadDir(root)
			if err != nil {
				return nil, fmt.Errorf("read dir: %w", err)
			}

			for _, fi := range files {
				if fi.IsDir() || !HasExtension(fi.Name(), extensions) {
					continue
				}

				paths, err = appendAbsPath(paths, filepath.Join(root, fi.Name()))
				if err != nil {
					return nil, err
				}
			}
		} else {
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	return paths, nil
}
