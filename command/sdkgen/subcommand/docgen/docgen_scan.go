package docgen

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type Folder struct {
	Path    string
	Headers []string
}

type Header struct {
	Name     string
	Document *Document
}

// Scan walks the root and returns every folder holding header files, in lexical order.
func Scan(root string, excludes []string, extensions []string) ([]*Folder, error) {
	excluded := make(map[string]bool, len(excludes))
	for _, exclude := range excludes {
		excluded[exclude] = true
	}

	folders := make([]*Folder, 0)
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && excluded[entry.Name()] {
			return filepath.SkipDir
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}

		folder := &Folder{
			Path:    path,
			Headers: make([]string, 0),
		}
		for _, child := range entries {
			if child.IsDir() || !hasExtension(child.Name(), extensions) {
				continue
			}
			folder.Headers = append(folder.Headers, child.Name())
		}
		sort.Strings(folder.Headers)
		folders = append(folders, folder)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return folders, nil
}

func hasExtension(name string, extensions []string) bool {
	for _, extension := range extensions {
		if strings.HasSuffix(name, extension) {
			return true
		}
	}
	return false
}
