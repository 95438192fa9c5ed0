package patch

import (
	"fmt"
	"os"
	"path/filepath"
)

type File struct {
	Path     string
	Mode     os.FileMode
	Original string
	Patched  string
}

func (r *File) Changed() bool {
	return r.Original != r.Patched
}

// Prepare reads and patches a file in memory without touching the disk.
func (r *Marker) Prepare(path string, blocks map[string]string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	patched, err := r.Patch(string(content), blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to patch %s: %w", path, err)
	}

	return &File{
		Path:     path,
		Mode:     info.Mode().Perm(),
		Original: string(content),
		Patched:  patched,
	}, nil
}

// Write replaces the file through a temporary sibling and rename.
func (r *File) Write() error {
	temp, err := os.CreateTemp(filepath.Dir(r.Path), "."+filepath.Base(r.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.WriteString(r.Patched); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, r.Mode); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to set temp file mode: %w", err)
	}

	if err := os.Rename(tempPath, r.Path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to replace original file: %w", err)
	}

	return nil
}
