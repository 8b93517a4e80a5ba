package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// localDisk is the local-filesystem driver. A relative root resolves against
// the user's home directory, so the default ".shopeasy" behaves like a
// browser's per-profile storage scope.
type localDisk struct {
	root    string
	baseURL string
}

// NewLocal returns a Disk rooted at root. baseURL may be empty when the disk
// has no public URL surface.
func NewLocal(root, baseURL string) Disk {
	if !filepath.IsAbs(root) {
		home, err := os.UserHomeDir()
		if err != nil {
			home, _ = os.Getwd()
		}
		root = filepath.Join(home, root)
	}
	return &localDisk{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (d *localDisk) abs(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

func (d *localDisk) Put(path string, content []byte) error {
	full := d.abs(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage/local: mkdir: %w", err)
	}
	if err := os.WriteFile(full, content, 0o600); err != nil {
		return fmt.Errorf("storage/local: write %s: %w", path, err)
	}
	return nil
}

func (d *localDisk) Get(path string) ([]byte, error) {
	data, err := os.ReadFile(d.abs(path))
	if err != nil {
		return nil, fmt.Errorf("storage/local: get %s: %w", path, err)
	}
	return data, nil
}

func (d *localDisk) Exists(path string) bool {
	_, err := os.Stat(d.abs(path))
	return err == nil
}

func (d *localDisk) Delete(path string) error {
	err := os.Remove(d.abs(path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage/local: delete %s: %w", path, err)
	}
	return nil
}

func (d *localDisk) URL(path string) string {
	if d.baseURL == "" {
		return ""
	}
	return d.baseURL + "/" + strings.TrimLeft(filepath.ToSlash(path), "/")
}
