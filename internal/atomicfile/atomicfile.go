// Package atomicfile replaces files without leaving partial content behind.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile stores data at path through a temp file in the same directory
// followed by a rename. A zero perm keeps the mode of an existing file, or
// 0644 for a new one.
func WriteFile(path string, data []byte, perm os.FileMode) (err error) {
	if perm == 0 {
		perm = existingMode(path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := tmp.Chmod(perm); err != nil && !os.IsPermission(err) {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return replace(tmp.Name(), path)
}

func existingMode(path string) os.FileMode {
	if st, err := os.Stat(path); err == nil {
		return st.Mode().Perm()
	}
	return 0o644
}

// replace renames src over dst. Windows refuses to rename onto an existing
// file, so a failed rename is retried once after removing dst.
func replace(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	_ = os.Remove(dst)
	if retry := os.Rename(src, dst); retry != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
