// internal/writers/file.go
package writers

import (
	"fmt"
	"os"
	"path/filepath"
)

const tmpPattern = ".readstats-*.tmp"

// WriteFileAtomic writes data next to path and renames it into place, so
// readers never observe a half-written report.
func WriteFileAtomic(path string, data []byte) error {
	fd, err := os.CreateTemp(filepath.Dir(path), tmpPattern)
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmpPath := fd.Name()
	fail := func(err error) error {
		_ = fd.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if _, err := fd.Write(data); err != nil {
		return fail(fmt.Errorf("write %s: %w", path, err))
	}
	if err := fd.Sync(); err != nil {
		return fail(fmt.Errorf("sync %s: %w", path, err))
	}
	if err := fd.Chmod(0o644); err != nil {
		return fail(fmt.Errorf("chmod %s: %w", path, err))
	}
	if err := fd.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
