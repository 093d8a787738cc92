// Package filestore provides read and atomic-write helpers for the
// single-file document stores kolladm keeps under its etc directory. There
// is no locking between processes, concurrent writers are last-writer-wins.
package filestore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Read returns the contents of path. A missing file is not an error, it
// returns nil data.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// WriteAtomic writes data to path with the given permissions as a single
// atomic operation: the data is written to a temporary file in the same
// directory and renamed over the target. Parent directories are created as
// needed.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
