// pkg/fsutil/fsutil.go
package fsutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/latencyflex/lfx2-install/pkg/core"
)

const (
	DirMode     = os.FileMode(0755)
	LibraryMode = os.FileMode(0755)
	FileMode    = os.FileMode(0644)
)

// EnsureParents creates every missing directory above path. Directories that
// already exist are left alone, so calling it again is a no-op.
func EnsureParents(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return core.NewFileSystemError("create directory", dir, err)
	}
	return nil
}

// WriteFrom creates or truncates dst and copies r into it. Parent directories
// are created first. It returns the number of bytes written.
func WriteFrom(dst string, r io.Reader, perm os.FileMode) (int64, error) {
	if err := EnsureParents(dst); err != nil {
		return 0, err
	}

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return 0, core.NewFileSystemError("write", dst, err)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		var fsErr *core.FileSystemError
		if errors.As(err, &fsErr) {
			return written, err
		}
		return written, core.NewFileSystemError("write", dst, err)
	}
	if err := f.Close(); err != nil {
		return written, core.NewFileSystemError("write", dst, err)
	}

	return written, nil
}

// WriteFile is WriteFrom for an in-memory buffer
func WriteFile(dst string, data []byte, perm os.FileMode) error {
	if err := EnsureParents(dst); err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, perm); err != nil {
		return core.NewFileSystemError("write", dst, err)
	}
	return nil
}

// SameFile reports whether a and b name the same existing file. Missing or
// unreadable paths are never the same.
func SameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
