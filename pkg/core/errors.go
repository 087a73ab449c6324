// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrArtifactNotFound indicates the source library does not exist
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrNoLibraryInArchive indicates a Nix archive holds no layer library
	ErrNoLibraryInArchive = errors.New("no layer library in archive")

	// ErrNotRegularFile indicates the source is a directory, device or similar
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrHashMismatch indicates the artifact digest did not match the expected one
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrInvalidManifest indicates the manifest is missing a required field
	ErrInvalidManifest = errors.New("invalid manifest")
)

// FileSystemError is the single failure kind of an install run. It records
// which operation failed and on which path.
type FileSystemError struct {
	Op   string // Operation that failed
	Path string // Path the operation acted on
	Err  error  // Underlying error
}

func (e *FileSystemError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}

// NewFileSystemError wraps err, returning nil when err is nil
func NewFileSystemError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &FileSystemError{Op: op, Path: path, Err: err}
}
