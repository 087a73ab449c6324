// errors.go
package lfx2

import "github.com/latencyflex/lfx2-install/pkg/core"

// FileSystemError is the only error kind an install run returns
type FileSystemError = core.FileSystemError

var (
	// ErrArtifactNotFound indicates the source library does not exist
	ErrArtifactNotFound = core.ErrArtifactNotFound

	// ErrNoLibraryInArchive indicates a Nix archive holds no layer library
	ErrNoLibraryInArchive = core.ErrNoLibraryInArchive

	// ErrHashMismatch indicates a sha256 verification failure
	ErrHashMismatch = core.ErrHashMismatch

	// ErrInvalidManifest indicates the generated manifest failed validation
	ErrInvalidManifest = core.ErrInvalidManifest
)

var (
	// ErrNotRegularFile indicates the source is not a regular file
	ErrNotRegularFile = core.ErrNotRegularFile
)
