// pkg/paths/paths.go
package paths

import (
	"path/filepath"

	"github.com/latencyflex/lfx2-install/pkg/core"
)

const (
	// LibraryName is the file name of the installed layer
	LibraryName = "liblatencyflex2_layer.so"

	// ManifestRelPath is where the loader looks for implicit layers, relative to the prefix
	ManifestRelPath = "share/vulkan/implicit_layer.d/lfx2.json"
)

// Layout holds the locations computed for one install run.
//
// Recorded paths are what other processes see after the staged tree is moved
// into place; they never contain the destdir. The other paths are where bytes
// are physically written during this run.
type Layout struct {
	LibraryPath          string
	LibraryRecordedPath  string
	ManifestPath         string
	ManifestRecordedPath string
}

// Resolve computes the layout for cfg. It does not touch the filesystem and
// accepts any prefix or destdir as-is.
func Resolve(cfg *core.InstallConfig) Layout {
	libRecorded := filepath.Join(cfg.Prefix, LibraryName)
	manifestRecorded := filepath.Join(cfg.Prefix, ManifestRelPath)

	return Layout{
		LibraryPath:          filepath.Join(cfg.DestDir, libRecorded),
		LibraryRecordedPath:  libRecorded,
		ManifestPath:         filepath.Join(cfg.DestDir, cfg.Prefix, ManifestRelPath),
		ManifestRecordedPath: manifestRecorded,
	}
}
