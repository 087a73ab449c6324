// installer.go
package lfx2

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/latencyflex/lfx2-install/pkg/artifact"
	"github.com/latencyflex/lfx2-install/pkg/core"
	"github.com/latencyflex/lfx2-install/pkg/fsutil"
	"github.com/latencyflex/lfx2-install/pkg/manifest"
	"github.com/latencyflex/lfx2-install/pkg/paths"
)

// Re-export types for convenience
type (
	InstallConfig = core.InstallConfig
	Layout        = paths.Layout
	Document      = manifest.Document
	Digest        = artifact.Digest
)

// DefaultConfig returns a configuration with prefix /usr and no destdir
func DefaultConfig() *InstallConfig {
	return core.DefaultConfig()
}

// Installer performs install runs for one configuration
type Installer struct {
	config *InstallConfig
	logger *log.Logger
}

// Result describes a finished run
type Result struct {
	Layout      Layout
	BytesCopied int64
	Digest      Digest
	Manifest    *Document
	DryRun      bool
}

// New creates an Installer. A nil config means DefaultConfig and a nil
// logger discards output. The config is copied and not modified afterwards.
func New(config *InstallConfig, logger *log.Logger) *Installer {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := *config
	if cfg.Source == "" {
		cfg.Source = core.DefaultSource
	}

	return &Installer{config: &cfg, logger: logger}
}

// Config returns a copy of the configuration in use
func (in *Installer) Config() InstallConfig {
	return *in.config
}

// Layout returns where this installer reads and writes, without touching the
// filesystem.
func (in *Installer) Layout() Layout {
	return paths.Resolve(in.config)
}

// Run copies the library and writes the manifest. Steps run in order and the
// first failure stops the run; files written before the failure are kept.
// The source is opened and, if a digest is configured, verified before
// anything is created on disk.
func (in *Installer) Run(ctx context.Context) (*Result, error) {
	layout := in.Layout()
	in.logger.Debug("resolved paths",
		"library", layout.LibraryPath,
		"recorded", layout.LibraryRecordedPath,
		"manifest", layout.ManifestPath)

	if err := in.preflight(); err != nil {
		return nil, err
	}

	doc := BuildManifest(layout.LibraryRecordedPath)
	result := &Result{Layout: layout, Manifest: doc, DryRun: in.config.DryRun}

	if in.config.DryRun {
		if _, err := manifest.Encode(doc); err != nil {
			return nil, core.NewFileSystemError("encode manifest", layout.ManifestPath, err)
		}
		in.logger.Info("dry run, nothing written",
			"library", layout.LibraryPath,
			"manifest", layout.ManifestPath)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, core.NewFileSystemError("install library", layout.LibraryPath, err)
	}

	written, digest, err := in.InstallLibrary(in.config.Source, layout.LibraryPath)
	if err != nil {
		return nil, err
	}
	result.BytesCopied = written
	result.Digest = digest
	in.logger.Info("installed library", "path", layout.LibraryPath, "bytes", written, "sha256", digest.NixBase32())

	if err := ctx.Err(); err != nil {
		return result, core.NewFileSystemError("write manifest", layout.ManifestPath, err)
	}

	if err := WriteManifest(layout.ManifestPath, doc); err != nil {
		return result, err
	}
	in.logger.Info("wrote manifest", "path", layout.ManifestPath, "library_path", doc.Layer.LibraryPath)

	return result, nil
}

// preflight makes sure the source can be decoded to a library, and matches
// the expected digest when one is configured.
func (in *Installer) preflight() error {
	src, err := artifact.Open(in.config.Source, paths.LibraryName)
	if err != nil {
		return err
	}
	defer src.Close()

	in.logger.Debug("opened source", "path", src.Path, "kind", src.Kind)

	if in.config.SHA256 == "" {
		return nil
	}

	hr := artifact.NewHashingReader(src)
	if _, err := io.Copy(io.Discard, hr); err != nil {
		return err
	}
	if err := hr.Verify(in.config.SHA256); err != nil {
		return core.NewFileSystemError("verify", src.Path, err)
	}
	in.logger.Debug("verified source digest", "sha256", hr.Sum().NixBase32())
	return nil
}

// InstallLibrary copies the library decoded from src to dst, replacing any
// existing file, and returns the byte count and digest of what was written.
func (in *Installer) InstallLibrary(src, dst string) (int64, Digest, error) {
	source, err := artifact.Open(src, paths.LibraryName)
	if err != nil {
		return 0, Digest{}, err
	}
	defer source.Close()

	hr := artifact.NewHashingReader(source)

	// Truncating dst would empty the source before it is read. dst always
	// ends in the library name, so a source at the same path is never packed.
	if fsutil.SameFile(src, dst) {
		n, err := io.Copy(io.Discard, hr)
		if err != nil {
			return n, Digest{}, err
		}
		in.logger.Info("library already in place", "path", dst)
		return n, hr.Sum(), nil
	}

	written, err := fsutil.WriteFrom(dst, hr, fsutil.LibraryMode)
	if err != nil {
		return written, Digest{}, err
	}
	return written, hr.Sum(), nil
}

// BuildManifest returns the manifest recording libraryPath
func BuildManifest(libraryPath string) *Document {
	return manifest.Build(libraryPath)
}

// WriteManifest writes doc to path
func WriteManifest(path string, doc *Document) error {
	return manifest.Write(path, doc)
}
