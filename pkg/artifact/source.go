// pkg/artifact/source.go
package artifact

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/ulikunitz/xz"
	"zombiezen.com/go/nix/nar"

	"github.com/latencyflex/lfx2-install/pkg/core"
)

// DetectKind infers the packing of a source from its file name
func DetectKind(name string) Kind {
	switch {
	case strings.HasSuffix(name, narExt+xzExt):
		return KindNARXZ
	case strings.HasSuffix(name, narExt):
		return KindNAR
	case strings.HasSuffix(name, xzExt):
		return KindXZ
	default:
		return KindPlain
	}
}

// Source is an opened artifact. Reading it yields the layer library bytes.
type Source struct {
	Path string
	Kind Kind

	file   *os.File
	reader io.Reader
}

// Open opens src and positions the returned Source at the start of the
// library bytes. libraryName selects the entry inside a Nix archive whose root
// is a directory.
func Open(src, libraryName string) (*Source, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, openError(src, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, openError(src, err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, core.NewFileSystemError("open source", src,
			fmt.Errorf("%w: mode %s", core.ErrNotRegularFile, info.Mode().Type()))
	}

	s := &Source{Path: src, Kind: DetectKind(src), file: f}

	var r io.Reader = bufio.NewReader(f)
	if s.Kind == KindXZ || s.Kind == KindNARXZ {
		xzReader, err := xz.NewReader(r)
		if err != nil {
			f.Close()
			return nil, core.NewFileSystemError("read source", src, fmt.Errorf("creating xz reader: %w", err))
		}
		r = xzReader
	}

	if s.Kind == KindNAR || s.Kind == KindNARXZ {
		entry, err := findLibrary(nar.NewReader(r), libraryName)
		if err != nil {
			f.Close()
			return nil, core.NewFileSystemError("read source", src, err)
		}
		r = entry
	}

	s.reader = r
	return s, nil
}

func (s *Source) Read(p []byte) (int, error) {
	n, err := s.reader.Read(p)
	if err != nil && err != io.EOF {
		return n, core.NewFileSystemError("read source", s.Path, err)
	}
	return n, err
}

// Close releases the underlying file
func (s *Source) Close() error {
	return s.file.Close()
}

// findLibrary advances nr to the layer library. A NAR whose root is a single
// regular file is taken as the library itself.
func findLibrary(nr *nar.Reader, libraryName string) (io.Reader, error) {
	for {
		hdr, err := nr.Next()
		if err == io.EOF {
			return nil, core.ErrNoLibraryInArchive
		}
		if err != nil {
			return nil, fmt.Errorf("reading NAR entry: %w", err)
		}

		if hdr.Mode.Type() != 0 {
			continue
		}
		if isRoot(hdr.Path) || path.Base(hdr.Path) == libraryName {
			return nr, nil
		}
	}
}

func isRoot(p string) bool {
	return p == "" || p == "." || p == "/"
}

func openError(src string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		err = fmt.Errorf("%w: %w", core.ErrArtifactNotFound, err)
	}
	return core.NewFileSystemError("open source", src, err)
}
