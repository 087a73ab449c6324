// pkg/manifest/manifest.go
package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/pretty"

	"github.com/latencyflex/lfx2-install/pkg/core"
	"github.com/latencyflex/lfx2-install/pkg/fsutil"
)

var validate = validator.New()

var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "    ",
	SortKeys: false,
}

// Build returns the manifest for a library installed at libraryPath. The path
// must be the one the loader will see, not the staging location.
func Build(libraryPath string) *Document {
	layer := LatencyFleX2()
	layer.LibraryPath = libraryPath

	return &Document{
		FileFormatVersion: FileFormatVersion,
		Layer:             layer,
	}
}

// Validate checks the fields the loader requires are present
func Validate(doc *Document) error {
	if err := validate.Struct(doc); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("%w: %v", core.ErrInvalidManifest, err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
		}
		return fmt.Errorf("%w: %s", core.ErrInvalidManifest, strings.Join(msgs, "; "))
	}
	return nil
}

// Encode validates doc and renders it as indented JSON ending in a newline
func Encode(doc *Document) ([]byte, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}

	return pretty.PrettyOptions(data, prettyOptions), nil
}

// Write encodes doc and writes it to path, creating parent directories and
// replacing any existing file.
func Write(path string, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return core.NewFileSystemError("encode manifest", path, err)
	}
	return fsutil.WriteFile(path, data, fsutil.FileMode)
}
