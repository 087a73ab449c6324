// pkg/manifest/summary.go
package manifest

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/latencyflex/lfx2-install/pkg/core"
)

// Summary is what an installed manifest tells the loader about the layer
type Summary struct {
	FileFormatVersion string
	Name              string
	Type              string
	LibraryPath       string
	APIVersion        string
	DeviceExtensions  []string
	Entrypoints       []string
	EnableEnvironment []string
}

// Summarize extracts a Summary from raw manifest JSON
func Summarize(data []byte) (*Summary, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", core.ErrInvalidManifest)
	}

	doc := gjson.ParseBytes(data)
	layer := doc.Get("layer")
	if !layer.Exists() {
		return nil, fmt.Errorf("%w: no layer object", core.ErrInvalidManifest)
	}

	s := &Summary{
		FileFormatVersion: doc.Get("file_format_version").String(),
		Name:              layer.Get("name").String(),
		Type:              layer.Get("type").String(),
		LibraryPath:       layer.Get("library_path").String(),
		APIVersion:        layer.Get("api_version").String(),
	}

	for _, name := range layer.Get("device_extensions.#.name").Array() {
		s.DeviceExtensions = append(s.DeviceExtensions, name.String())
	}
	for _, ep := range layer.Get("device_extensions.#.entrypoints|@flatten").Array() {
		s.Entrypoints = append(s.Entrypoints, ep.String())
	}
	layer.Get("enable_environment").ForEach(func(key, value gjson.Result) bool {
		s.EnableEnvironment = append(s.EnableEnvironment, key.String()+"="+value.String())
		return true
	})

	return s, nil
}

// ReadSummary reads and summarizes the manifest at path
func ReadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.NewFileSystemError("read manifest", path, err)
	}
	s, err := Summarize(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
