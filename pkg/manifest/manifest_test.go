package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/latencyflex/lfx2-install/pkg/core"
)

var wantEntrypoints = []string{
	"vkGetLatencyTimingsNV",
	"vkLatencySleepNV",
	"vkQueueNotifyOutOfBandNV",
	"vkSetLatencyMarkerNV",
	"vkSetLatencySleepModeNV",
}

func TestEncodeFields(t *testing.T) {
	data, err := Encode(Build("/usr/liblatencyflex2_layer.so"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !gjson.ValidBytes(data) {
		t.Fatalf("output is not valid JSON:\n%s", data)
	}

	want := map[string]string{
		"file_format_version":                    "1.2.1",
		"layer.name":                             "VK_LAYER_LFX_latencyflex2",
		"layer.type":                             "INSTANCE",
		"layer.library_path":                     "/usr/liblatencyflex2_layer.so",
		"layer.library_arch":                     "64",
		"layer.api_version":                      "1.3.268",
		"layer.implementation_version":           "2",
		"layer.description":                      "LatencyFleX (TM) latency reduction middleware",
		"layer.device_extensions.0.name":         "VK_NV_low_latency2",
		"layer.device_extensions.0.spec_version": "1",
	}
	for path, value := range want {
		got := gjson.GetBytes(data, path)
		if got.Type != gjson.String {
			t.Errorf("%s: expected a JSON string, got %s", path, got.Type)
		}
		if got.String() != value {
			t.Errorf("%s = %q, want %q", path, got.String(), value)
		}
	}

	if v := gjson.GetBytes(data, "layer.enable_environment."+EnableEnvVar).String(); v != "1" {
		t.Errorf("enable_environment.%s = %q, want \"1\"", EnableEnvVar, v)
	}
	if v := gjson.GetBytes(data, "layer.disable_environment."+DisableEnvVar).String(); v != "1" {
		t.Errorf("disable_environment.%s = %q, want \"1\"", DisableEnvVar, v)
	}

	if fns := gjson.GetBytes(data, "layer.functions"); !fns.IsObject() || len(fns.Map()) != 0 {
		t.Errorf("functions = %s, want {}", fns.Raw)
	}
	if exts := gjson.GetBytes(data, "layer.instance_extensions"); !exts.IsArray() || len(exts.Array()) != 0 {
		t.Errorf("instance_extensions = %s, want []", exts.Raw)
	}
	if n := gjson.GetBytes(data, "layer.device_extensions.#").Int(); n != 1 {
		t.Errorf("device_extensions has %d entries, want 1", n)
	}

	var entrypoints []string
	for _, ep := range gjson.GetBytes(data, "layer.device_extensions.0.entrypoints").Array() {
		entrypoints = append(entrypoints, ep.String())
	}
	if !reflect.DeepEqual(entrypoints, wantEntrypoints) {
		t.Errorf("entrypoints = %v, want %v", entrypoints, wantEntrypoints)
	}

	if !strings.HasSuffix(string(data), "}\n") {
		t.Errorf("expected trailing newline after the document")
	}
}

func TestEncodeKeyOrder(t *testing.T) {
	data, err := Encode(Build("/usr/liblatencyflex2_layer.so"))
	if err != nil {
		t.Fatal(err)
	}

	var keys []string
	gjson.GetBytes(data, "layer").ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})

	want := []string{
		"name", "type", "library_path", "library_arch", "api_version",
		"implementation_version", "description", "functions",
		"instance_extensions", "device_extensions",
		"enable_environment", "disable_environment",
	}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("layer keys = %v, want %v", keys, want)
	}

	again, err := Encode(Build("/usr/liblatencyflex2_layer.so"))
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(data) {
		t.Error("encoding the same manifest twice produced different output")
	}
}

func TestBuildDoesNotShareState(t *testing.T) {
	first := Build("/usr/liblatencyflex2_layer.so")
	first.Layer.DeviceExtensions[0].Entrypoints[0] = "vkTampered"
	first.Layer.EnableEnvironment["OTHER"] = "1"

	second := Build("/opt/liblatencyflex2_layer.so")
	if got := second.Layer.DeviceExtensions[0].Entrypoints; !reflect.DeepEqual(got, wantEntrypoints) {
		t.Errorf("entrypoints leaked between builds: %v", got)
	}
	if len(second.Layer.EnableEnvironment) != 1 {
		t.Errorf("enable_environment leaked between builds: %v", second.Layer.EnableEnvironment)
	}
	if second.Layer.LibraryPath != "/opt/liblatencyflex2_layer.so" {
		t.Errorf("LibraryPath = %q", second.Layer.LibraryPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Document)
	}{
		{name: "missing library path", mutate: func(d *Document) { d.Layer.LibraryPath = "" }},
		{name: "missing format version", mutate: func(d *Document) { d.FileFormatVersion = "" }},
		{name: "bad layer type", mutate: func(d *Document) { d.Layer.Type = "DEVICE" }},
		{name: "bad layer name", mutate: func(d *Document) { d.Layer.Name = "latencyflex" }},
		{name: "nil functions", mutate: func(d *Document) { d.Layer.Functions = nil }},
		{name: "empty entrypoint", mutate: func(d *Document) { d.Layer.DeviceExtensions[0].Entrypoints[2] = "" }},
		{name: "no enable variable", mutate: func(d *Document) { d.Layer.EnableEnvironment = map[string]string{} }},
	}

	if err := Validate(Build("/usr/liblatencyflex2_layer.so")); err != nil {
		t.Fatalf("built manifest should validate: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Build("/usr/liblatencyflex2_layer.so")
			tt.mutate(doc)
			if err := Validate(doc); !errors.Is(err, core.ErrInvalidManifest) {
				t.Errorf("expected ErrInvalidManifest, got %v", err)
			}
		})
	}
}

func TestWriteAndReadSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usr", "share", "vulkan", "implicit_layer.d", "lfx2.json")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("stale content that is longer than nothing"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Write(path, Build("/usr/local/liblatencyflex2_layer.so")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	s, err := ReadSummary(path)
	if err != nil {
		t.Fatalf("ReadSummary: %v", err)
	}
	if s.LibraryPath != "/usr/local/liblatencyflex2_layer.so" {
		t.Errorf("LibraryPath = %q", s.LibraryPath)
	}
	if s.Name != LayerName || s.Type != LayerType || s.APIVersion != APIVersion {
		t.Errorf("unexpected summary %+v", s)
	}
	if !reflect.DeepEqual(s.DeviceExtensions, []string{LowLatency2Extension}) {
		t.Errorf("DeviceExtensions = %v", s.DeviceExtensions)
	}
	if !reflect.DeepEqual(s.Entrypoints, wantEntrypoints) {
		t.Errorf("Entrypoints = %v", s.Entrypoints)
	}
	if !reflect.DeepEqual(s.EnableEnvironment, []string{EnableEnvVar + "=1"}) {
		t.Errorf("EnableEnvironment = %v", s.EnableEnvironment)
	}
}

func TestWriteInvalidManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lfx2.json")

	err := Write(path, Build(""))
	var fsErr *core.FileSystemError
	if !errors.As(err, &fsErr) || fsErr.Op != "encode manifest" {
		t.Fatalf("expected encode manifest FileSystemError, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("invalid manifest was written")
	}
}

func TestSummarizeRejectsGarbage(t *testing.T) {
	for _, data := range []string{"not json", `{"file_format_version": "1.2.1"}`} {
		if _, err := Summarize([]byte(data)); !errors.Is(err, core.ErrInvalidManifest) {
			t.Errorf("Summarize(%q): expected ErrInvalidManifest, got %v", data, err)
		}
	}
}
