// pkg/manifest/types.go
package manifest

// Document is a Vulkan loader layer manifest. Field order is the serialized
// key order.
type Document struct {
	FileFormatVersion string `json:"file_format_version" validate:"required"`
	Layer             Layer  `json:"layer"`
}

// Layer describes one layer to the loader
type Layer struct {
	Name                  string            `json:"name" validate:"required,startswith=VK_LAYER_"`
	Type                  string            `json:"type" validate:"required,oneof=INSTANCE GLOBAL"`
	LibraryPath           string            `json:"library_path" validate:"required"`
	LibraryArch           string            `json:"library_arch,omitempty" validate:"omitempty,oneof=32 64"`
	APIVersion            string            `json:"api_version" validate:"required"`
	ImplementationVersion string            `json:"implementation_version" validate:"required"`
	Description           string            `json:"description" validate:"required"`
	Functions             map[string]string `json:"functions" validate:"required"`
	InstanceExtensions    []Extension       `json:"instance_extensions" validate:"required,dive"`
	DeviceExtensions      []DeviceExtension `json:"device_extensions" validate:"required,dive"`
	EnableEnvironment     map[string]string `json:"enable_environment" validate:"required,min=1"`
	DisableEnvironment    map[string]string `json:"disable_environment" validate:"required,min=1"`
}

// Extension is an instance extension exposed by the layer
type Extension struct {
	Name        string `json:"name" validate:"required"`
	SpecVersion string `json:"spec_version" validate:"required"`
}

// DeviceExtension is a device extension and the entry points implementing it
type DeviceExtension struct {
	Name        string   `json:"name" validate:"required"`
	SpecVersion string   `json:"spec_version" validate:"required"`
	Entrypoints []string `json:"entrypoints" validate:"required,min=1,dive,required"`
}
