// pkg/manifest/constants.go
package manifest

const (
	FileFormatVersion = "1.2.1"

	LayerName             = "VK_LAYER_LFX_latencyflex2"
	LayerType             = "INSTANCE"
	LibraryArch           = "64"
	APIVersion            = "1.3.268"
	ImplementationVersion = "2"
	Description           = "LatencyFleX (TM) latency reduction middleware"

	LowLatency2Extension   = "VK_NV_low_latency2"
	LowLatency2SpecVersion = "1"

	EnableEnvVar  = "ENABLE_LAYER_LFX_latencyflex2"
	DisableEnvVar = "DISABLE_LAYER_LFX_latencyflex2"
)

// LowLatency2Entrypoints returns the commands the layer implements for
// VK_NV_low_latency2, in manifest order.
func LowLatency2Entrypoints() []string {
	return []string{
		"vkGetLatencyTimingsNV",
		"vkLatencySleepNV",
		"vkQueueNotifyOutOfBandNV",
		"vkSetLatencyMarkerNV",
		"vkSetLatencySleepModeNV",
	}
}

// LatencyFleX2 returns the fixed part of the layer description. Every call
// builds fresh maps and slices, so callers cannot alter the shared values.
func LatencyFleX2() Layer {
	return Layer{
		Name:                  LayerName,
		Type:                  LayerType,
		LibraryArch:           LibraryArch,
		APIVersion:            APIVersion,
		ImplementationVersion: ImplementationVersion,
		Description:           Description,
		Functions:             map[string]string{},
		InstanceExtensions:    []Extension{},
		DeviceExtensions: []DeviceExtension{
			{
				Name:        LowLatency2Extension,
				SpecVersion: LowLatency2SpecVersion,
				Entrypoints: LowLatency2Entrypoints(),
			},
		},
		EnableEnvironment:  map[string]string{EnableEnvVar: "1"},
		DisableEnvironment: map[string]string{DisableEnvVar: "1"},
	}
}
