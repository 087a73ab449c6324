// internal/cli/inspect.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/latencyflex/lfx2-install/pkg/manifest"
	"github.com/latencyflex/lfx2-install/pkg/paths"
)

func newInspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [manifest]",
		Short: "Show an installed layer manifest",
		Long: `Display what the Vulkan loader will read from an installed manifest.
Defaults to the manifest location for the current prefix and destdir.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := paths.Resolve(opts.config).ManifestPath
			if len(args) == 1 {
				path = args[0]
			}

			s, err := manifest.ReadSummary(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Layer:       %s (%s)\n", s.Name, s.Type)
			fmt.Fprintf(out, "Format:      %s\n", s.FileFormatVersion)
			fmt.Fprintf(out, "Library:     %s\n", s.LibraryPath)
			fmt.Fprintf(out, "API version: %s\n", s.APIVersion)
			if len(s.DeviceExtensions) > 0 {
				fmt.Fprintf(out, "Device extensions: %s\n", strings.Join(s.DeviceExtensions, ", "))
			}
			for _, ep := range s.Entrypoints {
				fmt.Fprintf(out, "  %s\n", ep)
			}
			if len(s.EnableEnvironment) > 0 {
				fmt.Fprintf(out, "Enabled by:  %s\n", strings.Join(s.EnableEnvironment, " "))
			}
			return nil
		},
	}
}
