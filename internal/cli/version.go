// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latencyflex/lfx2-install/pkg/manifest"
)

const version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lfx2-install version %s\n", version)
			fmt.Fprintf(out, "Layer %s, implementation %s, Vulkan %s\n",
				manifest.LayerName, manifest.ImplementationVersion, manifest.APIVersion)
		},
	}
}
