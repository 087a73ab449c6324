// internal/cli/manifest.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/latencyflex/lfx2-install/pkg/manifest"
	"github.com/latencyflex/lfx2-install/pkg/paths"
)

func newManifestCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Print the layer manifest for the current prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout := paths.Resolve(opts.config)
			data, err := manifest.Encode(manifest.Build(layout.LibraryRecordedPath))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
