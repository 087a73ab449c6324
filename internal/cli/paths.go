// internal/cli/paths.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latencyflex/lfx2-install/pkg/paths"
)

func newPathsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Show where files would be installed",
		Long:  `Print the write locations and the paths recorded in the manifest. Nothing is read or written.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout := paths.Resolve(opts.config)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Library:  %s\n", layout.LibraryPath)
			fmt.Fprintf(out, "Manifest: %s\n", layout.ManifestPath)
			if opts.config.DestDir != "" {
				fmt.Fprintf(out, "\nRecorded paths (destdir %s stripped):\n", opts.config.DestDir)
				fmt.Fprintf(out, "  Library:  %s\n", layout.LibraryRecordedPath)
				fmt.Fprintf(out, "  Manifest: %s\n", layout.ManifestRecordedPath)
			}
			return nil
		},
	}
}
