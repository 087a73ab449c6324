// internal/cli/install.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	lfx2 "github.com/latencyflex/lfx2-install"
)

func newInstallCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the layer library and manifest",
		Long: `Copy the layer library to {destdir}{prefix}/liblatencyflex2_layer.so and write
{destdir}{prefix}/share/vulkan/implicit_layer.d/lfx2.json.

This is also what lfx2-install does when run without a command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts)
		},
	}
}

func runInstall(cmd *cobra.Command, opts *options) error {
	installer := lfx2.New(opts.config, opts.logger)

	result, err := installer.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.DryRun {
		fmt.Fprintf(out, "Would install %s\n", result.Layout.LibraryPath)
		fmt.Fprintf(out, "Would write %s\n", result.Layout.ManifestPath)
		return nil
	}

	fmt.Fprintf(out, "✓ Installed %s (%d bytes)\n", result.Layout.LibraryPath, result.BytesCopied)
	fmt.Fprintf(out, "✓ Wrote %s\n", result.Layout.ManifestPath)
	return nil
}
