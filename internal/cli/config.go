// internal/cli/config.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/latencyflex/lfx2-install/pkg/core"
)

func newConfigCmd(opts *options) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging the config file and flags.
With --save, store it in the config file so later runs pick it up.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if save {
				path := opts.cfgFile
				if path == "" {
					path = core.DefaultConfigPath()
				}
				if err := core.SaveConfig(opts.config, path); err != nil {
					return err
				}
				opts.logger.Info("saved config", "path", path)
			}

			data, err := yaml.Marshal(opts.config)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write the effective configuration to the config file")
	return cmd
}
