// internal/cli/root.go
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/latencyflex/lfx2-install/pkg/core"
)

// options collects the persistent flags shared by every command
type options struct {
	cfgFile string
	prefix  string
	destdir string
	source  string
	sha256  string
	debug   bool
	dryRun  bool

	config *core.InstallConfig
	logger *log.Logger
}

// Execute executes the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Without a subcommand it installs.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "lfx2-install",
		Short: "Install the LatencyFleX 2 Vulkan layer",
		Long: `lfx2-install - LatencyFleX 2 layer installer

Copies liblatencyflex2_layer.so under the prefix and writes the implicit
layer manifest the Vulkan loader reads from share/vulkan/implicit_layer.d.

Examples:
  lfx2-install
  lfx2-install --prefix=/usr/local
  lfx2-install --prefix=/usr --destdir="$pkgdir"`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/lfx2-install/config.yaml)")
	flags.StringVar(&opts.prefix, "prefix", core.DefaultPrefix, "root under which the library is installed and recorded")
	flags.StringVar(&opts.destdir, "destdir", "", "staging root prepended to written paths, never recorded")
	flags.StringVar(&opts.source, "source", core.DefaultSource, "layer library to install (.so, .xz, .nar or .nar.xz)")
	flags.StringVar(&opts.sha256, "sha256", "", "expected sha256 of the library, hex or nix-base32")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "resolve and validate without writing files")

	rootCmd.AddCommand(newInstallCmd(opts))
	rootCmd.AddCommand(newPathsCmd(opts))
	rootCmd.AddCommand(newManifestCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load reads the config file and overrides it with flags set on the command line
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := core.LoadConfig(o.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("prefix") {
		cfg.Prefix = o.prefix
	}
	if flags.Changed("destdir") {
		cfg.DestDir = o.destdir
	}
	if flags.Changed("source") {
		cfg.Source = o.source
	}
	if flags.Changed("sha256") {
		cfg.SHA256 = o.sha256
	}
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = o.dryRun
	}

	o.config = cfg
	o.logger = newLogger(cmd.ErrOrStderr(), cfg.Debug)
	o.logger.Debug("configuration loaded",
		"prefix", cfg.Prefix,
		"destdir", cfg.DestDir,
		"source", cfg.Source)
	return nil
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "lfx2-install",
		Level:  level,
	})
}
