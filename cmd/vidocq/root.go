package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidocq/internal/config"
	"github.com/vmunix/vidocq/internal/logging"
)

var version = "dev"

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	jsonOutput bool
	configPath string
	logLevel   string
}

// env is what a command needs after config resolution.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

// load resolves the configuration and builds the logger. Logs go to the
// command's stderr so stdout stays machine-readable.
func (o *globalOptions) load(cmd *cobra.Command) (*env, error) {
	cfg, path, err := config.Resolve(o.configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewFromConfig(cfg, o.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}
	return &env{cfg: cfg, logger: logger}, nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "vidocq",
		Short: "Extract metadata from media file and release names",
		Long: `vidocq - media name metadata extraction

Reads a movie or episode file/release name and reports its title, year,
season/episode, quality, release type, codecs, container and release group.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: discovered)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level")

	root.Version = version
	root.SetVersionTemplate("vidocq {{.Version}}\n")

	root.AddCommand(
		newParseCmd(opts),
		newMatchCmd(opts),
		newCorpusCmd(opts),
		newWatchCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("vidocq %s\n", version)
		},
	}
}
