// Package cli wires the sdcv command surface: flag parsing, config and
// path resolution, dictionary selection, and session dispatch.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/NouGithub/sdcv/internal/version"
	"github.com/NouGithub/sdcv/pkg/config"
	"github.com/NouGithub/sdcv/pkg/discovery"
	"github.com/NouGithub/sdcv/pkg/errors"
	"github.com/NouGithub/sdcv/pkg/library"
	"github.com/NouGithub/sdcv/pkg/logging"
	"github.com/NouGithub/sdcv/pkg/paths"
	"github.com/NouGithub/sdcv/pkg/readline"
	"github.com/NouGithub/sdcv/pkg/selection"
	"github.com/NouGithub/sdcv/pkg/session"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		listDicts      bool
		useDicts       []string
		nonInteractive bool
		utf8Output     bool
		utf8Input      bool
		dataDir        string
		color          bool
		verbosity      int
	)

	rootCmd := &cobra.Command{
		Use:   "sdcv [words...]",
		Short: "Console version of StarDict",
		Long: `sdcv is a console dictionary client. Positional arguments are looked
up as phrases; without arguments it enters an interactive prompt loop.`,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags outrank the config file for boolean toggles too, but
			// an unset flag falls back to the configured value.
			flags := cmd.Flags()
			if !flags.Changed("color") {
				color = cfg.Color
			}
			if !flags.Changed("utf8-output") {
				utf8Output = cfg.Utf8Output
			}
			if !flags.Changed("utf8-input") {
				utf8Input = cfg.Utf8Input
			}

			p, err := paths.New(paths.Options{
				DataDir:       dataDir,
				ConfigDataDir: cfg.DataDir,
			})
			if err != nil {
				return err
			}

			mode := session.Decide(listDicts, nonInteractive, args)

			disp := &session.Dispatcher{
				NonInteractive: nonInteractive,
				Out:            cmd.OutOrStdout(),
				Diag:           cmd.ErrOrStderr(),
			}

			// List mode never consults selection state; it re-scans and
			// prints everything it can parse.
			if mode == session.ModeListDicts {
				return disp.Run(mode, nil, p.DirectorySet())
			}

			m := discovery.Discover(p.DirectorySet())
			plan, err := selection.Resolve(m, useDicts, p.OrderingFile())
			if err != nil {
				// Stale or inconsistent recorded state; abort without
				// applying any partial selection.
				return errors.Wrap(err, errors.ErrInternal, "internal error")
			}

			if err := p.EnsureConfDir(); err != nil {
				log.Warn().Err(err).Msg("cannot create configuration directory")
			}

			lib := library.New(library.Options{
				Utf8Input:  utf8Input,
				Utf8Output: utf8Output,
				Colorize:   color,
				Out:        cmd.OutOrStdout(),
			})
			if err := lib.Load(p.DirectorySet(), plan.Order, plan.Disable); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "internal error")
			}

			disp.Library = lib
			disp.Reader = readline.New(p.HistoryFile())
			return disp.Run(mode, args, p.DirectorySet())
		},
	}

	rootCmd.SetVersionTemplate("Console version of Stardict, version {{.Version}}\n")

	flags := rootCmd.Flags()
	flags.BoolVarP(&listDicts, "list-dicts", "l", false, "display list of available dictionaries and exit")
	flags.StringArrayVarP(&useDicts, "use-dict", "u", nil, "for search use only dictionary with this bookname")
	flags.BoolVarP(&nonInteractive, "non-interactive", "n", false, "for use in scripts")
	flags.BoolVarP(&utf8Output, "utf8-output", "0", false, "output must be in utf8")
	flags.BoolVarP(&utf8Input, "utf8-input", "1", false, "input of sdcv in utf8")
	flags.StringVarP(&dataDir, "data-dir", "2", "", "use this directory as path to stardict data directory")
	flags.BoolVarP(&color, "color", "c", false, "colorize the output")
	rootCmd.PersistentFlags().CountVar(&verbosity, "verbose", "Increase verbosity (--verbose INFO, --verbose --verbose DEBUG)")

	return rootCmd
}
