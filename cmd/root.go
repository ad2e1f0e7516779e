package cmd

import (
	"fmt"

	"github.com/magmast/sq/internal/config"
	"github.com/magmast/sq/internal/state"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:           "sq",
		Short:         "Square numbers, one at a time or a whole sequence at once",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			lvl, err := cfg.Level()
			if err != nil {
				return err
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(lvl)

			log.Debug().Str("strategy", cfg.Strategy).Str("level", lvl.String()).Msg("loaded config")
			cmd.SetContext(state.Set(cmd.Context(), state.New(cfg)))

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default $XDG_CONFIG_HOME/"+config.RelPath+")")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newSquareCmd(), newApplyCmd(), newDemoCmd())

	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root command")
	}
}
