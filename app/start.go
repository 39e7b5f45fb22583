package app

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/GoBulma/GoBulma/internal/config"
	"github.com/GoBulma/GoBulma/internal/daemon"
	"github.com/GoBulma/GoBulma/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	cfg     config.Config
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the widget preview web service",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			return errors.Wrap(logger.Init(cfg.Log), "failed to init logger")
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)
