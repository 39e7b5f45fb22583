// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/GoBulma/GoBulma/internal/config"
)

var configPath string // directory holding main.toml

var rootCmd = &cobra.Command{
	Use:   "gobulma",
	Short: "GoBulma renders Bulma components from widget documents",
	Long: `GoBulma renders Bulma dropdowns, navbars and messages on the server.
Widget documents are YAML files describing one widget and its menu items;
they can be rendered on the command line or browsed with the preview server.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath,
		"directory of the main.toml configuration file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
