// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"relhook/internal/config"

	"github.com/spf13/cobra"
)

// configCmd is the `relhook config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage relhook configuration",
	Long: `Manage relhook configuration.

Configuration is stored in:
  - Linux: ~/.config/relhook/config.cue
  - macOS: ~/Library/Application Support/relhook/config.cue
  - Windows: %APPDATA%\relhook\config.cue

The APP_DIR environment variable overrides app_dir from any config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})
}

// showConfig prints the resolved configuration in CUE form, after the
// APP_DIR override has been applied.
func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println(TitleStyle.Render("Current configuration"))
	fmt.Print(config.GenerateCUE(cfg))
	return nil
}

// showConfigPath prints where the config file is expected.
func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

// initConfigFile writes a default config file if none exists.
func initConfigFile() error {
	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(SuccessStyle.Render("✓ ") + "Config ready at " + filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
