package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/picogrid/planner-tuning/pkg/config"
	"github.com/picogrid/planner-tuning/pkg/logger"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage planner-tune settings",
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the defaults",
	RunE:  initSettings,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved settings",
	RunE:  showSettings,
}

func init() {
	settingsInitCmd.Flags().Bool("force", false, "overwrite an existing settings file")

	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsShowCmd)
}

func initSettings(cmd *cobra.Command, _ []string) error {
	path := cfgFile
	if path == "" {
		var err error
		if path, err = config.SettingsPath(); err != nil {
			return err
		}
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists; pass --force to overwrite", path)
	}

	if err := config.SaveSettings(path, config.DefaultSettings()); err != nil {
		return err
	}

	logger.Successf("Wrote settings to %s", path)
	return nil
}

func showSettings(_ *cobra.Command, _ []string) error {
	settings, err := config.FromViper(viper.GetViper())
	if err != nil {
		return err
	}

	if used := viper.ConfigFileUsed(); used != "" {
		logger.LogKeyValue("Settings file", used)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	fmt.Print(string(data))
	return nil
}
