package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/picogrid/planner-tuning/pkg/config"
	"github.com/picogrid/planner-tuning/pkg/logger"
	"github.com/picogrid/planner-tuning/pkg/plannerconfig"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "planner-tune",
	Short: "Path planner parameter editor",
	Long: `planner-tune views and edits the tuning parameters of the simulator's
path planner. Edits are persisted between sessions and can be reset to the
factory defaults at any time; export prints the full set the planner consumes.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is $HOME/.planner-tuning/config.yaml)")
	rootCmd.PersistentFlags().String("storage", "file", "where edits are saved (file, sqlite, memory)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for saved edits (default is $HOME/.planner-tuning)")
	rootCmd.PersistentFlags().String("locale", "en", "parameter label language (en, zh)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	for flag, key := range map[string]string{
		"storage":   "storage",
		"data-dir":  "data_dir",
		"locale":    "locale",
		"log-level": "log_level",
		"no-color":  "no_color",
	} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}

	// Add commands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(settingsCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		viper.AddConfigPath("$HOME/.planner-tuning")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// PLANNER_STORAGE, PLANNER_VEHICLE_WHEEL_BASE, ...
	viper.SetEnvPrefix("planner")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		logger.Debugf("Using settings file %s", viper.ConfigFileUsed())
	}

	logger.SetLevel(logger.ParseLevel(viper.GetString("log_level")))
	logger.SetNoColor(viper.GetBool("no_color"))
}

// openEditor builds an editor from the resolved settings. The returned close
// function releases the storage backend.
func openEditor(ctx context.Context, view plannerconfig.View) (*plannerconfig.Editor, func(), error) {
	settings, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}

	store, err := settings.OpenStore()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}
	closeStore := func() {
		if c, ok := store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				logger.Warnf("Failed to close storage: %v", err)
			}
		}
	}

	editor, err := plannerconfig.New(ctx, plannerconfig.Options{
		Vehicle: settings.Vehicle,
		Store:   store,
		View:    view,
		Locale:  settings.Locale,
		Logger:  logger.Default(),
	})
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	return editor, closeStore, nil
}
