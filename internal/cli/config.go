package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the settings file",
	Long: `Write the current settings to the config file so they can be edited.
Defaults are written when no file exists yet. An existing file is kept
unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the loaded settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfgFile); err == nil && !configForce {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", cfgFile)
	}

	if err := config.Save(cfgFile, cfg); err != nil {
		return err
	}
	logger.Debug("saved config", "path", cfgFile)

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgFile)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:      %s\n", cfgFile)
	fmt.Fprintf(out, "Addr:      %s\n", cfg.Addr)
	if cfg.DBPath != "" {
		fmt.Fprintf(out, "Database:  %s\n", cfg.DBPath)
	}
	fmt.Fprintf(out, "Log level: %s\n", cfg.LogLevel)
	fmt.Fprintf(out, "Max moves: %d\n", cfg.MaxMoves)
	return nil
}
