package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/materialize/internal/cli"
	"github.com/zoro11031/materialize/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show or change the optional configuration file.

Keys:
  FILE_MODE  permissions for created files (default 0644)
  DIR_MODE   permissions for created directories (default 0755)
  MANIFEST   manifest used by apply and init (default materialize.yaml)`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  showConfig,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  setConfig,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func showConfig(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSetupContext(globalOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	ctx.UI.Header("Configuration")
	ctx.UI.Infof("Configuration file: %s", ctx.Config.FilePath())

	values := ctx.Config.GetAll()
	for _, key := range config.Keys() {
		ctx.UI.Printf("  %-10s %s", key, values[key])
	}
	return nil
}

func setConfig(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSetupContext(globalOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	if err := ctx.Config.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	ctx.UI.Successf("%s=%s written to %s", args[0], args[1], ctx.Config.FilePath())
	return nil
}
