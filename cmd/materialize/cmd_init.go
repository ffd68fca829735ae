package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/materialize/internal/cli"
)

var (
	initManifest   string
	nonInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a manifest for the apply command",
	Long: `Create a new manifest, prompting for each target.

With --non-interactive an example manifest is written instead. An existing
manifest is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initManifest, "file", "f", "", "Manifest to create (default from MANIFEST config, materialize.yaml)")
	initCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Write an example manifest without prompting")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	opts := globalOpts
	opts.NonInteractive = nonInteractive

	ctx, err := cli.NewSetupContext(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	return cli.ScaffoldManifest(ctx, ctx.ManifestPath(initManifest))
}
