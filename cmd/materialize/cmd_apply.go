package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/materialize/internal/cli"
)

var applyManifest string

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Materialize every target listed in a manifest",
	Long: `Materialize the targets of a YAML manifest in order.

Each target follows the same rules as the root command. Processing stops at the
first target that cannot be created; targets before it stay in place.

Manifest format:

  targets:
    - path: migrations/users.sql
      content: |
        create table if not exists users (id serial);
    - path: logs/`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applyManifest, "file", "f", "", "Manifest to apply (default from MANIFEST config, materialize.yaml)")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSetupContext(globalOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	return cli.RunManifest(ctx, ctx.ManifestPath(applyManifest))
}
