package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/materialize/internal/cli"
	"github.com/zoro11031/materialize/internal/materialize"
)

var ensurePathCmd = &cobra.Command{
	Use:   "ensure-path PATH",
	Short: "Create a directory or empty file if it does not exist",
	Long: `Create PATH if nothing exists there yet.

A PATH ending in a path separator becomes a directory, anything else an empty
file. Missing parent directories are created. Exactly one argument is accepted.
Flags must come before PATH.`,
	Args: targetArgs(1, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := materialize.NewTarget(args[0])
		if err != nil {
			return err
		}
		return runEnsure(target)
	},
}

var ensureFileCmd = &cobra.Command{
	Use:   "ensure-file PATH CONTENT",
	Short: "Create a file holding CONTENT if it does not exist",
	Long: `Create the file PATH holding CONTENT verbatim if nothing exists there yet.

An existing file is never rewritten, even when its content differs. If PATH ends
in a path separator a directory is created and CONTENT is ignored. Exactly two
arguments are accepted; pass "" for an empty file. Flags must come before PATH,
so CONTENT may start with "-".`,
	Args: targetArgs(2, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := materialize.NewFileTarget(args[0], args[1])
		if err != nil {
			return err
		}
		return runEnsure(target)
	},
}

func init() {
	rootCmd.AddCommand(ensurePathCmd)
	rootCmd.AddCommand(ensureFileCmd)
	literalArgs(ensurePathCmd)
	literalArgs(ensureFileCmd)
}

func runEnsure(target materialize.Target) error {
	ctx, err := cli.NewSetupContext(globalOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return cli.RunTarget(ctx, target)
}
