package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/zoro11031/materialize/internal/cli"
	"github.com/zoro11031/materialize/internal/materialize"
	"github.com/zoro11031/materialize/internal/ui"
	"github.com/zoro11031/materialize/pkg/version"
)

const (
	exitFailure           = 1
	exitInvalidInvocation = 2
)

var globalOpts cli.Options

var rootCmd = &cobra.Command{
	Use:   "materialize PATH [CONTENT]",
	Short: "Create a file or directory during a build without overwriting anything",
	Long: `Ensure a file or directory exists before the build continues.

PATH is resolved against the directory the build runs in; absolute paths are
used as-is. A PATH ending in a path separator is created as a directory,
anything else as a file holding CONTENT verbatim (empty if omitted). Missing
parent directories are created. Nothing that already exists is modified,
including a symlink whose target is missing: the link itself counts as an
existing node and nothing is created through it.

Flags must come before PATH; everything after PATH is taken literally, so
CONTENT may start with "-". Use "--" when PATH itself starts with "-".

Typical use from Go sources:

  //go:generate go run github.com/zoro11031/materialize/cmd/materialize -- migrations/
  //go:generate go run github.com/zoro11031/materialize/cmd/materialize -- migrations/users.sql "create table users (id serial);"`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	Args:          targetArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTarget(args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigPath, "config", "", "Config file (default .materialize.conf in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Quiet, "quiet", "q", false, "Only print warnings and errors")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.SetFlagErrorFunc(flagError)
	literalArgs(rootCmd)
}

// literalArgs stops flag parsing at the first positional argument so CONTENT
// starting with "-" is kept verbatim
func literalArgs(cmd *cobra.Command) {
	cmd.Flags().SetInterspersed(false)
}

// flagError reports unknown or malformed flags as malformed invocations
func flagError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%s: %w: %v", cmd.CommandPath(), materialize.ErrMalformedInvocation, err)
}

// targetArgs reports arity errors as malformed invocations
func targetArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := materialize.CheckArity(args, min, max); err != nil {
			return fmt.Errorf("%s: %w", cmd.CommandPath(), err)
		}
		return nil
	}
}

func runTarget(args []string) error {
	target, err := materialize.ParseArgs(args)
	if err != nil {
		return err
	}

	ctx, err := cli.NewSetupContext(globalOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	return cli.RunTarget(ctx, target)
}

func exitCode(err error) int {
	if errors.Is(err, materialize.ErrMalformedInvocation) {
		return exitInvalidInvocation
	}
	return exitFailure
}

// reportError prints err and returns the matching exit code
func reportError(out *ui.UI, err error) int {
	out.Errorf("%v", err)
	return exitCode(err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if globalOpts.NoColor {
			color.NoColor = true
		}
		os.Exit(reportError(ui.New(), err))
	}
}
