// Package cli wires configuration, output and the materializer together and
// implements the operations behind each command.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/zoro11031/materialize/internal/config"
	"github.com/zoro11031/materialize/internal/materialize"
	"github.com/zoro11031/materialize/internal/system"
	"github.com/zoro11031/materialize/internal/ui"
)

// Options are the global flags shared by every command
type Options struct {
	ConfigPath     string
	Quiet          bool
	NoColor        bool
	NonInteractive bool
}

// SetupContext holds all dependencies needed for an invocation
type SetupContext struct {
	Config       *config.Config
	UI           *ui.UI
	Materializer *materialize.Materializer
	WorkDir      string
}

// NewSetupContext creates a SetupContext rooted at the current working directory
func NewSetupContext(opts Options) (*SetupContext, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return NewSetupContextAt(workDir, opts)
}

// NewSetupContextAt creates a SetupContext resolving paths against workDir
func NewSetupContextAt(workDir string, opts Options) (*SetupContext, error) {
	if opts.NoColor {
		color.NoColor = true
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultFileName
	}
	cfg := config.New(materialize.Resolve(workDir, configPath))
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	fileMode, err := cfg.Mode(config.KeyFileMode)
	if err != nil {
		return nil, err
	}
	dirMode, err := cfg.Mode(config.KeyDirMode)
	if err != nil {
		return nil, err
	}

	uiInstance := ui.New()
	uiInstance.SetQuiet(opts.Quiet)
	uiInstance.SetNonInteractive(opts.NonInteractive)

	return &SetupContext{
		Config:       cfg,
		UI:           uiInstance,
		Materializer: materialize.New(system.NewFileSystem(), uiInstance, workDir, materialize.Options{FileMode: fileMode, DirMode: dirMode}),
		WorkDir:      workDir,
	}, nil
}

// ManifestPath returns the manifest to use: the flag value if set, otherwise the configured one
func (ctx *SetupContext) ManifestPath(flagValue string) string {
	path := flagValue
	if path == "" {
		path = ctx.Config.GetOrDefault(config.KeyManifest, config.Defaults[config.KeyManifest])
	}
	return materialize.Resolve(ctx.WorkDir, path)
}
