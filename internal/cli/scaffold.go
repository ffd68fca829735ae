package cli

import (
	"fmt"
	"os"

	"github.com/zoro11031/materialize/internal/common"
	"github.com/zoro11031/materialize/internal/manifest"
	"github.com/zoro11031/materialize/internal/materialize"
)

// ScaffoldManifest writes a new manifest at manifestPath.
// The manifest goes through the materializer, so an existing one is never overwritten.
func ScaffoldManifest(ctx *SetupContext, manifestPath string) error {
	if _, err := os.Lstat(manifestPath); err == nil {
		ctx.UI.Warningf("%s already exists, not overwriting it", manifestPath)
		return nil
	}

	var (
		m   *manifest.Manifest
		err error
	)
	if ctx.UI.IsNonInteractive() {
		m = exampleManifest()
	} else {
		m, err = promptManifest(ctx)
		if err != nil {
			return err
		}
	}

	data, err := m.Marshal()
	if err != nil {
		return err
	}

	target, err := materialize.NewFileTarget(manifestPath, string(data))
	if err != nil {
		return err
	}

	if _, err := ctx.Materializer.Materialize(target); err != nil {
		return err
	}

	ctx.UI.Infof("Run 'materialize apply -f %s' from your build to create %d target(s)", manifestPath, len(m.Entries))
	return nil
}

func exampleManifest() *manifest.Manifest {
	readme := "Files in this directory are created by materialize and never overwritten.\n"
	m := &manifest.Manifest{}
	m.Add("generated/", nil)
	m.Add("generated/README.md", &readme)
	return m
}

func promptManifest(ctx *SetupContext) (*manifest.Manifest, error) {
	ctx.UI.Header("New materialize manifest")
	ctx.UI.Info("End a path with a separator to create a directory")

	m := &manifest.Manifest{}
	for {
		path, err := ctx.UI.PromptInputWithValidation("Path to create", "", common.ValidateTargetPath)
		if err != nil {
			return nil, fmt.Errorf("failed to prompt for path: %w", err)
		}

		target, err := materialize.NewTarget(path)
		if err != nil {
			return nil, err
		}

		var content *string
		if target.Kind == materialize.KindFile {
			withContent, err := ctx.UI.PromptYesNo("Write content into the new file?", false)
			if err != nil {
				return nil, fmt.Errorf("failed to prompt: %w", err)
			}
			if withContent {
				text, err := ctx.UI.PromptMultiline("Content")
				if err != nil {
					return nil, fmt.Errorf("failed to prompt for content: %w", err)
				}
				content = &text
			}
		}
		m.Add(path, content)

		more, err := ctx.UI.PromptYesNo("Add another target?", true)
		if err != nil {
			return nil, fmt.Errorf("failed to prompt: %w", err)
		}
		if !more {
			return m, nil
		}
	}
}
