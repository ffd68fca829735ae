package cli

import (
	"fmt"

	"github.com/zoro11031/materialize/internal/manifest"
	"github.com/zoro11031/materialize/internal/materialize"
)

// RunTarget materializes a single target
func RunTarget(ctx *SetupContext, target materialize.Target) error {
	_, err := ctx.Materializer.Materialize(target)
	return err
}

// RunManifest materializes every target of a manifest in order.
// It stops at the first fatal error; targets before it stay materialized.
func RunManifest(ctx *SetupContext, manifestPath string) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	targets, err := m.Targets()
	if err != nil {
		return fmt.Errorf("%s: %w", manifestPath, err)
	}

	outcomes, err := ctx.Materializer.MaterializeAll(targets)
	if err != nil {
		return fmt.Errorf("target %d of %d: %w", len(outcomes), len(targets), err)
	}

	created := 0
	for _, o := range outcomes {
		if o == materialize.FileCreated || o == materialize.DirectoryCreated {
			created++
		}
	}
	ctx.UI.Infof("%d created, %d already present", created, len(outcomes)-created)
	return nil
}
