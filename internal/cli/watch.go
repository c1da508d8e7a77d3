package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"resxcheck/internal/grouping"
	"resxcheck/internal/validate"
	"resxcheck/internal/watch"
)

// runWatch handles the `watch` command: an initial full validation, then a
// re-validation of the affected groups after every change burst.
func runWatch(cmd *cobra.Command, dir string) error {
	ctx, cancel := setupContext()
	defer cancel()

	// Discovery resolves the root to an absolute path, so the watcher must
	// report absolute paths too or changed files never match their group.
	dir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve watch directory: %w", err)
	}

	cfg, policy, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	validator := validate.New(policy)

	revalidate := func(ctx context.Context, changed []string) {
		groups, err := discover(dir, cfg)
		if err != nil {
			log.Error().Err(err).Msg("Discovery failed")
			return
		}

		affected := groups
		if changed != nil {
			affected = affectedGroups(groups, changed)
		}
		if len(affected) == 0 {
			return
		}

		results := validator.Run(ctx, affected, cfg.WorkerCount)
		totalErrs, totalWarns := 0, 0
		for _, res := range results {
			errs, warns := report(res)
			totalErrs += errs
			totalWarns += warns
		}
		log.Info().
			Int("groups", len(affected)).
			Int("errors", totalErrs).
			Int("warnings", totalWarns).
			Msg("Validation pass complete")
	}

	revalidate(ctx, nil)

	w, err := watch.New(dir, grouping.Extension, watch.DefaultDebounce)
	if err != nil {
		return err
	}
	err = w.Run(ctx, func(paths []string) {
		log.Info().Int("files", len(paths)).Msg("Changes detected")
		revalidate(ctx, paths)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// affectedGroups filters groups down to those containing a changed path.
// Group paths are absolute; changed paths are resolved to match.
func affectedGroups(groups []grouping.Group, changed []string) []grouping.Group {
	changedSet := make(map[string]struct{}, len(changed))
	for _, p := range changed {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		changedSet[p] = struct{}{}
	}

	var out []grouping.Group
	for _, g := range groups {
		for _, p := range g.Paths() {
			if _, ok := changedSet[p]; ok {
				out = append(out, g)
				break
			}
		}
	}
	return out
}
