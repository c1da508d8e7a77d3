package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"resxcheck/internal/cache"
	"resxcheck/internal/config"
	"resxcheck/internal/emit"
	"resxcheck/internal/validate"
)

// runGenerate handles the `generate` command.
func runGenerate(cmd *cobra.Command, dir string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, policy, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("package"); v != "" {
		cfg.OutputPackage = v
	}

	groups, err := discover(dir, cfg)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		log.Warn().Str("dir", dir).Msg("No resource groups found")
		return nil
	}

	resultCache := cache.NewResultCache(cfg.CachePath)
	if err := resultCache.Load(); err != nil {
		log.Warn().Err(err).Msg("Failed to load result cache")
	}

	// Skip groups whose files are unchanged since their last clean run.
	hashes := make([]string, len(groups))
	var stale []int
	for i, g := range groups {
		hashes[i] = cache.GroupHash(g.Paths())
		if resultCache.Fresh(g.BasePath, hashes[i]) {
			log.Debug().Str("group", g.Name).Msg("Group unchanged, skipping")
			continue
		}
		stale = append(stale, i)
	}

	validator := validate.New(policy)
	totalErrs := 0
	generated := 0

	results := validator.Run(ctx, pick(groups, stale), cfg.WorkerCount)
	for bi, res := range results {
		i := stale[bi]
		if res.Skipped {
			// Never validated (cancelled run); leave files and cache alone.
			continue
		}
		errs, _ := report(res)
		totalErrs += errs

		if !res.Emittable() {
			resultCache.Invalidate(groups[i].BasePath)
			continue
		}
		if ctx.Err() != nil {
			continue
		}

		outPath, err := writeAccessors(res, cfg)
		if err != nil {
			log.Error().Err(err).Str("group", res.Group.Name).Msg("Code generation failed")
			totalErrs++
			continue
		}
		generated++
		resultCache.Set(groups[i].BasePath, hashes[i])
		log.Info().Str("group", res.Group.Name).Str("output", outPath).Msg("Accessors generated")
	}

	if err := resultCache.Save(); err != nil {
		log.Warn().Err(err).Msg("Failed to save result cache")
	}

	log.Info().
		Int("groups", len(groups)).
		Int("generated", generated).
		Int("skipped", len(groups)-len(stale)).
		Msg("Generation complete")

	if totalErrs > 0 {
		return fmt.Errorf("generation failed with %d error(s)", totalErrs)
	}
	return nil
}

// writeAccessors emits the accessor source of one clean group.
func writeAccessors(res *validate.GroupResult, cfg *config.Config) (string, error) {
	src, err := emit.Generate(res.Group.Name, res.Items, emit.Options{Package: cfg.OutputPackage})
	if err != nil {
		return "", err
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(res.Group.BasePath)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outPath := filepath.Join(outDir, fileStem(res.Group.Name)+"_resources.go")
	if err := os.WriteFile(outPath, src, 0644); err != nil {
		return "", fmt.Errorf("write generated file: %w", err)
	}
	return outPath, nil
}

// fileStem lowers a group name into a file-name-friendly stem.
func fileStem(name string) string {
	stem := strings.ToLower(name)
	stem = strings.ReplaceAll(stem, ".", "_")
	stem = strings.ReplaceAll(stem, "-", "_")
	stem = strings.ReplaceAll(stem, " ", "_")
	return stem
}

// pick selects the groups at the given indices.
func pick[T any](items []T, indices []int) []T {
	out := make([]T, 0, len(indices))
	for _, i := range indices {
		out = append(out, items[i])
	}
	return out
}
