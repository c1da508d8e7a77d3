package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"resxcheck/internal/validate"
)

// runValidate handles the `validate` command.
func runValidate(cmd *cobra.Command, dir string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, policy, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	groups, err := discover(dir, cfg)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		log.Warn().Str("dir", dir).Msg("No resource groups found")
		return nil
	}

	validator := validate.New(policy)
	results := validator.Run(ctx, groups, cfg.WorkerCount)

	totalErrs, totalWarns := 0, 0
	for _, res := range results {
		errs, warns := report(res)
		totalErrs += errs
		totalWarns += warns
	}

	log.Info().
		Int("groups", len(groups)).
		Int("errors", totalErrs).
		Int("warnings", totalWarns).
		Str("policy", policy.String()).
		Msg("Validation complete")

	if totalErrs > 0 {
		return fmt.Errorf("validation failed with %d error(s)", totalErrs)
	}
	return nil
}
