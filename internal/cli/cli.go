// Package cli wires the resxcheck commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"resxcheck/internal/config"
	"resxcheck/internal/grouping"
	"resxcheck/internal/validate"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "resxcheck",
		Short: "Validates resx resource files and their satellite translations",
		Long: "A tool that checks parameterized resource entries and per-culture translations\n" +
			"for structural consistency, and generates typed Go accessors for valid groups.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

// addCommonFlags registers the flags shared by every command.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("policy", "", "Validation policy: strict or lenient (overrides RESXCHECK_POLICY)")
	cmd.Flags().Int("workers", 0, "Number of concurrent group validations (overrides WORKER_COUNT)")
	cmd.Flags().StringSlice("include", nil, "Glob patterns of files to include")
	cmd.Flags().StringSlice("exclude", nil, "Glob patterns of files to exclude")
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <directory>",
		Short: "Validate every resource group under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
	addCommonFlags(cmd)
	return cmd
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <directory>",
		Short: "Validate resource groups and emit Go accessors for the clean ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0])
		},
	}
	addCommonFlags(cmd)
	cmd.Flags().String("out", "", "Output directory for generated files (overrides OUTPUT_DIR; defaults beside the base file)")
	cmd.Flags().String("package", "", "Package name of generated files (overrides OUTPUT_PACKAGE)")
	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <directory>",
		Short: "Re-validate resource groups whenever their files change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0])
		},
	}
	addCommonFlags(cmd)
	return cmd
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// loadSettings merges env config with command flags.
func loadSettings(cmd *cobra.Command) (*config.Config, validate.Policy, error) {
	cfg := config.Load()

	if v, _ := cmd.Flags().GetString("policy"); v != "" {
		cfg.Policy = v
	}
	if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
		cfg.WorkerCount = v
	}
	if v, _ := cmd.Flags().GetStringSlice("include"); len(v) > 0 {
		cfg.IncludeGlobs = v
	}
	if v, _ := cmd.Flags().GetStringSlice("exclude"); len(v) > 0 {
		cfg.ExcludeGlobs = v
	}

	policy, err := validate.ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, policy, err
	}
	return cfg, policy, nil
}

// discover walks the directory and reports orphan satellites.
func discover(dir string, cfg *config.Config) ([]grouping.Group, error) {
	groups, orphans, err := grouping.Discover(grouping.Options{
		Root:    dir,
		Include: cfg.IncludeGlobs,
		Exclude: cfg.ExcludeGlobs,
	})
	if err != nil {
		return nil, fmt.Errorf("discover resource groups: %w", err)
	}
	for _, o := range orphans {
		log.Warn().Str("file", o).Msg("Satellite file has no base resource file")
	}
	return groups, nil
}

// report logs every diagnostic of a group result and returns its counts.
func report(res *validate.GroupResult) (errs, warns int) {
	for _, d := range res.Bag.Errors() {
		log.Error().Str("file", d.File).Msg(d.Message)
	}
	for _, d := range res.Bag.Warnings() {
		log.Warn().Str("file", d.File).Msg(d.Message)
	}
	return len(res.Bag.Errors()), len(res.Bag.Warnings())
}
