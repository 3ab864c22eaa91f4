package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/statecss"
	"github.com/yacobolo/statecss/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the combined stylesheet is up to date",
	Long: `Compile in memory and compare the result with the existing output file.
Exits 1 when the file is missing or stale, which makes it suitable for CI and
pre-commit hooks.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := buildCompileConfig()
		if err != nil {
			return err
		}
		// warnings belong to compile; check only answers up-to-date or not
		config.Lint = false

		quiet := getBool("quiet", false)
		log := newLogger(getBool("verbose", false), quiet)
		defer func() { _ = log.Sync() }()
		config.Logger = log

		check, err := statecss.Check(config)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		if !quiet {
			reporter := report.NewReporter(cmd.OutOrStdout(), report.Options{UseColors: getBool("color", false)})
			reporter.PrintCheck(check)
		}

		if !check.UpToDate {
			return errStale
		}
		return nil
	},
}
