package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/statecss"
	"github.com/yacobolo/statecss/internal/report"
)

var compileCmd = &cobra.Command{
	Use:     "compile",
	Aliases: []string{"build"},
	Short:   "Write the combined state stylesheet",
	Long: `Scope the rules of every state CSS file under its generated class and
write the combined stylesheet. The previous output is replaced atomically and
left untouched when compilation fails.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCompile,
}

func init() {
	f := compileCmd.Flags()
	f.Bool("strict", false, "Fail when a rule is still open at the end of a file")
	f.Bool("keep-going", false, "Skip unreadable style files instead of failing")
	f.Bool("lint", true, "Warn about at-rules and rules that cannot be scoped")
	f.Bool("dry-run", false, "Print the stylesheet to stdout instead of writing it")
	f.String("output-format", "text", "Result format: text|json")
}

func runCompile(cmd *cobra.Command, _ []string) error {
	config, err := buildCompileConfig()
	if err != nil {
		return err
	}

	quiet := getBool("quiet", false)
	log := newLogger(getBool("verbose", false), quiet)
	defer func() { _ = log.Sync() }()
	config.Logger = log

	opts := report.Options{
		UseColors: getBool("color", false),
		ShowFiles: getBool("verbose", false),
	}
	out := cmd.OutOrStdout()

	// Dry run: the stylesheet owns stdout, warnings go to stderr
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		result, err := statecss.CompileTo(out, config)
		if err != nil {
			return fmt.Errorf("compilation failed: %w", err)
		}
		if !quiet {
			report.NewReporter(cmd.ErrOrStderr(), opts).PrintWarnings(result.Warnings)
		}
		return nil
	}

	result, err := statecss.Compile(config)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	if !quiet {
		format := report.DetermineOutputFormat(getString("output-format", string(report.OutputText)))
		report.WriteOutput(out, result, format, opts)
	}

	return nil
}
