package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "statecss",
	Short: "Merge per-state CSS files into one scoped stylesheet",
	Long: `Scan www/app/states/<state>/*.css, prefix every rule with the class
derived from its file name (tabs.css → .tabs-state) and write the combined
result to www/assets/css/state_styles.css.`,
	// Default behavior: run compile when no subcommand is given.
	// We must call loadConfig here because PreRunE of compileCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCompile(cmd, nil)
	},
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigFile, "Config file path")

	// Layout, shared by compile and check
	pf.String("root", "", "Application root (default: parent of the executable's directory)")
	pf.String("states-dir", "www/app/states", "States directory, relative to the root")
	pf.String("output", "www/assets/css/state_styles.css", "Combined stylesheet, relative to the root")
	pf.String("include", "*.css", "File name glob for style files (must end in .css)")
	pf.StringSlice("exclude", nil, "Gitignore-style patterns of style files to skip")
	pf.String("order", "lexical", "Listing order: lexical|natural|none")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
