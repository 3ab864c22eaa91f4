package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigFile = ".statecss.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .statecss.yaml config file",
	Long:  `Create a .statecss.yaml configuration file in the current directory with the default layout.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# statecss configuration

# Shared settings
# root: .                  # default: parent of the executable's directory
output-format: text        # text | json
verbose: false

# Compilation settings
compile:
  states-dir: www/app/states
  output: www/assets/css/state_styles.css
  include: "*.css"
  exclude: []              # gitignore-style, relative to states-dir
  order: lexical           # lexical | natural | none
  strict: false
  keep-going: false
  lint: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
