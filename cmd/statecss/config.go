package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/statecss"
)

var k = koanf.New(".")

// flagKeys maps command line flags onto configuration keys. Flags missing
// from the map are not configuration (help, config, dry-run).
var flagKeys = map[string]string{
	"root":          "root",
	"states-dir":    "compile.states-dir",
	"output":        "compile.output",
	"include":       "compile.include",
	"exclude":       "compile.exclude",
	"order":         "compile.order",
	"strict":        "compile.strict",
	"keep-going":    "compile.keep-going",
	"lint":          "compile.lint",
	"output-format": "output-format",
	"verbose":       "verbose",
	"quiet":         "quiet",
	"color":         "color",
}

// listKeys hold comma separated values when set from the environment.
var listKeys = map[string]bool{
	"compile.exclude": true,
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Flags left at their default only
	// fill keys no other provider has set.
	provider := posflag.ProviderWithFlag(cmd.Flags(), ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(cmd.Flags(), f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (STATECSS_* prefix)
	if err := k.Load(env.ProviderWithValue("STATECSS_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable onto a configuration key:
//
//	STATECSS_ROOT                -> root
//	STATECSS_OUTPUT_FORMAT       -> output-format
//	STATECSS_COMPILE_KEEP_GOING  -> compile.keep-going
//	STATECSS_COMPILE_EXCLUDE=a,b -> compile.exclude = [a b]
func envKey(name, value string) (string, interface{}) {
	key := strings.ToLower(strings.TrimPrefix(name, "STATECSS_"))
	if rest, ok := strings.CutPrefix(key, "compile_"); ok {
		key = "compile." + strings.ReplaceAll(rest, "_", "-")
	} else {
		key = strings.ReplaceAll(key, "_", "-")
	}

	if listKeys[key] {
		return key, splitList(value)
	}
	return key, value
}

// buildCompileConfig constructs the library's Config struct from koanf state.
func buildCompileConfig() (statecss.Config, error) {
	order, err := statecss.ParseOrder(getString("compile.order", string(statecss.OrderLexical)))
	if err != nil {
		return statecss.Config{}, err
	}

	config := statecss.Config{
		RootDir:   getString("root", defaultRoot()),
		StatesDir: getString("compile.states-dir", statecss.DefaultStatesDir),
		Output:    getString("compile.output", statecss.DefaultOutput),
		Include:   getString("compile.include", statecss.DefaultInclude),
		Exclude:   k.Strings("compile.exclude"),
		Order:     order,
		Strict:    getBool("compile.strict", false),
		KeepGoing: getBool("compile.keep-going", false),
		Lint:      getBool("compile.lint", true),
	}

	return config, nil
}

// defaultRoot is the parent of the directory holding the executable: the
// tool is installed as <root>/bin/statecss.
func defaultRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe))
}

// getString returns the configured value for key, or defaultVal when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the configured value for key, or defaultVal when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// splitList splits comma-separated values into a slice
func splitList(s string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
