package statecss

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maruel/natural"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// ScanStats tracks discovery statistics
type ScanStats struct {
	States   int // State directories visited
	Excluded int // Style files matched by an exclude pattern
}

// isHidden reports whether a directory entry is a dot-file or dot-directory.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// validateInclude checks the file name glob. The token is derived by
// stripping ".css", so a pattern that can match anything else is rejected.
func validateInclude(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("%w: bad include pattern %q", ErrInvalidConfig, pattern)
	}
	if !strings.HasSuffix(pattern, styleSuffix) {
		return fmt.Errorf("%w: include pattern %q must end in %s", ErrInvalidConfig, pattern, styleSuffix)
	}
	if strings.ContainsRune(pattern, '/') {
		return fmt.Errorf("%w: include pattern %q matches file names, not paths", ErrInvalidConfig, pattern)
	}
	return nil
}

// compileExcludes builds the exclude matcher, nil when there is nothing to exclude.
func compileExcludes(patterns []string) *ignore.GitIgnore {
	lines := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(lines...)
}

// discoverStyles lists the style files of every state directory, in the
// configured order. Hidden entries are never visited.
func discoverStyles(config Config, log *zap.Logger) ([]StyleFile, ScanStats, error) {
	var stats ScanStats

	if err := validateInclude(config.Include); err != nil {
		return nil, stats, err
	}
	excludes := compileExcludes(config.Exclude)

	root := config.StatesRoot()
	info, err := os.Stat(root)
	if err != nil {
		return nil, stats, pathError(ErrStatesRoot, root, err)
	}
	if !info.IsDir() {
		return nil, stats, pathError(ErrStatesRoot, root, errNotDir)
	}

	stateNames, err := listNames(root, config.Order)
	if err != nil {
		return nil, stats, pathError(ErrStatesRoot, root, err)
	}

	var styles []StyleFile
	for _, state := range stateNames {
		if isHidden(state) {
			continue
		}
		stateDir := filepath.Join(root, state)
		// os.Stat follows symlinks, so a linked state directory is visited
		if fi, err := os.Stat(stateDir); err != nil || !fi.IsDir() {
			continue
		}
		stats.States++

		fileNames, err := listNames(stateDir, config.Order)
		if err != nil {
			return nil, stats, pathError(ErrStatesRoot, stateDir, err)
		}

		found := 0
		for _, name := range fileNames {
			if isHidden(name) || !strings.HasSuffix(name, styleSuffix) {
				continue
			}
			if !doublestar.MatchUnvalidated(config.Include, name) {
				continue
			}
			style := StyleFile{
				State: state,
				Name:  name,
				Path:  filepath.Join(stateDir, name),
				Token: strings.TrimSuffix(name, styleSuffix),
			}
			if excludes != nil && excludes.MatchesPath(style.RelPath()) {
				stats.Excluded++
				log.Debug("Excluded style file", zap.String("file", style.RelPath()))
				continue
			}
			styles = append(styles, style)
			found++
		}

		log.Debug("Scanned state directory", zap.String("state", state), zap.Int("styles", found))
	}

	return styles, stats, nil
}

// listNames returns the entry names of dir in the requested order.
func listNames(dir string, order Order) ([]string, error) {
	if order == OrderNone {
		// os.ReadDir sorts; read the directory handle directly to keep the
		// enumeration order of the file system
		f, err := os.Open(dir) // #nosec G304 - path comes from trusted configuration
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return f.Readdirnames(-1)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	// os.ReadDir already returns lexical order
	if order == OrderNatural {
		sort.Sort(natural.StringSlice(names))
	}
	return names, nil
}
