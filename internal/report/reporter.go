package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/yacobolo/statecss"
)

// Options controls human-readable output
type Options struct {
	UseColors bool // Force color output
	ShowFiles bool // List every scoped style file (verbose mode)
}

// Reporter prints compile results for humans
type Reporter struct {
	w         io.Writer
	useColors bool
	showFiles bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:         w,
		useColors: ShouldUseColors(opts.UseColors),
		showFiles: opts.ShowFiles,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintSummary outputs what a compilation produced
func (r *Reporter) PrintSummary(result *statecss.CompileResult) {
	verb := "Rendered"
	if result.Written {
		verb = "Compiled"
	}
	fmt.Fprintf(r.w, "%s %s from %s into %s\n",
		verb,
		pluralizeCount(len(result.Files), "style file", "style files"),
		pluralizeCount(result.States, "state", "states"),
		RenderStyle(StyleCyan, result.OutputPath, r.useColors))

	fmt.Fprintf(r.w, "  Rules scoped:  %d\n", result.RulesScoped)
	fmt.Fprintf(r.w, "  Lines dropped: %d\n", result.LinesDropped)
	if result.Excluded > 0 {
		fmt.Fprintf(r.w, "  Excluded:      %d\n", result.Excluded)
	}
	if len(result.Skipped) > 0 {
		fmt.Fprintf(r.w, "  Skipped:       %d\n", len(result.Skipped))
	}

	if r.showFiles && len(result.Files) > 0 {
		fmt.Fprintln(r.w, "")
		for _, f := range result.Files {
			fmt.Fprintf(r.w, "  %s → .%s\n", f.RelPath(), f.Class())
		}
	}
}

// PrintWarnings outputs warnings sorted by file then line
func (r *Reporter) PrintWarnings(warnings []statecss.Warning) {
	if len(warnings) == 0 {
		return
	}

	sorted := make([]statecss.Warning, len(warnings))
	copy(sorted, warnings)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].File != sorted[j].File {
			return sorted[i].File < sorted[j].File
		}
		return sorted[i].Line < sorted[j].Line
	})

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, pluralizeCount(len(sorted), "warning", "warnings")+":", r.useColors))
	for _, w := range sorted {
		fmt.Fprintf(r.w, "%s %s\n", w.String(), RenderStyle(StyleGray, "("+string(w.Kind)+")", r.useColors))
	}
}

// PrintCheck outputs whether the output file is current
func (r *Reporter) PrintCheck(check *statecss.CheckResult) {
	switch {
	case check.UpToDate:
		fmt.Fprintf(r.w, "%s is up to date\n", RenderStyle(StyleGreen, check.OutputPath, r.useColors))
	case check.Missing:
		fmt.Fprintf(r.w, "%s does not exist\n", RenderStyle(StyleRed, check.OutputPath, r.useColors))
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: run `"+statecss.RegenerateCommand+"` to create it", r.useColors))
	default:
		fmt.Fprintf(r.w, "%s is stale\n", RenderStyle(StyleRed, check.OutputPath, r.useColors))
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: run `"+statecss.RegenerateCommand+"` to regenerate it", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
