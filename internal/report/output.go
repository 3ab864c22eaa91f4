package report

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/yacobolo/statecss"
)

// OutputFormat represents the result output format
type OutputFormat string

const (
	// OutputText prints a summary plus warnings (default)
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to text.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputText
	}
}

// WriteOutput writes the compile result in the specified format
func WriteOutput(w io.Writer, result *statecss.CompileResult, format OutputFormat, opts Options) {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	default:
		reporter := NewReporter(w, opts)
		reporter.PrintSummary(result)
		reporter.PrintWarnings(result.Warnings)
	}
}

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string        `json:"version"`
	Timestamp string        `json:"timestamp"`
	Output    string        `json:"output"`
	Written   bool          `json:"written"`
	Summary   JSONSummary   `json:"summary"`
	Files     []JSONFile    `json:"files"`
	Warnings  []JSONWarning `json:"warnings"`
	Skipped   []string      `json:"skipped"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	States       int `json:"states"`
	Files        int `json:"files"`
	RulesScoped  int `json:"rules_scoped"`
	LinesDropped int `json:"lines_dropped"`
	Excluded     int `json:"excluded"`
	Bytes        int `json:"bytes"`
}

// JSONFile represents one scoped style file
type JSONFile struct {
	State string `json:"state"`
	File  string `json:"file"`
	Class string `json:"class"`
}

// JSONWarning represents a single warning
type JSONWarning struct {
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// WriteJSON writes the compile result as JSON
func WriteJSON(w io.Writer, result *statecss.CompileResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

// buildJSONOutput converts CompileResult to JSONOutput
func buildJSONOutput(result *statecss.CompileResult) JSONOutput {
	files := make([]JSONFile, len(result.Files))
	for i, f := range result.Files {
		files[i] = JSONFile{
			State: f.State,
			File:  f.RelPath(),
			Class: f.Class(),
		}
	}

	warnings := make([]JSONWarning, len(result.Warnings))
	for i, w := range result.Warnings {
		warnings[i] = JSONWarning{
			File:    w.File,
			Line:    w.Line,
			Kind:    string(w.Kind),
			Message: w.Text,
		}
	}

	skipped := result.Skipped
	if skipped == nil {
		skipped = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Output:    result.OutputPath,
		Written:   result.Written,
		Summary: JSONSummary{
			States:       result.States,
			Files:        len(result.Files),
			RulesScoped:  result.RulesScoped,
			LinesDropped: result.LinesDropped,
			Excluded:     result.Excluded,
			Bytes:        result.Bytes,
		},
		Files:    files,
		Warnings: warnings,
		Skipped:  skipped,
	}
}
