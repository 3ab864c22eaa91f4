// Package main provides the statecss CLI tool for compiling state stylesheets.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/statecss/internal/report"
)

func main() {
	err := rootCmd.Execute()
	// check already printed why it failed
	if err != nil && !errors.Is(err, errStale) {
		prefix := report.RenderStyle(report.StyleRed, "Error:", report.ShouldUseColors(false))
		fmt.Fprintf(os.Stderr, "%s %v\n", prefix, err)
	}
	os.Exit(exitCode(err))
}
