// Package statecss merges per-state CSS files into one combined stylesheet.
//
// Every application state lives in its own directory under the states root
// (www/app/states by default). Each non-hidden "*.css" file found there has
// its top-level rules scoped under a class derived from the file name, so
// the rules of tabs.css only apply inside an element carrying "tabs-state":
//
//	.list {            →    .tabs-state .list {
//	  color: red;      →      color: red;
//	}                  →    }
//
// The transformation is textual and line oriented. A line ending in "{"
// opens a rule, a line whose trimmed form starts with "}" closes it, and
// anything between rules is dropped. There is no CSS-aware fallback: nested
// blocks such as @media are scoped as if they were plain rules. See Lint for
// the warnings produced for such input.
//
// # Compilation
//
//	result, err := statecss.Compile(statecss.Config{
//		RootDir: "/path/to/app",
//	})
//
// The combined document is rendered in memory and written atomically to
// www/assets/css/state_styles.css, so a failing run never truncates a
// previously generated file.
//
// # CLI Tool
//
// statecss also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/statecss/cmd/statecss@latest
package statecss

// Public API:
// - Compile(config Config) (*CompileResult, error)
// - CompileTo(w io.Writer, config Config) (*CompileResult, error)
// - ScopeStyle(r io.Reader, token string, w io.Writer) (ScopeStats, error)
// - Lint(content []byte) []Finding
