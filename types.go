package statecss

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Default layout, relative to the root directory.
const (
	DefaultStatesDir = "www/app/states"
	DefaultOutput    = "www/assets/css/state_styles.css"
	DefaultInclude   = "*.css"
)

// styleSuffix is stripped from a style file name to get its selector token.
const styleSuffix = ".css"

// Order controls how directory listings are sequenced before processing.
type Order string

const (
	// OrderLexical sorts names byte-wise (default, reproducible builds)
	OrderLexical Order = "lexical"
	// OrderNatural sorts names with embedded numbers numerically: state2 < state10
	OrderNatural Order = "natural"
	// OrderNone keeps the raw operating system enumeration order
	OrderNone Order = "none"
)

// ParseOrder converts a configuration string into an Order.
// An empty string selects OrderLexical.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderLexical:
		return OrderLexical, nil
	case OrderNatural:
		return OrderNatural, nil
	case OrderNone:
		return OrderNone, nil
	}
	return "", fmt.Errorf("%w: unknown order %q (want lexical, natural or none)", ErrInvalidConfig, s)
}

// Config holds compiler configuration
type Config struct {
	RootDir   string      // "/srv/app" (states dir and output are resolved against it)
	StatesDir string      // "www/app/states"
	Output    string      // "www/assets/css/state_styles.css"
	Include   string      // "*.css" (file name glob, must end in .css)
	Exclude   []string    // gitignore-style patterns relative to the states root: ["legacy/", "*.draft.css"]
	Order     Order       // Listing order (default: lexical)
	Strict    bool        // Fail on a rule left open at end of file
	KeepGoing bool        // Skip unreadable style files instead of aborting
	Lint      bool        // Report at-rules and rules the line scanner cannot scope
	Logger    *zap.Logger // Debug progress logging (nil = no logging)
}

// withDefaults fills in zero-valued fields.
func (c Config) withDefaults() Config {
	if c.RootDir == "" {
		c.RootDir = "."
	}
	if c.StatesDir == "" {
		c.StatesDir = DefaultStatesDir
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Include == "" {
		c.Include = DefaultInclude
	}
	if c.Order == "" {
		c.Order = OrderLexical
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// StatesRoot returns the directory holding one sub-directory per state.
func (c Config) StatesRoot() string {
	return resolve(c.RootDir, c.StatesDir, DefaultStatesDir)
}

// OutputPath returns the path of the combined stylesheet.
func (c Config) OutputPath() string {
	return resolve(c.RootDir, c.Output, DefaultOutput)
}

func resolve(root, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if root == "" {
		root = "."
	}
	return filepath.Join(root, filepath.FromSlash(path))
}

// StyleFile is a CSS file found inside a state directory
type StyleFile struct {
	State string // "tabs" (state directory name)
	Name  string // "tabs.css"
	Path  string // Full path used for reading
	Token string // "tabs" (file name without .css)
}

// RelPath returns the path relative to the states root, always slash separated.
func (s StyleFile) RelPath() string {
	return s.State + "/" + s.Name
}

// Class returns the scoping class name without the leading dot.
func (s StyleFile) Class() string {
	return ScopeClass(s.Token)
}

// ScopeClass returns the class generated for a selector token: "tabs" → "tabs-state".
func ScopeClass(token string) string {
	return token + "-state"
}

// CompileResult contains compilation stats
type CompileResult struct {
	OutputPath   string      // Where the document was (or would be) written
	States       int         // State directories visited
	Files        []StyleFile // Style files scoped into the document
	RulesScoped  int         // Rule-opening lines rewritten
	LinesDropped int         // Non-blank lines outside any rule
	Excluded     int         // Style files matched by Exclude
	Skipped      []string    // Unreadable style files skipped with KeepGoing
	Warnings     []Warning
	Bytes        int  // Size of the rendered document
	Written      bool // True once the output file was replaced
}

// WarningKind classifies a compile warning
type WarningKind string

const (
	// WarnUnterminatedRule: the file ended while a rule was still open
	WarnUnterminatedRule WarningKind = "unterminated-rule"
	// WarnDroppedRule: a "{" appeared outside a rule without ending the line
	WarnDroppedRule WarningKind = "dropped-rule"
	// WarnAtRule: a top-level at-rule the line scanner cannot scope correctly
	WarnAtRule WarningKind = "at-rule"
	// WarnSkippedFile: an unreadable file skipped with KeepGoing
	WarnSkippedFile WarningKind = "skipped-file"
)

// Warning is a non-fatal problem found while compiling
type Warning struct {
	File string // "tabs/tabs.css" (relative to the states root)
	Line int    // 1-based, 0 when not tied to a line
	Kind WarningKind
	Text string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", w.File, w.Line, w.Text)
	}
	return fmt.Sprintf("%s: %s", w.File, w.Text)
}
