package statecss

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Compile is the main entry point. It scopes every style file under the
// states root and replaces the output file with the combined document.
//
// Nothing is written unless the whole document was rendered, so a failing
// run leaves a previously generated stylesheet untouched.
func Compile(config Config) (*CompileResult, error) {
	config = config.withDefaults()
	log := config.Logger.Named("statecss")

	c := newCompiler(config, log)

	// 1. Discover style files
	styles, err := c.discover()
	if err != nil {
		return nil, err
	}

	// 2. The output must have somewhere to go before any work is done
	if err := checkOutputDir(c.result.OutputPath); err != nil {
		return nil, err
	}

	// 3. Render in memory
	var buf bytes.Buffer
	if err := c.render(&buf, styles); err != nil {
		return nil, err
	}

	// 4. Replace the output
	if err := writeFileAtomic(c.result.OutputPath, buf.Bytes()); err != nil {
		return nil, pathError(ErrOutput, c.result.OutputPath, err)
	}
	c.result.Written = true

	log.Debug("Wrote stylesheet",
		zap.String("output", c.result.OutputPath),
		zap.Int("files", len(c.result.Files)),
		zap.Int("bytes", c.result.Bytes))

	return c.result, nil
}

// CompileTo renders the combined document to w without touching the output
// file. The result's OutputPath still names where Compile would write.
func CompileTo(w io.Writer, config Config) (*CompileResult, error) {
	config = config.withDefaults()
	c := newCompiler(config, config.Logger.Named("statecss"))

	styles, err := c.discover()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.render(&buf, styles); err != nil {
		return nil, err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	return c.result, nil
}

// CheckResult tells whether the output file matches a fresh compilation
type CheckResult struct {
	*CompileResult
	UpToDate bool
	Missing  bool // The output file does not exist yet
}

// Check renders the document and compares it with the current output file.
// A missing output file is reported as stale, not as an error.
func Check(config Config) (*CheckResult, error) {
	var buf bytes.Buffer
	result, err := CompileTo(&buf, config)
	if err != nil {
		return nil, err
	}

	check := &CheckResult{CompileResult: result}
	current, err := os.ReadFile(result.OutputPath)
	switch {
	case os.IsNotExist(err):
		check.Missing = true
	case err != nil:
		return nil, pathError(ErrOutput, result.OutputPath, err)
	default:
		check.UpToDate = bytes.Equal(current, buf.Bytes())
	}
	return check, nil
}

// compiler carries the state of a single run
type compiler struct {
	config Config
	log    *zap.Logger
	result *CompileResult
}

func newCompiler(config Config, log *zap.Logger) *compiler {
	return &compiler{
		config: config,
		log:    log,
		result: &CompileResult{OutputPath: config.OutputPath()},
	}
}

func (c *compiler) discover() ([]StyleFile, error) {
	styles, stats, err := discoverStyles(c.config, c.log)
	if err != nil {
		return nil, err
	}
	c.result.States = stats.States
	c.result.Excluded = stats.Excluded

	c.log.Debug("Found style files",
		zap.String("root", c.config.StatesRoot()),
		zap.Int("states", stats.States),
		zap.Int("files", len(styles)))
	return styles, nil
}

// render writes the banner and one block per style file.
func (c *compiler) render(buf *bytes.Buffer, styles []StyleFile) error {
	buf.WriteString(Banner(filepath.Base(c.result.OutputPath)))

	for _, style := range styles {
		block, err := c.scopeFile(style)
		if err != nil {
			if !c.config.KeepGoing || !isReadError(err) {
				return err
			}
			c.log.Warn("Skipping unreadable style file", zap.String("file", style.Path), zap.Error(err))
			c.result.Skipped = append(c.result.Skipped, style.Path)
			c.result.Warnings = append(c.result.Warnings, Warning{
				File: style.RelPath(),
				Kind: WarnSkippedFile,
				Text: err.Error(),
			})
			continue
		}
		buf.Write(block)
		c.result.Files = append(c.result.Files, style)
	}

	c.result.Bytes = buf.Len()
	return nil
}

// scopeFile renders the block of one style file: marker comment, blank line,
// scoped rules.
func (c *compiler) scopeFile(style StyleFile) ([]byte, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(style.Path)
	if err != nil {
		return nil, pathError(ErrFileRead, style.Path, err)
	}

	var block bytes.Buffer
	fmt.Fprintf(&block, "/* %s */\n\n", style.Token+styleSuffix)

	stats, err := ScopeStyle(bytes.NewReader(content), style.Token, &block)
	if err != nil {
		return nil, pathError(ErrFileRead, style.Path, err)
	}

	rel := style.RelPath()
	if stats.Unterminated {
		if c.config.Strict {
			return nil, fmt.Errorf("%w: %s:%d: rule is never closed", ErrUnterminatedRule, rel, stats.OpenLine)
		}
		c.warn(Warning{
			File: rel,
			Line: stats.OpenLine,
			Kind: WarnUnterminatedRule,
			Text: "rule is never closed; the rest of the file was copied into it",
		})
	}
	for _, line := range stats.DroppedRules {
		c.warn(Warning{
			File: rel,
			Line: line,
			Kind: WarnDroppedRule,
			Text: `"{" does not end the line; the rule is dropped`,
		})
	}
	if c.config.Lint {
		for _, f := range Lint(content) {
			c.warn(Warning{File: rel, Line: f.Line, Kind: f.Kind, Text: f.Text})
		}
	}

	c.result.RulesScoped += stats.Rules
	c.result.LinesDropped += stats.Dropped

	c.log.Debug("Scoped style file",
		zap.String("file", rel),
		zap.String("class", style.Class()),
		zap.Int("rules", stats.Rules),
		zap.Int("dropped", stats.Dropped))

	return block.Bytes(), nil
}

func (c *compiler) warn(w Warning) {
	c.result.Warnings = append(c.result.Warnings, w)
}
