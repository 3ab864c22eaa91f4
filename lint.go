package statecss

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Finding is a construct the line scanner will not scope as intended
type Finding struct {
	Line int
	Kind WarningKind
	Text string
}

// Lint parses content as CSS and reports top-level at-rules. Block at-rules
// (@media, @supports, ...) get their own selector prefixed and their inner
// rules copied unscoped; statement at-rules (@import, @charset) are dropped.
//
// Lint never fails: unparsable input simply ends the scan.
func Lint(content []byte) []Finding {
	var findings []Finding

	input := parse.NewInputBytes(content)
	defer input.Restore()

	parser := css.NewParser(input, false)
	depth := 0
	lastErr := -1

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// grammar errors are recoverable as long as the parser advances
			if parser.HasParseError() && parser.Offset() > lastErr {
				lastErr = parser.Offset()
				continue
			}
			return findings

		case css.BeginAtRuleGrammar:
			if depth == 0 {
				findings = append(findings, Finding{
					Line: lineAt(content, parser.Offset()),
					Kind: WarnAtRule,
					Text: fmt.Sprintf("%s block is prefixed like a plain rule and will not scope as intended", atRuleText(data, parser.Values())),
				})
			}
			depth++

		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			if depth > 0 {
				depth--
			}

		case css.BeginRulesetGrammar:
			depth++

		case css.AtRuleGrammar:
			if depth == 0 {
				findings = append(findings, Finding{
					Line: lineAt(content, parser.Offset()),
					Kind: WarnAtRule,
					Text: fmt.Sprintf("%s statement is outside any rule and is dropped", atRuleText(data, parser.Values())),
				})
			}
		}
	}
}

// atRuleText renders "@media screen" from the at-keyword and its prelude.
func atRuleText(name []byte, values []css.Token) string {
	var b strings.Builder
	b.Write(name)
	b.WriteByte(' ')
	for _, v := range values {
		b.Write(v.Data)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// lineAt converts a byte offset into a 1-based line number.
func lineAt(content []byte, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	if offset < 0 {
		offset = 0
	}
	line := bytes.Count(content[:offset], []byte{'\n'}) + 1
	// the parser offset sits past the terminating "{" or ";", which may be
	// followed by the newline already
	if offset > 0 && content[offset-1] == '\n' {
		line--
	}
	return line
}
