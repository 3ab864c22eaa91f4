package statecss

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// asciiSpace is the set trimmed from each source line. Non-ASCII spaces are
// content.
const asciiSpace = " \t\r\n\v\f"

// ruleState is the scanner position relative to rule blocks.
type ruleState int

const (
	outsideRule ruleState = iota
	insideRule
)

func (s ruleState) String() string {
	if s == insideRule {
		return "inside-rule"
	}
	return "outside-rule"
}

// ScopeStats describes one ScopeStyle pass
type ScopeStats struct {
	Lines        int   // Source lines read
	Rules        int   // Rule-opening lines rewritten
	Dropped      int   // Non-blank lines outside any rule
	DroppedRules []int // Lines holding a "{" that does not end the line
	Unterminated bool  // Input ended inside a rule
	OpenLine     int   // Opening line of the unterminated rule
}

// ScopeStyle copies the rules read from r to w, prefixing every rule-opening
// line with ".<token>-state ". Each line is right-trimmed before use.
//
// Outside a rule, a line ending in "{" opens one and every other line is
// dropped. Inside a rule, lines are copied as-is, and a line whose
// left-trimmed form starts with "}" closes the rule and is followed by a
// blank line. A "{" line inside a rule is ordinary body text.
func ScopeStyle(r io.Reader, token string, w io.Writer) (ScopeStats, error) {
	var stats ScopeStats

	prefix := "." + ScopeClass(token) + " "
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	state := outsideRule

	for {
		raw, readErr := br.ReadString('\n')
		if len(raw) > 0 {
			stats.Lines++
			line := strings.TrimRight(raw, asciiSpace)

			switch state {
			case insideRule:
				bw.WriteString(line)
				bw.WriteByte('\n')
				if strings.HasPrefix(strings.TrimLeft(line, asciiSpace), "}") {
					bw.WriteByte('\n')
					state = outsideRule
				}
			case outsideRule:
				if strings.HasSuffix(line, "{") {
					bw.WriteString(prefix)
					bw.WriteString(line)
					bw.WriteByte('\n')
					stats.Rules++
					stats.OpenLine = stats.Lines
					state = insideRule
				} else if line != "" {
					stats.Dropped++
					if strings.Contains(line, "{") {
						stats.DroppedRules = append(stats.DroppedRules, stats.Lines)
					}
				}
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return stats, fmt.Errorf("read line %d: %w", stats.Lines+1, readErr)
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("write: %w", err)
	}

	if state == insideRule {
		stats.Unterminated = true
	} else {
		stats.OpenLine = 0
	}

	return stats, nil
}
