package statecss

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeStyle(t *testing.T) {
	tests := []struct {
		name  string
		token string
		css   string
		want  string
	}{
		{
			name:  "single rule",
			token: "abc",
			css:   "foo {\n  color: red;\n}\n",
			want:  ".abc-state foo {\n  color: red;\n}\n\n",
		},
		{
			name:  "selector list",
			token: "tabs",
			css:   "h1, h2 {\n  margin: 0;\n}\n",
			want:  ".tabs-state h1, h2 {\n  margin: 0;\n}\n\n",
		},
		{
			name:  "text between rules is dropped",
			token: "map",
			css:   "/* map screen */\n\n.pin {\n  width: 4px;\n}\n\nstray text\n.label {\n  font-size: 9px;\n}\n",
			want:  ".map-state .pin {\n  width: 4px;\n}\n\n.map-state .label {\n  font-size: 9px;\n}\n\n",
		},
		{
			name:  "trailing whitespace stripped, indentation kept",
			token: "a",
			css:   ".x {   \n\t  padding: 1px;  \t\n}  \n",
			want:  ".a-state .x {\n\t  padding: 1px;\n}\n\n",
		},
		{
			name:  "crlf line endings",
			token: "a",
			css:   ".x {\r\n  color: blue;\r\n}\r\n",
			want:  ".a-state .x {\n  color: blue;\n}\n\n",
		},
		{
			name:  "no trailing newline",
			token: "a",
			css:   ".x {\n  color: blue;\n}",
			want:  ".a-state .x {\n  color: blue;\n}\n\n",
		},
		{
			name:  "indented closing brace with trailing text",
			token: "a",
			css:   ".x {\n  color: blue;\n   } /* end */\n",
			want:  ".a-state .x {\n  color: blue;\n   } /* end */\n\n",
		},
		{
			name:  "nested block is not tracked",
			token: "t",
			css:   "@media (max-width: 600px) {\n  .a {\n    color: red;\n  }\n}\n",
			want:  ".t-state @media (max-width: 600px) {\n  .a {\n    color: red;\n  }\n\n",
		},
		{
			name:  "single line rule is dropped",
			token: "a",
			css:   "foo { color: red; }\n",
			want:  "",
		},
		{
			name:  "empty input",
			token: "a",
			css:   "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := ScopeStyle(strings.NewReader(tt.css), tt.token, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestScopeStyle_Stats(t *testing.T) {
	css := `/* header */
.a {
  color: red;
}
b { margin: 0; }

.c {
  top: 0;
`
	var out bytes.Buffer
	stats, err := ScopeStyle(strings.NewReader(css), "s", &out)
	require.NoError(t, err)

	assert.Equal(t, 8, stats.Lines)
	assert.Equal(t, 2, stats.Rules)
	assert.Equal(t, 2, stats.Dropped) // comment and the one-line rule
	assert.Equal(t, []int{5}, stats.DroppedRules)
	assert.True(t, stats.Unterminated)
	assert.Equal(t, 7, stats.OpenLine)
	assert.Equal(t, ".s-state .a {\n  color: red;\n}\n\n.s-state .c {\n  top: 0;\n", out.String())
}

func TestScopeStyle_ClosedFileHasNoOpenLine(t *testing.T) {
	var out bytes.Buffer
	stats, err := ScopeStyle(strings.NewReader(".a {\n}\n"), "s", &out)
	require.NoError(t, err)
	assert.False(t, stats.Unterminated)
	assert.Zero(t, stats.OpenLine)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestScopeStyle_ReadError(t *testing.T) {
	var out bytes.Buffer
	_, err := ScopeStyle(failingReader{}, "s", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
}

func TestScopeClass(t *testing.T) {
	assert.Equal(t, "tabs-state", ScopeClass("tabs"))
	assert.Equal(t, "tabs-state", StyleFile{Token: "tabs"}.Class())
}
