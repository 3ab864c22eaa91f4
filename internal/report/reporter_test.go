package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/statecss"
)

func sampleResult() *statecss.CompileResult {
	return &statecss.CompileResult{
		OutputPath:   "www/assets/css/state_styles.css",
		States:       2,
		RulesScoped:  5,
		LinesDropped: 3,
		Written:      true,
		Bytes:        420,
		Files: []statecss.StyleFile{
			{State: "tabs", Name: "tabs.css", Token: "tabs"},
			{State: "map", Name: "map.css", Token: "map"},
		},
		Warnings: []statecss.Warning{
			{File: "tabs/tabs.css", Line: 9, Kind: statecss.WarnDroppedRule, Text: "late"},
			{File: "map/map.css", Line: 2, Kind: statecss.WarnAtRule, Text: "media"},
			{File: "tabs/tabs.css", Line: 1, Kind: statecss.WarnUnterminatedRule, Text: "early"},
		},
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf, showFiles: true}
	r.PrintSummary(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "Compiled 2 style files from 2 states into www/assets/css/state_styles.css")
	assert.Contains(t, out, "Rules scoped:  5")
	assert.Contains(t, out, "Lines dropped: 3")
	assert.NotContains(t, out, "Excluded")
	assert.Contains(t, out, "tabs/tabs.css → .tabs-state")
}

func TestPrintSummary_NotWritten(t *testing.T) {
	result := sampleResult()
	result.Written = false
	result.Files = result.Files[:1]
	result.States = 1

	var buf bytes.Buffer
	r := &Reporter{w: &buf}
	r.PrintSummary(result)
	assert.Contains(t, buf.String(), "Rendered 1 style file from 1 state into")
}

func TestPrintWarnings_Sorted(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}
	result := sampleResult()
	r.PrintWarnings(result.Warnings)

	want := "\n3 warnings:\n" +
		"map/map.css:2: media (at-rule)\n" +
		"tabs/tabs.css:1: early (unterminated-rule)\n" +
		"tabs/tabs.css:9: late (dropped-rule)\n"
	assert.Equal(t, want, buf.String())

	// caller's slice is left untouched
	assert.Equal(t, 9, result.Warnings[0].Line)
}

func TestPrintWarnings_None(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}
	r.PrintWarnings(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCheck(t *testing.T) {
	tests := []struct {
		name  string
		check *statecss.CheckResult
		want  string
	}{
		{
			name:  "up to date",
			check: &statecss.CheckResult{CompileResult: &statecss.CompileResult{OutputPath: "out.css"}, UpToDate: true},
			want:  "out.css is up to date",
		},
		{
			name:  "missing",
			check: &statecss.CheckResult{CompileResult: &statecss.CompileResult{OutputPath: "out.css"}, Missing: true},
			want:  "out.css does not exist",
		},
		{
			name:  "stale",
			check: &statecss.CheckResult{CompileResult: &statecss.CompileResult{OutputPath: "out.css"}},
			want:  "out.css is stale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &Reporter{w: &buf}
			r.PrintCheck(tt.check)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	assert.Equal(t, OutputJSON, DetermineOutputFormat("json"))
	assert.Equal(t, OutputText, DetermineOutputFormat("text"))
	assert.Equal(t, OutputText, DetermineOutputFormat(""))
	assert.Equal(t, OutputText, DetermineOutputFormat("yaml"))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.True(t, out.Written)
	assert.Equal(t, 2, out.Summary.Files)
	assert.Equal(t, 5, out.Summary.RulesScoped)
	require.Len(t, out.Files, 2)
	assert.Equal(t, JSONFile{State: "tabs", File: "tabs/tabs.css", Class: "tabs-state"}, out.Files[0])
	require.Len(t, out.Warnings, 3)
	assert.Equal(t, "dropped-rule", out.Warnings[0].Kind)
	assert.NotNil(t, out.Skipped)
}

func TestWriteOutput_Text(t *testing.T) {
	var buf bytes.Buffer
	WriteOutput(&buf, sampleResult(), OutputText, Options{})
	assert.Contains(t, buf.String(), "Compiled 2 style files")
	assert.Contains(t, buf.String(), "3 warnings:")
}
