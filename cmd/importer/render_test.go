package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/normalize"
	"safety-tracker-backend/internal/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *reconcile.Report {
	started := time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)
	return &reconcile.Report{
		Source:     "legacy.xlsx",
		Identity:   "editor@example.com",
		DryRun:     true,
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
		Periods:    reconcile.Counts{Created: 2},
		Coaches:    reconcile.Counts{Created: 1, Merged: 1},
		Metrics:    reconcile.Counts{Created: 3, Skipped: 1},
		Sheets: []normalize.SheetSummary{
			{Name: "Jan 1-14", KindName: "metrics", Rows: 4, Candidates: 3, Unresolved: []string{"Comments"}},
		},
		Diagnostics: []*apperrors.ImportIssue{
			apperrors.NewImportIssue(apperrors.IssueInvalidNumeric, "metric", "Jan 1-14", 5, "%q is not a number", "n/a"),
		},
	}
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
		wantErr  bool
	}{
		{in: "", expected: formatText},
		{in: "text", expected: formatText},
		{in: " JSON ", expected: formatJSON},
		{in: "yaml", expected: formatYAML},
		{in: "csv", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseFormat(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestRenderReport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, sampleReport(), formatText))

	out := buf.String()
	assert.Contains(t, out, "Import of legacy.xlsx by editor@example.com (dry run, nothing written)")
	assert.Contains(t, out, "Finished in 1.5s")
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "MERGED")
	assert.Regexp(t, `metric\s+3\s+0\s+0\s+0\s+1`, out)
	assert.Regexp(t, `coach\s+1\s+0\s+0\s+1\s+0`, out)
	assert.Contains(t, out, "Jan 1-14 [metrics] rows=4 candidates=3 unresolved=Comments")
	assert.Contains(t, out, `Diagnostics (1):`)
	assert.Contains(t, out, `InvalidNumeric (Jan 1-14 row 5): "n/a" is not a number`)
}

func TestRenderReport_TextWithoutDiagnostics(t *testing.T) {
	report := sampleReport()
	report.DryRun = false
	report.Diagnostics = nil
	report.Sheets = nil

	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, report, formatText))

	assert.Contains(t, buf.String(), "(applied)")
	assert.Contains(t, buf.String(), "No diagnostics.")
	assert.NotContains(t, buf.String(), "Sheets:")
}

func TestRenderReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, sampleReport(), formatJSON))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "legacy.xlsx", decoded["source"])
	assert.Equal(t, true, decoded["dry_run"])
	assert.Equal(t, float64(3), decoded["metrics"].(map[string]interface{})["created"])

	diagnostics := decoded["diagnostics"].([]interface{})
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "InvalidNumeric", diagnostics[0].(map[string]interface{})["code"])
}

func TestRenderReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, sampleReport(), formatYAML))

	var decoded struct {
		Identity string           `yaml:"identity"`
		Coaches  reconcile.Counts `yaml:"coaches"`
		Sheets   []struct {
			Name string `yaml:"name"`
			Kind string `yaml:"kind"`
		} `yaml:"sheets"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "editor@example.com", decoded.Identity)
	assert.Equal(t, 1, decoded.Coaches.Merged)
	require.Len(t, decoded.Sheets, 1)
	assert.Equal(t, "metrics", decoded.Sheets[0].Kind)
}
