package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"safety-tracker-backend/internal/reconcile"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func parseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "", formatText:
		return formatText, nil
	case formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported --format %q (want text, json or yaml)", s)
	}
}

func renderReport(w io.Writer, report *reconcile.Report, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(w, report)
	}
}

func renderText(w io.Writer, report *reconcile.Report) error {
	mode := "applied"
	if report.DryRun {
		mode = "dry run, nothing written"
	}
	fmt.Fprintf(w, "Import of %s by %s (%s)\n", orDash(report.Source), orDash(report.Identity), mode)
	fmt.Fprintf(w, "Finished in %s\n\n", report.Duration().Round(time.Millisecond))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"KIND"}
	for _, outcome := range reconcile.Outcomes {
		header = append(header, strings.ToUpper(string(outcome)))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, kind := range reconcile.Kinds {
		counts := report.CountsFor(kind)
		row := []string{string(kind)}
		for _, outcome := range reconcile.Outcomes {
			row = append(row, fmt.Sprint(counts.Get(outcome)))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(report.Sheets) > 0 {
		fmt.Fprintln(w, "\nSheets:")
		for _, s := range report.Sheets {
			fmt.Fprintf(w, "  %s [%s] rows=%d candidates=%d", s.Name, s.KindName, s.Rows, s.Candidates)
			if len(s.Unresolved) > 0 {
				fmt.Fprintf(w, " unresolved=%s", strings.Join(s.Unresolved, ","))
			}
			fmt.Fprintln(w)
		}
	}

	if len(report.Diagnostics) == 0 {
		_, err := fmt.Fprintln(w, "\nNo diagnostics.")
		return err
	}
	fmt.Fprintf(w, "\nDiagnostics (%d):\n", len(report.Diagnostics))
	for _, issue := range report.Diagnostics {
		fmt.Fprintf(w, "  - %s\n", issue.Error())
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
