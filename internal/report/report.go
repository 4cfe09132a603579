// Package report renders scan results and clean reports as plain text for
// human reviewers. Purely presentational; nothing here is part of the
// engine's contract surface.
package report

import (
	"fmt"
	"strings"

	"github.com/knowmarket/packguard/internal/apply"
	"github.com/knowmarket/packguard/internal/scan"
)

// FormatScan renders a scan result: status line, score, counts, and one
// severity-tagged line per flag.
func FormatScan(res *scan.Result) string {
	var b strings.Builder

	status := "SAFE TO IMPORT"
	if !res.Safe {
		status = "NOT SAFE TO IMPORT"
	}
	fmt.Fprintf(&b, "%s  (threat score %.2f, content type %s)\n", status, res.ThreatScore, res.ContentType)

	phase := "triage"
	if res.NeedsDeep {
		phase = "triage+deep"
	}
	fmt.Fprintf(&b, "Phase: %s   Reviewed by: %s\n", phase, res.ReviewedBy)

	s := res.Summary
	fmt.Fprintf(&b, "Flags: %d total - %d blocked, %d warned, %d passed, %d overridden\n",
		s.Total, s.Blocked, s.Warned, s.Passed, s.Overridden)

	writeFlags(&b, res.Flags)
	return b.String()
}

// FormatClean renders the action-application report.
func FormatClean(rep *apply.Report) string {
	var b strings.Builder

	if rep.Success {
		b.WriteString("Import: OK\n")
	} else {
		fmt.Fprintf(&b, "Import: FAILED - %s\n", rep.Warning)
	}

	s := rep.Summary
	fmt.Fprintf(&b, "Flags: %d total - %d blocked, %d warned, %d overridden\n",
		s.Total, s.Blocked, s.Warned, s.Overridden)
	fmt.Fprintf(&b, "Insights removed: %d\n", s.InsightsRemoved)

	if len(rep.RemovedInsights) > 0 {
		fmt.Fprintf(&b, "Removed insight ids: %s\n", strings.Join(rep.RemovedInsights, ", "))
	}
	if len(rep.RemovedAttachments) > 0 {
		fmt.Fprintf(&b, "Removed attachments: %s\n", strings.Join(rep.RemovedAttachments, ", "))
	}

	writeFlags(&b, rep.Flags)
	return b.String()
}

func writeFlags(b *strings.Builder, flags []scan.ThreatFlag) {
	if len(flags) == 0 {
		b.WriteString("No flags raised.\n")
		return
	}
	for _, f := range flags {
		mark := ""
		if f.Overridden {
			mark = " (overridden)"
		}
		fmt.Fprintf(b, "  [%s] %s @ %s - %s%s\n",
			strings.ToUpper(string(f.Severity)), f.RuleID, f.Location, f.Message, mark)
		if f.Snippet != "" {
			fmt.Fprintf(b, "          %q\n", f.Snippet)
		}
	}
}
