// Package apply implements the action-application step: given a scanned
// package and its flags, it produces a cleaned package with blocked insights
// and attachments removed, plus a human-auditable report. The original
// package value is never mutated.
package apply

import (
	"github.com/knowmarket/packguard/internal/pack"
	"github.com/knowmarket/packguard/internal/rules"
	"github.com/knowmarket/packguard/internal/scan"
)

// Report describes what action application did to a package. An all-insights
// -blocked outcome is a non-throwing failure: Success is false and Warning
// explains why, so the caller can decide whether to retry with an override.
type Report struct {
	Success            bool              `json:"success"`
	Warning            string            `json:"warning,omitempty"`
	Summary            scan.Summary      `json:"summary"`
	Flags              []scan.ThreatFlag `json:"flags"`
	RemovedInsights    []string          `json:"removed_insights,omitempty"`
	RemovedAttachments []string          `json:"removed_attachments,omitempty"`
}

// Actions filters out every insight and attachment carrying a non-overridden
// BLOCK flag, preserving the order of survivors, and recomputes the summary.
// Callers may pre-process flags to set Overridden and downgrade BLOCK to WARN
// (the force-import path); overridden flags never remove content regardless
// of their nominal severity.
func Actions(p *pack.Package, flags []scan.ThreatFlag) (*pack.Package, *Report) {
	blockedInsights := make(map[string]bool)
	blockedAttachments := make(map[string]bool)

	for _, f := range flags {
		if !f.Active() || f.Action != rules.ActionBlock {
			continue
		}
		if id, ok := scan.InsightIDFromLocation(f.Location); ok {
			blockedInsights[id] = true
		}
		if name, ok := scan.AttachmentNameFromLocation(f.Location); ok {
			blockedAttachments[name] = true
		}
	}

	cleaned := *p

	var removedInsights []string
	if len(blockedInsights) > 0 {
		kept := make([]pack.Insight, 0, len(p.Insights))
		for _, ins := range p.Insights {
			if blockedInsights[ins.ID] {
				removedInsights = append(removedInsights, ins.ID)
				continue
			}
			kept = append(kept, ins)
		}
		cleaned.Insights = kept
	}

	var removedAttachments []string
	if len(blockedAttachments) > 0 {
		kept := make([]pack.Attachment, 0, len(p.Attachments))
		for _, att := range p.Attachments {
			if blockedAttachments[att.Name] {
				removedAttachments = append(removedAttachments, att.Name)
				continue
			}
			kept = append(kept, att)
		}
		cleaned.Attachments = kept
	}

	report := &Report{
		Success:            true,
		Summary:            scan.Summarize(flags, len(p.Insights)),
		Flags:              flags,
		RemovedInsights:    removedInsights,
		RemovedAttachments: removedAttachments,
	}

	if len(p.Insights) > 0 && len(cleaned.Insights) == 0 {
		report.Success = false
		report.Warning = "every insight in the package was blocked; nothing remains to import"
	}

	return &cleaned, report
}

// Override marks every BLOCK flag as overridden and downgrades it to WARN.
// This is the force-import path: the returned flags no longer remove content
// and no longer count toward the threat score.
func Override(flags []scan.ThreatFlag) []scan.ThreatFlag {
	out := make([]scan.ThreatFlag, len(flags))
	copy(out, flags)
	for i := range out {
		if out[i].Action == rules.ActionBlock {
			out[i].Overridden = true
			out[i].Action = rules.ActionWarn
		}
	}
	return out
}
