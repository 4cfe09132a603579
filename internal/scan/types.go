// Package scan implements the two-phase safety pipeline: target extraction,
// rule evaluation, programmatic checks, schema validation, triage→deep
// escalation, flag merging, and risk scoring. A scan is a pure computation
// over an immutable package; adversarial content produces flags, never errors.
package scan

import (
	"time"

	"github.com/knowmarket/packguard/internal/pack"
	"github.com/knowmarket/packguard/internal/rules"
)

// Mode selects how far the pipeline runs.
type Mode string

const (
	// ModeAuto runs triage and escalates to deep only when triage surfaces
	// anything above low severity.
	ModeAuto Mode = "auto"
	// ModeDeep forces the full rule catalog regardless of triage findings.
	ModeDeep Mode = "deep"
)

// Options configure a single scan invocation.
type Options struct {
	// ContentType overrides the package's own metadata tag when set.
	ContentType pack.ContentType
	// Mode defaults to ModeAuto.
	Mode Mode
}

// ThreatFlag records one rule firing on one location.
type ThreatFlag struct {
	ID       string         `json:"id"`
	RuleID   string         `json:"rule_id"`
	Severity rules.Severity `json:"severity"`
	Category rules.Category `json:"category"`
	Message  string         `json:"message"`
	Location string         `json:"location"`
	// Snippet is a masked excerpt of the matched text, never the full match.
	Snippet string       `json:"snippet,omitempty"`
	Action  rules.Action `json:"action"`
	// Overridden marks a flag a caller elected to force-accept; overridden
	// flags never remove content and are excluded from scoring.
	Overridden bool    `json:"overridden,omitempty"`
	Weight     float64 `json:"weight"`
}

// Active reports whether the flag still participates in scoring and removal.
func (f ThreatFlag) Active() bool { return !f.Overridden }

// Summary holds the flag counts of a scan or clean report.
type Summary struct {
	Total           int `json:"total"`
	Blocked         int `json:"blocked"`
	Warned          int `json:"warned"`
	Passed          int `json:"passed"`
	Overridden      int `json:"overridden"`
	InsightsRemoved int `json:"insights_removed"`
}

// Result is the outcome of one scan invocation. It is ephemeral: consumed
// by the action applicator or rendered for a human reviewer, never stored
// by the engine itself.
type Result struct {
	Flags       []ThreatFlag     `json:"flags"`
	Summary     Summary          `json:"summary"`
	ThreatScore float64          `json:"threat_score"`
	Safe        bool             `json:"safe_to_import"`
	NeedsDeep   bool             `json:"needs_deep"`
	ContentType pack.ContentType `json:"content_type"`
	ReviewedBy  string           `json:"reviewed_by"`
	ReviewedAt  time.Time        `json:"reviewed_at"`
}
