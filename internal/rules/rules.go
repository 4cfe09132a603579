// Package rules defines the threat-rule catalog: an immutable table of
// pattern-matching rules the scanner evaluates against package content.
// Rules are plain data records (pattern + severity + action + phase flags)
// so new detections can be added without touching evaluator logic.
package rules

import "regexp"

// Severity grades how dangerous a matched rule is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank orders severities for comparison. Higher is worse.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Weight is the scoring contribution of one flag at this severity.
func (s Severity) Weight() float64 {
	switch s {
	case SeverityCritical:
		return 0.35
	case SeverityHigh:
		return 0.20
	case SeverityMedium:
		return 0.10
	case SeverityLow:
		return 0.05
	default:
		return 0
	}
}

// Category groups rules by the kind of threat they detect. The risk scorer
// applies category bonuses on top of per-flag severity weights.
type Category string

const (
	CategoryInjection    Category = "prompt-injection"
	CategoryExfiltration Category = "data-exfiltration"
	CategoryObfuscation  Category = "obfuscation"
	CategoryPrivacy      Category = "privacy"
	CategorySchema       Category = "schema"
	CategoryStructure    Category = "structure"
	CategoryTone         Category = "tone"
)

// Action is the remediation a flag demands.
type Action string

const (
	ActionBlock Action = "BLOCK"
	ActionWarn  Action = "WARN"
	ActionPass  Action = "PASS"
)

// DefaultAction maps a severity to its remediation when a rule carries no
// explicit override: critical and high block, everything else warns.
func DefaultAction(s Severity) Action {
	switch s {
	case SeverityCritical, SeverityHigh:
		return ActionBlock
	default:
		return ActionWarn
	}
}

// ThreatRule is one detection pattern in the catalog.
type ThreatRule struct {
	// ID is "<category-tag>:<name>", e.g. "inject:role-hijack".
	ID       string
	Severity Severity
	Category Category
	// Message is the human-readable explanation shown on the flag.
	Message string
	// Pattern is the primary match expression.
	Pattern *regexp.Regexp
	// Context, when set, gates the rule: it fires only if this companion
	// pattern also matches the same target text. Used to silence high-noise
	// patterns (bare fetch calls, tx-hash-shaped hex) absent corroboration.
	Context *regexp.Regexp
	// Action overrides DefaultAction(Severity) when non-empty.
	Action Action
	// Triage marks the rule as part of the cheap first-pass subset.
	Triage bool
	// Suppressible rules are waived for imprint content whose tone reads as
	// personality narration rather than instruction.
	Suppressible bool
}

// EffectiveAction resolves the rule's action: explicit override first,
// default-by-severity otherwise.
func (r ThreatRule) EffectiveAction() Action {
	if r.Action != "" {
		return r.Action
	}
	return DefaultAction(r.Severity)
}

// Catalog is an immutable, injected set of threat rules.
type Catalog struct {
	rules []ThreatRule
}

// NewCatalog builds a catalog from the given rules.
func NewCatalog(rules []ThreatRule) *Catalog {
	return &Catalog{rules: rules}
}

// All returns every rule in the catalog.
func (c *Catalog) All() []ThreatRule {
	return c.rules
}

// Triage returns the reduced subset eligible for the triage phase.
func (c *Catalog) Triage() []ThreatRule {
	var subset []ThreatRule
	for _, r := range c.rules {
		if r.Triage {
			subset = append(subset, r)
		}
	}
	return subset
}

// Merge returns a new catalog with extra rules appended after the built-ins.
func (c *Catalog) Merge(extra []ThreatRule) *Catalog {
	merged := make([]ThreatRule, 0, len(c.rules)+len(extra))
	merged = append(merged, c.rules...)
	merged = append(merged, extra...)
	return &Catalog{rules: merged}
}
