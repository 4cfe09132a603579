package scan

import (
	"fmt"

	"github.com/knowmarket/packguard/internal/pack"
	"github.com/knowmarket/packguard/internal/rules"
	"github.com/knowmarket/packguard/internal/tone"
)

// Package shape and size limits. Oversized packages are rejected outright:
// the text cap exists specifically to bound worst-case regex evaluation cost.
const (
	maxInsights      = 200
	maxTotalText     = 2 << 20 // 2 MiB of scannable text
	softInsightLimit = 50

	maxCatchphrases = 8
	maxTriggers     = 12
	maxEffects      = 8

	imprintFirstPersonMin = 0.02
	imprintImperativeMax  = 0.04
)

// validateSchema checks that required package fields exist and the package is
// within size limits. Missing fields and limit breaches surface as critical
// BLOCK flags inside the normal result, never as errors, so callers always
// get a result object even for garbage input.
func (f *flagger) validateSchema(p *pack.Package, targets []Target) []ThreatFlag {
	var flags []ThreatFlag

	missing := func(field string) {
		flags = append(flags, f.flag(
			"schema:missing-field", rules.SeverityCritical, rules.CategorySchema,
			fmt.Sprintf("Required field %q is missing", field),
			"package", field, rules.ActionBlock,
		))
	}

	if p.SchemaVersion == "" {
		missing("schema_version")
	}
	if p.ID == "" {
		missing("id")
	}
	if p.Title == "" {
		missing("title")
	}
	if len(p.Topics) == 0 {
		missing("topics")
	}
	if p.Audience == "" {
		missing("audience")
	}
	if p.CreatedAt.IsZero() {
		missing("created_at")
	}
	if p.UpdatedAt.IsZero() {
		missing("updated_at")
	}
	if p.Seller.Name == "" {
		missing("seller.name")
	}
	if p.Seller.Address == "" {
		missing("seller.address")
	}
	if p.Extraction.Query == "" {
		missing("extraction.query")
	}
	if p.Insights == nil {
		missing("insights")
	}
	if p.License.Usage == "" {
		missing("license.usage")
	}

	if len(p.Insights) > maxInsights {
		flags = append(flags, f.flag(
			"schema:size-limit", rules.SeverityCritical, rules.CategorySchema,
			fmt.Sprintf("Package has %d insights, above the %d limit", len(p.Insights), maxInsights),
			"package", "", rules.ActionBlock,
		))
	}
	if size := TotalTextSize(targets); size > maxTotalText {
		flags = append(flags, f.flag(
			"schema:size-limit", rules.SeverityCritical, rules.CategorySchema,
			fmt.Sprintf("Package carries %d bytes of scannable text, above the %d limit", size, maxTotalText),
			"package", "text", rules.ActionBlock,
		))
	}

	return flags
}

// validateImprint checks the personality metadata variant: the three required
// arrays must be non-empty (critical BLOCK per missing field), and oversized
// or tonally-off metadata earns low-severity warnings.
func (f *flagger) validateImprint(p *pack.Package, tn tone.Result) []ThreatFlag {
	var flags []ThreatFlag

	if p.Meta == nil || p.Meta.Imprint == nil {
		flags = append(flags, f.flag(
			"imprint:missing-meta", rules.SeverityCritical, rules.CategorySchema,
			"Package is declared personality content but carries no imprint metadata",
			"package", "", rules.ActionBlock,
		))
		return flags
	}

	im := p.Meta.Imprint

	requireList := func(field string, items []string) {
		if len(items) == 0 {
			flags = append(flags, f.flag(
				"imprint:missing-field", rules.SeverityCritical, rules.CategorySchema,
				fmt.Sprintf("Imprint metadata field %q must be a non-empty array", field),
				"package", field, rules.ActionBlock,
			))
		}
	}
	requireList("behavioral_effects", im.BehavioralEffects)
	requireList("activation_triggers", im.ActivationTriggers)
	requireList("catchphrases", im.Catchphrases)

	warn := func(ruleID, msg string) {
		flags = append(flags, f.flag(
			ruleID, rules.SeverityLow, rules.CategorySchema,
			msg, "package", "", rules.ActionWarn,
		))
	}

	if len(im.Catchphrases) > maxCatchphrases {
		warn("imprint:excess-catchphrases",
			fmt.Sprintf("%d catchphrases, above the recommended %d", len(im.Catchphrases), maxCatchphrases))
	}
	if len(im.ActivationTriggers) > maxTriggers {
		warn("imprint:excess-triggers",
			fmt.Sprintf("%d activation triggers, above the recommended %d", len(im.ActivationTriggers), maxTriggers))
	}
	if len(im.BehavioralEffects) > maxEffects {
		warn("imprint:excess-effects",
			fmt.Sprintf("%d behavioral effects, above the recommended %d", len(im.BehavioralEffects), maxEffects))
	}

	if tn.FirstPersonRatio < imprintFirstPersonMin {
		warn("imprint:tone-instructional",
			fmt.Sprintf("First-person ratio %.3f reads too instructional for personality content", tn.FirstPersonRatio))
	}
	if tn.ImperativeRatio > imprintImperativeMax {
		warn("imprint:tone-imperative",
			fmt.Sprintf("Imperative ratio %.3f reads too injection-like for personality content", tn.ImperativeRatio))
	}

	return flags
}
