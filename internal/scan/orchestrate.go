package scan

import (
	"fmt"
	"time"

	"github.com/knowmarket/packguard/internal/pack"
	"github.com/knowmarket/packguard/internal/rules"
	"github.com/knowmarket/packguard/internal/tone"
)

// Scanner runs the two-phase pipeline against packages using an injected,
// immutable rule catalog. A Scanner holds no per-scan state; independent
// callers may share one and scan packages in parallel.
type Scanner struct {
	catalog *rules.Catalog
}

// NewScanner creates a scanner over the given catalog.
func NewScanner(catalog *rules.Catalog) *Scanner {
	if catalog == nil {
		catalog = rules.Default()
	}
	return &Scanner{catalog: catalog}
}

// Scan evaluates one package: triage always runs; the deep phase runs when
// requested explicitly or when triage surfaces anything above low severity.
// Adversarial or malformed content is a normal input and produces flags,
// never an error.
func (s *Scanner) Scan(p *pack.Package, opts Options) *Result {
	ct := pack.ResolveContentType(p, opts.ContentType)
	targets := ExtractTargets(p, ct)
	tn := tone.Classify(JoinText(targets))

	f := &flagger{}

	schemaFlags := f.validateSchema(p, targets)
	if ct == pack.ContentImprint {
		schemaFlags = append(schemaFlags, f.validateImprint(p, tn)...)
	}

	triageFlags := s.triagePhase(f, p, targets, ct, tn)

	needsDeep := opts.Mode == ModeDeep || anyAboveLow(triageFlags)

	var deepFlags []ThreatFlag
	if needsDeep {
		deepFlags = s.deepPhase(f, targets, ct, tn)
	}

	merged := MergeFlags(schemaFlags, triageFlags, deepFlags)
	score, safe := ScoreFlags(merged, len(p.Insights))

	return &Result{
		Flags:       merged,
		Summary:     Summarize(merged, len(p.Insights)),
		ThreatScore: score,
		Safe:        safe,
		NeedsDeep:   needsDeep,
		ContentType: ct,
		ReviewedBy:  "auto",
		ReviewedAt:  time.Now().UTC(),
	}
}

// triagePhase runs the reduced rule subset, the cheap structural checks,
// the package-level insight-count soft warning, and (for imprint content)
// the tone-conflict check.
func (s *Scanner) triagePhase(f *flagger, p *pack.Package, targets []Target, ct pack.ContentType, tn tone.Result) []ThreatFlag {
	flags := f.evaluateRules(targets, s.catalog.Triage(), ct, tn)
	flags = append(flags, f.triageChecks(targets)...)

	if len(p.Insights) > softInsightLimit {
		flags = append(flags, f.flag(
			"struct:many-insights", rules.SeverityLow, rules.CategoryStructure,
			fmt.Sprintf("Package has %d insights; large packages deserve closer review", len(p.Insights)),
			"package", "", rules.ActionWarn,
		))
	}

	if ct == pack.ContentImprint {
		switch {
		case tn.IsInjection:
			flags = append(flags, f.flag(
				"tone:injection", rules.SeverityCritical, rules.CategoryTone,
				"Content is declared personality but its tone reads as instruction injection",
				"package", "", rules.ActionBlock,
			))
		case !tn.IsPersonality:
			flags = append(flags, f.flag(
				"tone:ambiguous", rules.SeverityLow, rules.CategoryTone,
				"Content is declared personality but its tone is neither narrative nor imperative",
				"package", "", rules.ActionWarn,
			))
		}
	}

	return flags
}

// deepPhase runs the full catalog plus the deep-only structural checks.
// A tone that is simultaneously personality-flavored and injection-flavored
// is a softer signal than the triage conflict and only warns.
func (s *Scanner) deepPhase(f *flagger, targets []Target, ct pack.ContentType, tn tone.Result) []ThreatFlag {
	flags := f.evaluateRules(targets, s.catalog.All(), ct, tn)
	flags = append(flags, f.deepChecks(targets)...)

	if tn.IsPersonality && tn.IsInjection {
		flags = append(flags, f.flag(
			"tone:mixed-signals", rules.SeverityMedium, rules.CategoryTone,
			"Tone carries both personality narration and imperative instruction markers",
			"package", "", rules.ActionWarn,
		))
	}

	return flags
}

func anyAboveLow(flags []ThreatFlag) bool {
	for _, f := range flags {
		if f.Severity.Rank() > rules.SeverityLow.Rank() {
			return true
		}
	}
	return false
}
