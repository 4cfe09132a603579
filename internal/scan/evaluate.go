package scan

import (
	"fmt"

	"github.com/knowmarket/packguard/internal/pack"
	"github.com/knowmarket/packguard/internal/redact"
	"github.com/knowmarket/packguard/internal/rules"
	"github.com/knowmarket/packguard/internal/tone"
)

// snippetMax caps how much matched text a flag may carry. Longer matches are
// stored as a head+tail excerpt so the report never reproduces a full payload.
const snippetMax = 80

// flagger issues flags with scan-local sequence numbers, so flag IDs are
// deterministic for a given package and options.
type flagger struct {
	seq int
}

func (f *flagger) flag(ruleID string, sev rules.Severity, cat rules.Category, msg, location, snippet string, action rules.Action) ThreatFlag {
	if action == "" {
		action = rules.DefaultAction(sev)
	}
	f.seq++
	return ThreatFlag{
		ID:       fmt.Sprintf("%s-%d", ruleID, f.seq),
		RuleID:   ruleID,
		Severity: sev,
		Category: cat,
		Message:  msg,
		Location: location,
		Snippet:  snippet,
		Action:   action,
		Weight:   sev.Weight(),
	}
}

// evaluateRules applies a rule subset to the targets. Context-gated rules
// only fire when their companion pattern matches the same target text;
// suppressible rules are waived entirely for imprint content whose tone
// reads as personality narration and not injection.
func (f *flagger) evaluateRules(targets []Target, ruleSet []rules.ThreatRule, ct pack.ContentType, tn tone.Result) []ThreatFlag {
	var flags []ThreatFlag

	suppress := ct == pack.ContentImprint && tn.IsPersonality && !tn.IsInjection

	for _, t := range targets {
		for _, rule := range ruleSet {
			if rule.Suppressible && suppress {
				continue
			}
			if rule.Context != nil && !rule.Context.MatchString(t.Text) {
				continue
			}
			for _, match := range rule.Pattern.FindAllString(t.Text, -1) {
				flags = append(flags, f.flag(
					rule.ID, rule.Severity, rule.Category, rule.Message,
					t.Location, maskSnippet(match), rule.EffectiveAction(),
				))
			}
		}
	}

	return flags
}

// maskSnippet redacts secret-shaped content from a match and truncates it to
// a head+tail excerpt of at most snippetMax characters.
func maskSnippet(match string) string {
	masked := redact.Redact(match)
	r := []rune(masked)
	if len(r) <= snippetMax {
		return masked
	}
	return string(r[:48]) + "…" + string(r[len(r)-31:])
}
