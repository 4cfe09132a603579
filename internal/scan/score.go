package scan

import "github.com/knowmarket/packguard/internal/rules"

// Verdict thresholds. The critical-severity veto is an independent hard
// gate: one definitive injection or exfiltration signal must never be
// diluted by many harmless flags.
const (
	safeScoreMax = 0.6

	injectionBonus    = 0.20
	exfiltrationBonus = 0.20
	obfuscationBonus  = 0.10
	removedFracWeight = 0.20
)

// ScoreFlags converts the merged flag set into a bounded [0,1] threat score
// and the safe-to-import verdict. Overridden flags do not count.
func ScoreFlags(flags []ThreatFlag, insightCount int) (score float64, safe bool) {
	categories := make(map[rules.Category]bool)
	hasCritical := false

	for _, f := range flags {
		if !f.Active() {
			continue
		}
		score += f.Severity.Weight()
		categories[f.Category] = true
		if f.Severity == rules.SeverityCritical {
			hasCritical = true
		}
	}

	if categories[rules.CategoryInjection] {
		score += injectionBonus
	}
	if categories[rules.CategoryExfiltration] {
		score += exfiltrationBonus
	}
	if categories[rules.CategoryObfuscation] {
		score += obfuscationBonus
	}

	divisor := insightCount
	if divisor == 0 {
		divisor = 1
	}
	blocked := len(blockedInsightIDs(flags))
	score += float64(blocked) / float64(divisor) * removedFracWeight

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}

	safe = score < safeScoreMax && !hasCritical
	return score, safe
}

// Summarize recomputes the flag counts. Overridden BLOCK flags count as
// warnings, not blocks, so a force-imported package reports WARN-equivalent
// totals.
func Summarize(flags []ThreatFlag, insightCount int) Summary {
	s := Summary{Total: len(flags)}

	for _, f := range flags {
		if f.Overridden {
			s.Overridden++
			s.Warned++
			continue
		}
		switch f.Action {
		case rules.ActionBlock:
			s.Blocked++
		case rules.ActionWarn:
			s.Warned++
		case rules.ActionPass:
			s.Passed++
		}
	}

	s.InsightsRemoved = len(blockedInsightIDs(flags))
	if s.InsightsRemoved > insightCount {
		s.InsightsRemoved = insightCount
	}

	return s
}

// blockedInsightIDs returns the distinct insight ids carrying at least one
// non-overridden BLOCK flag.
func blockedInsightIDs(flags []ThreatFlag) map[string]bool {
	ids := make(map[string]bool)
	for _, f := range flags {
		if !f.Active() || f.Action != rules.ActionBlock {
			continue
		}
		if id, ok := InsightIDFromLocation(f.Location); ok {
			ids[id] = true
		}
	}
	return ids
}
