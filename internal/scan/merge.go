package scan

// MergeFlags unions flag groups from schema validation, triage, and deep
// phases. Duplicates (same rule, location, and snippet) collapse to the
// single highest-severity instance, preserving first-seen order.
func MergeFlags(groups ...[]ThreatFlag) []ThreatFlag {
	var merged []ThreatFlag
	index := make(map[string]int)

	for _, group := range groups {
		for _, flag := range group {
			key := flag.RuleID + "|" + flag.Location + "|" + flag.Snippet
			if at, seen := index[key]; seen {
				if flag.Severity.Rank() > merged[at].Severity.Rank() {
					merged[at] = flag
				}
				continue
			}
			index[key] = len(merged)
			merged = append(merged, flag)
		}
	}

	return merged
}
