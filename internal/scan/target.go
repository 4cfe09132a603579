package scan

import (
	"fmt"
	"strings"

	"github.com/knowmarket/packguard/internal/pack"
)

// Target is one human-authored text surface of a package, tagged with a
// location string that later correlates flags back to removable units.
type Target struct {
	Location string
	Text     string
}

// ExtractTargets flattens every scannable text surface of a package into an
// ordered (location, text) list. Pure function; missing optional fields are
// simply absent from the output.
func ExtractTargets(p *pack.Package, ct pack.ContentType) []Target {
	var targets []Target

	add := func(location, text string) {
		if text != "" {
			targets = append(targets, Target{Location: location, Text: text})
		}
	}

	add("title", p.Title)
	add("description", p.Description)
	add("query", p.Extraction.Query)

	for _, ins := range p.Insights {
		add(insightLocation(ins.ID, "title"), ins.Title)
		add(insightLocation(ins.ID, "content"), ins.Content)
	}

	for _, att := range p.Attachments {
		add("attachment:"+att.Name, att.Content)
	}

	if ct == pack.ContentImprint && p.Meta != nil && p.Meta.Imprint != nil {
		im := p.Meta.Imprint
		addList := func(kind string, items []string) {
			for i, item := range items {
				add(fmt.Sprintf("imprint:%s[%d]", kind, i), item)
			}
		}
		addList("catchphrase", im.Catchphrases)
		addList("trigger", im.ActivationTriggers)
		addList("effect", im.BehavioralEffects)
		addList("trait", im.Traits)
		addList("forbidden", im.ForbiddenContexts)
		addList("compat", im.Compatibility)
		add("imprint:series", im.Series)
	}

	return targets
}

// JoinText concatenates all target texts for whole-package analyses such as
// the tone classifier.
func JoinText(targets []Target) string {
	parts := make([]string, len(targets))
	for i, t := range targets {
		parts[i] = t.Text
	}
	return strings.Join(parts, "\n")
}

// TotalTextSize is the byte count of all scannable text in the package.
func TotalTextSize(targets []Target) int {
	size := 0
	for _, t := range targets {
		size += len(t.Text)
	}
	return size
}

func insightLocation(id, field string) string {
	return "insight:" + id + ":" + field
}

// InsightIDFromLocation extracts the insight id from an "insight:<id>:<field>"
// location. Returns false for locations that do not belong to an insight.
func InsightIDFromLocation(location string) (string, bool) {
	if !strings.HasPrefix(location, "insight:") {
		return "", false
	}
	rest := location[len("insight:"):]
	idx := strings.LastIndex(rest, ":")
	if idx <= 0 {
		return "", false
	}
	return rest[:idx], true
}

// AttachmentNameFromLocation extracts the attachment name from an
// "attachment:<name>" location.
func AttachmentNameFromLocation(location string) (string, bool) {
	if !strings.HasPrefix(location, "attachment:") {
		return "", false
	}
	return location[len("attachment:"):], true
}
