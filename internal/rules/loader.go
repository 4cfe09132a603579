package rules

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ruleFile is the YAML shape of a user-supplied catalog extension.
type ruleFile struct {
	Version string     `yaml:"version"`
	Rules   []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	ID           string `yaml:"id"`
	Severity     string `yaml:"severity"`
	Category     string `yaml:"category"`
	Message      string `yaml:"message"`
	Pattern      string `yaml:"pattern"`
	Context      string `yaml:"context,omitempty"`
	Action       string `yaml:"action,omitempty"`
	Triage       bool   `yaml:"triage,omitempty"`
	Suppressible bool   `yaml:"suppress_for_imprint,omitempty"`
}

// Load reads the catalog at path and merges it onto the built-in rules.
// A missing file is not an error: the built-in catalog applies unchanged.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	extra := make([]ThreatRule, 0, len(file.Rules))
	for _, spec := range file.Rules {
		rule, err := compileRule(spec)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		extra = append(extra, rule)
	}

	return Default().Merge(extra), nil
}

func compileRule(spec ruleSpec) (ThreatRule, error) {
	if spec.ID == "" {
		return ThreatRule{}, fmt.Errorf("rule missing id")
	}
	if spec.Pattern == "" {
		return ThreatRule{}, fmt.Errorf("rule %s: missing pattern", spec.ID)
	}

	sev := Severity(spec.Severity)
	if sev.Rank() == 0 {
		return ThreatRule{}, fmt.Errorf("rule %s: unknown severity %q", spec.ID, spec.Severity)
	}

	pattern, err := regexp.Compile(spec.Pattern)
	if err != nil {
		return ThreatRule{}, fmt.Errorf("rule %s: bad pattern: %w", spec.ID, err)
	}

	var context *regexp.Regexp
	if spec.Context != "" {
		context, err = regexp.Compile(spec.Context)
		if err != nil {
			return ThreatRule{}, fmt.Errorf("rule %s: bad context pattern: %w", spec.ID, err)
		}
	}

	var action Action
	switch spec.Action {
	case "":
	case string(ActionBlock), string(ActionWarn), string(ActionPass):
		action = Action(spec.Action)
	default:
		return ThreatRule{}, fmt.Errorf("rule %s: unknown action %q", spec.ID, spec.Action)
	}

	return ThreatRule{
		ID:           spec.ID,
		Severity:     sev,
		Category:     Category(spec.Category),
		Message:      spec.Message,
		Pattern:      pattern,
		Context:      context,
		Action:       action,
		Triage:       spec.Triage,
		Suppressible: spec.Suppressible,
	}, nil
}
