package scan

import (
	"strings"
	"testing"

	"github.com/knowmarket/packguard/internal/pack"
	"github.com/knowmarket/packguard/internal/rules"
	"github.com/knowmarket/packguard/internal/tone"
)

func TestValidateSchema_MissingFields(t *testing.T) {
	p := benignPackage(1)
	p.Title = ""
	p.Seller.Address = ""
	p.License.Usage = ""

	f := &flagger{}
	flags := f.validateSchema(p, ExtractTargets(p, pack.ContentKnowledge))

	if got := countFlags(flags, "schema:missing-field"); got != 3 {
		t.Fatalf("expected 3 missing-field flags, got %d: %+v", got, flags)
	}
	for _, fl := range flags {
		if fl.Severity != rules.SeverityCritical || fl.Action != rules.ActionBlock {
			t.Errorf("missing field must be a critical BLOCK, got %+v", fl)
		}
	}
}

func TestValidateSchema_CompletePackageIsClean(t *testing.T) {
	p := benignPackage(1)
	f := &flagger{}
	if flags := f.validateSchema(p, ExtractTargets(p, pack.ContentKnowledge)); len(flags) != 0 {
		t.Errorf("complete package should validate, got %+v", flags)
	}
}

func TestValidateSchema_TextSizeLimit(t *testing.T) {
	p := benignPackage(1)
	p.Attachments = []pack.Attachment{{Name: "dump.txt", Content: strings.Repeat("a", 2<<20+1)}}

	f := &flagger{}
	flags := f.validateSchema(p, ExtractTargets(p, pack.ContentKnowledge))
	if countFlags(flags, "schema:size-limit") != 1 {
		t.Errorf("oversized text should flag size-limit, got %+v", flags)
	}
}

func TestValidateImprint_RequiredFields(t *testing.T) {
	p := imprintPackage()
	p.Meta.Imprint.Catchphrases = nil
	p.Meta.Imprint.ActivationTriggers = nil

	f := &flagger{}
	flags := f.validateImprint(p, tone.Result{FirstPersonRatio: 0.1})

	if got := countFlags(flags, "imprint:missing-field"); got != 2 {
		t.Errorf("expected 2 missing-field flags, got %d: %+v", got, flags)
	}
}

func TestValidateImprint_NoMetadata(t *testing.T) {
	p := imprintPackage()
	p.Meta.Imprint = nil

	f := &flagger{}
	flags := f.validateImprint(p, tone.Result{})
	if countFlags(flags, "imprint:missing-meta") != 1 {
		t.Errorf("imprint without metadata must block, got %+v", flags)
	}
}

func TestValidateImprint_SoftLimits(t *testing.T) {
	p := imprintPackage()
	p.Meta.Imprint.Catchphrases = manyStrings("I say this", 9)
	p.Meta.Imprint.ActivationTriggers = manyStrings("when I see this", 13)
	p.Meta.Imprint.BehavioralEffects = manyStrings("I do this", 9)

	f := &flagger{}
	flags := f.validateImprint(p, tone.Result{FirstPersonRatio: 0.1, ImperativeRatio: 0.01})

	for _, id := range []string{"imprint:excess-catchphrases", "imprint:excess-triggers", "imprint:excess-effects"} {
		if countFlags(flags, id) != 1 {
			t.Errorf("expected one %s flag, got %+v", id, flags)
		}
	}
	for _, fl := range flags {
		if fl.Severity != rules.SeverityLow {
			t.Errorf("soft limit should warn at low severity, got %+v", fl)
		}
	}
}

func TestValidateImprint_ToneWarnings(t *testing.T) {
	p := imprintPackage()
	f := &flagger{}

	flags := f.validateImprint(p, tone.Result{FirstPersonRatio: 0.01, ImperativeRatio: 0.05})
	if countFlags(flags, "imprint:tone-instructional") != 1 {
		t.Errorf("low first-person ratio should warn, got %+v", flags)
	}
	if countFlags(flags, "imprint:tone-imperative") != 1 {
		t.Errorf("high imperative ratio should warn, got %+v", flags)
	}
}

func manyStrings(base string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = base
	}
	return out
}
