package scan

import (
	"testing"

	"github.com/knowmarket/packguard/internal/pack"
)

func TestExtractTargets_CoversAllSurfaces(t *testing.T) {
	p := benignPackage(2)
	p.Attachments = []pack.Attachment{{Name: "notes.md", Content: "appendix"}}

	targets := ExtractTargets(p, pack.ContentKnowledge)

	want := []string{
		"title", "description", "query",
		"insight:ins-000:title", "insight:ins-000:content",
		"insight:ins-001:title", "insight:ins-001:content",
		"attachment:notes.md",
	}
	if len(targets) != len(want) {
		t.Fatalf("got %d targets, want %d: %+v", len(targets), len(want), targets)
	}
	for i, loc := range want {
		if targets[i].Location != loc {
			t.Errorf("target %d location = %q, want %q", i, targets[i].Location, loc)
		}
	}
}

func TestExtractTargets_OmitsMissingOptionalFields(t *testing.T) {
	p := benignPackage(1)
	p.Description = ""

	for _, tgt := range ExtractTargets(p, pack.ContentKnowledge) {
		if tgt.Location == "description" {
			t.Error("empty description should be omitted")
		}
		if tgt.Text == "" {
			t.Errorf("target %s carries empty text", tgt.Location)
		}
	}
}

func TestExtractTargets_ImprintSurfaces(t *testing.T) {
	p := imprintPackage()
	targets := ExtractTargets(p, pack.ContentImprint)

	locations := map[string]bool{}
	for _, tgt := range targets {
		locations[tgt.Location] = true
	}

	for _, loc := range []string{
		"imprint:catchphrase[0]", "imprint:catchphrase[1]",
		"imprint:trigger[0]", "imprint:effect[0]",
		"imprint:trait[0]", "imprint:trait[1]",
	} {
		if !locations[loc] {
			t.Errorf("missing imprint target %s", loc)
		}
	}
}

func TestExtractTargets_ImprintIgnoredForKnowledge(t *testing.T) {
	p := imprintPackage()
	for _, tgt := range ExtractTargets(p, pack.ContentKnowledge) {
		if len(tgt.Location) >= 8 && tgt.Location[:8] == "imprint:" {
			t.Errorf("imprint surface %s extracted for knowledge content", tgt.Location)
		}
	}
}

func TestInsightIDFromLocation(t *testing.T) {
	tests := []struct {
		location string
		wantID   string
		wantOK   bool
	}{
		{"insight:ins-042:content", "ins-042", true},
		{"insight:ins-042:title", "ins-042", true},
		{"attachment:notes.md", "", false},
		{"title", "", false},
		{"package", "", false},
	}

	for _, tt := range tests {
		id, ok := InsightIDFromLocation(tt.location)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("InsightIDFromLocation(%q) = (%q, %v), want (%q, %v)",
				tt.location, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestAttachmentNameFromLocation(t *testing.T) {
	name, ok := AttachmentNameFromLocation("attachment:notes.md")
	if !ok || name != "notes.md" {
		t.Errorf("got (%q, %v), want (notes.md, true)", name, ok)
	}
	if _, ok := AttachmentNameFromLocation("insight:a:content"); ok {
		t.Error("insight location should not parse as attachment")
	}
}
