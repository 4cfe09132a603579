// Package pack defines the insight-package data model: the unit of content
// traded on the marketplace and evaluated by the scanner. Packages are
// immutable inputs to the scan pipeline; the action applicator produces a
// new filtered value rather than mutating the original.
package pack

import "time"

// InsightType tags what kind of knowledge unit an insight is.
type InsightType string

const (
	InsightDecision  InsightType = "decision"
	InsightFact      InsightType = "fact"
	InsightPlaybook  InsightType = "playbook"
	InsightHeuristic InsightType = "heuristic"
	InsightWarning   InsightType = "warning"
)

// Insight is one atomic knowledge unit inside a package. ID is unique within
// a package and is the join key used to correlate flags back to removable units.
type Insight struct {
	ID         string      `json:"id"`
	Type       InsightType `json:"type"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Confidence float64     `json:"confidence"`
	Tags       []string    `json:"tags,omitempty"`
	Evidence   []string    `json:"evidence,omitempty"`
	CreatedAt  *time.Time  `json:"created_at,omitempty"`
}

// Attachment is a named text blob shipped alongside the insights.
type Attachment struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// SellerInfo identifies the party offering the package.
type SellerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ExtractionSpec records the parameters that produced the package.
type ExtractionSpec struct {
	Query     string   `json:"query"`
	Sources   []string `json:"sources,omitempty"`
	TimeRange string   `json:"time_range,omitempty"`
}

// RedactionSummary describes what the upstream privacy pass removed.
type RedactionSummary struct {
	ItemsRedacted int      `json:"items_redacted"`
	Categories    []string `json:"categories,omitempty"`
}

// Integrity carries content-hash fields for the package payload.
type Integrity struct {
	ContentHash string `json:"content_hash,omitempty"`
	Algorithm   string `json:"algorithm,omitempty"`
}

// LicenseTerms states what the buyer may do with the content.
type LicenseTerms struct {
	Usage        string `json:"usage"`
	Resale       bool   `json:"resale"`
	Attribution  bool   `json:"attribution"`
	ExpiresAfter string `json:"expires_after,omitempty"`
}

// StrengthTier grades how strongly imprint content shapes behavior.
type StrengthTier string

const (
	StrengthSubtle StrengthTier = "subtle"
	StrengthMedium StrengthTier = "medium"
	StrengthStrong StrengthTier = "strong"
)

// ImprintMeta is the personality-content variant of package metadata.
// BehavioralEffects, ActivationTriggers, and Catchphrases must each be
// non-empty for the metadata to validate.
type ImprintMeta struct {
	Rarity             string       `json:"rarity,omitempty"`
	Traits             []string     `json:"traits,omitempty"`
	Strength           StrengthTier `json:"strength,omitempty"`
	BehavioralEffects  []string     `json:"behavioral_effects"`
	ActivationTriggers []string     `json:"activation_triggers"`
	Catchphrases       []string     `json:"catchphrases"`
	Leakiness          float64      `json:"leakiness"`
	ForbiddenContexts  []string     `json:"forbidden_contexts,omitempty"`
	Compatibility      []string     `json:"compatibility,omitempty"`
	Series             string       `json:"series,omitempty"`
}

// Meta is the content-type metadata block. ContentType discriminates the
// variant; Imprint is populated only for personality content.
type Meta struct {
	ContentType ContentType  `json:"content_type,omitempty"`
	Imprint     *ImprintMeta `json:"imprint,omitempty"`
}

// Package is the unit under evaluation: a bundle of insights plus metadata.
type Package struct {
	SchemaVersion string            `json:"schema_version"`
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description,omitempty"`
	Topics        []string          `json:"topics"`
	Audience      string            `json:"audience"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Seller        SellerInfo        `json:"seller"`
	Extraction    ExtractionSpec    `json:"extraction"`
	Insights      []Insight         `json:"insights"`
	Attachments   []Attachment      `json:"attachments,omitempty"`
	Redaction     *RedactionSummary `json:"redaction,omitempty"`
	Integrity     Integrity         `json:"integrity,omitempty"`
	License       LicenseTerms      `json:"license"`
	Meta          *Meta             `json:"meta,omitempty"`
}
