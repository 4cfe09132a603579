package scan

import (
	"fmt"
	"time"

	"github.com/knowmarket/packguard/internal/pack"
)

// Shared fixtures for the scan tests.

var fixtureTime = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func benignPackage(insightCount int) *pack.Package {
	insights := make([]pack.Insight, insightCount)
	for i := range insights {
		insights[i] = pack.Insight{
			ID:         fmt.Sprintf("ins-%03d", i),
			Type:       pack.InsightFact,
			Title:      fmt.Sprintf("Renewal trend %d", i),
			Content:    fmt.Sprintf("Renewal rates in segment %d grew steadily through the quarter.", i),
			Confidence: 0.8,
			Tags:       []string{"sales"},
		}
	}

	return &pack.Package{
		SchemaVersion: "1.0",
		ID:            "pkg-test-001",
		Title:         "Enterprise renewal patterns",
		Description:   "Observed renewal behavior across enterprise accounts.",
		Topics:        []string{"sales", "retention"},
		Audience:      "revenue-teams",
		CreatedAt:     fixtureTime,
		UpdatedAt:     fixtureTime,
		Seller: pack.SellerInfo{
			Name:    "acme-insights",
			Address: "0x12a4b8c0d1e2f3a4b5c6d7e8f9a0b1c2d3e4f5a6",
		},
		Extraction: pack.ExtractionSpec{Query: "renewal patterns enterprise"},
		Insights:   insights,
		License:    pack.LicenseTerms{Usage: "internal"},
	}
}

func imprintPackage() *pack.Package {
	p := benignPackage(1)
	p.ID = "pkg-imprint-001"
	p.Title = "My analyst persona"
	p.Description = "I collect what I learn and I explain how I reason about it."
	p.Extraction.Query = "how I analyze data"
	p.Insights[0].Content = "I think you are a great tool for analysis. My experience tells me to trust data."
	p.Meta = &pack.Meta{
		ContentType: pack.ContentImprint,
		Imprint: &pack.ImprintMeta{
			Rarity:             "uncommon",
			Traits:             []string{"skeptical", "methodical"},
			Strength:           pack.StrengthMedium,
			BehavioralEffects:  []string{"I cite my sources before I conclude"},
			ActivationTriggers: []string{"when I review metrics"},
			Catchphrases:       []string{"I trust the data", "I check twice"},
			Leakiness:          0.2,
		},
	}
	return p
}
