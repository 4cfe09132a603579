package scan

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/knowmarket/packguard/internal/rules"
)

// Structural heuristics that complement the regex catalog. All four are
// total functions over arbitrary text and never error.
const (
	tokenBombThreshold  = 10000
	repetitionWindow    = 20
	repetitionStride    = 10
	repetitionMinCount  = 5
	invisibleMaxDensity = 0.20
)

// allowedSocketPorts are the ports a WebSocket URL may legitimately use.
var allowedSocketPorts = map[int]bool{
	80: true, 443: true, 8080: true, 8443: true, 3000: true,
}

var webSocketPortRe = regexp.MustCompile(`new\s+WebSocket\s*\(\s*["']wss?://[^"':\s]+:(\d{1,5})`)

// triageChecks runs the cheap structural heuristics on every target:
// oversized text, repeated payloads, invisible-Unicode density.
func (f *flagger) triageChecks(targets []Target) []ThreatFlag {
	var flags []ThreatFlag

	for _, t := range targets {
		if len(t.Text) > tokenBombThreshold {
			flags = append(flags, f.flag(
				"struct:token-bomb", rules.SeverityLow, rules.CategoryStructure,
				fmt.Sprintf("Text block of %d characters may be a context-window abuse payload", len(t.Text)),
				t.Location, "", rules.ActionWarn,
			))
		}

		if reps := maxWindowRepetition(t.Text); reps >= repetitionMinCount {
			flags = append(flags, f.flag(
				"struct:repetition", rules.SeverityLow, rules.CategoryObfuscation,
				fmt.Sprintf("Same %d-character window repeats %d times", repetitionWindow, reps),
				t.Location, "", rules.ActionWarn,
			))
		}

		if density, cp := invisibleDensity(t.Text); density > invisibleMaxDensity {
			flags = append(flags, f.flag(
				"struct:unicode-density", rules.SeverityLow, rules.CategoryObfuscation,
				fmt.Sprintf("%.0f%% of text is invisible or bidirectional Unicode (e.g. %s)", density*100, cp),
				t.Location, "", rules.ActionWarn,
			))
		}
	}

	return flags
}

// deepChecks runs the structural heuristics reserved for the deep phase.
func (f *flagger) deepChecks(targets []Target) []ThreatFlag {
	var flags []ThreatFlag

	for _, t := range targets {
		for _, m := range webSocketPortRe.FindAllStringSubmatch(t.Text, -1) {
			port, err := strconv.Atoi(m[1])
			if err != nil || allowedSocketPorts[port] {
				continue
			}
			flags = append(flags, f.flag(
				"struct:ws-port", rules.SeverityMedium, rules.CategoryExfiltration,
				fmt.Sprintf("WebSocket connection to nonstandard port %d", port),
				t.Location, maskSnippet(m[0]), rules.ActionWarn,
			))
		}
	}

	return flags
}

// maxWindowRepetition slides a fixed window over the text at a coarse stride
// and reports how often the most frequent window value occurs. Repeated
// payloads used for obfuscation produce high counts; ordinary prose does not.
func maxWindowRepetition(text string) int {
	if len(text) < repetitionWindow+repetitionStride {
		return 0
	}

	counts := make(map[string]int)
	best := 0
	for i := 0; i+repetitionWindow <= len(text); i += repetitionStride {
		w := text[i : i+repetitionWindow]
		counts[w]++
		if counts[w] > best {
			best = counts[w]
		}
	}
	return best
}

// invisibleDensity returns the fraction of runes that are zero-width,
// bidirectional-control, or tag characters, plus a sample codepoint.
func invisibleDensity(text string) (float64, string) {
	total := utf8.RuneCountInString(text)
	if total == 0 {
		return 0, ""
	}

	invisible := 0
	sample := ""
	for _, r := range text {
		if isInvisibleRune(r) {
			invisible++
			if sample == "" {
				sample = fmt.Sprintf("U+%04X", r)
			}
		}
	}
	return float64(invisible) / float64(total), sample
}

// isInvisibleRune reports whether r is a character with no visible glyph
// that can smuggle hidden instructions: zero-width characters, bidirectional
// overrides, and Unicode tag characters.
func isInvisibleRune(r rune) bool {
	switch r {
	case '\u200B', // ZERO WIDTH SPACE
		'\u200C', // ZERO WIDTH NON-JOINER
		'\u200D', // ZERO WIDTH JOINER
		'\uFEFF', // ZERO WIDTH NO-BREAK SPACE (BOM)
		'\u2060', // WORD JOINER
		'\u180E', // MONGOLIAN VOWEL SEPARATOR
		'\u200E', // LEFT-TO-RIGHT MARK
		'\u200F', // RIGHT-TO-LEFT MARK
		'\u202A', // LEFT-TO-RIGHT EMBEDDING
		'\u202B', // RIGHT-TO-LEFT EMBEDDING
		'\u202C', // POP DIRECTIONAL FORMATTING
		'\u202D', // LEFT-TO-RIGHT OVERRIDE
		'\u202E', // RIGHT-TO-LEFT OVERRIDE
		'\u2066', // LEFT-TO-RIGHT ISOLATE
		'\u2067', // RIGHT-TO-LEFT ISOLATE
		'\u2068', // FIRST STRONG ISOLATE
		'\u2069': // POP DIRECTIONAL ISOLATE
		return true
	}
	// Unicode tag characters (U+E0001-U+E007F)
	return r >= 0xE0001 && r <= 0xE007F
}
