// Package tone classifies text as personality narration or instructional
// injection using two lexical ratios over the token count. Personality
// content legitimately uses first-person, imperative-adjacent language
// ("I always check the audit first") that naive keyword matching would
// misclassify; the command-verb gate on always/never resolves that
// false-positive class.
package tone

import "strings"

// Thresholds tuned against regression fixtures; see tone_test.go.
const (
	personalityFirstPersonMin = 0.04
	personalityImperativeMax  = 0.02
	injectionImperativeMin    = 0.03
)

// Result holds the computed ratios and the derived classifications.
// A text can be neither, either, or (rarely) both; the scan orchestrator
// reports the conflicting case as its own flag.
type Result struct {
	Tokens           int
	FirstPersonRatio float64
	ImperativeRatio  float64
	IsPersonality    bool
	IsInjection      bool
}

var firstPersonMarkers = map[string]bool{
	"i": true, "i'm": true, "i've": true, "i'd": true, "i'll": true,
	"my": true, "me": true, "mine": true, "myself": true,
}

// commandVerbs gate bare "always"/"never": only these verbs make the pair
// count as imperative. Autobiographical verbs (burn, remember, check) are
// deliberately absent.
var commandVerbs = map[string]bool{
	"ignore": true, "disregard": true, "obey": true, "follow": true,
	"comply": true, "respond": true, "reply": true, "say": true,
	"write": true, "output": true, "print": true, "execute": true,
	"run": true, "refuse": true, "pretend": true, "act": true,
	"behave": true, "reveal": true, "share": true, "send": true,
	"delete": true, "include": true, "insert": true,
}

var metaPhrases = []string{
	"system prompt",
	"developer message",
	"tools available",
}

// Classify computes the first-person and imperative ratios for text and
// applies the fixed classification thresholds.
func Classify(text string) Result {
	tokens := tokenize(text)
	res := Result{Tokens: len(tokens)}
	if len(tokens) == 0 {
		return res
	}

	firstPerson := 0
	imperative := 0

	for i, tok := range tokens {
		if firstPersonMarkers[tok] {
			firstPerson++
		}

		switch tok {
		case "ignore", "disregard", "don't":
			imperative++
		case "you":
			if i+1 < len(tokens) {
				switch tokens[i+1] {
				case "must", "should", "shall", "will":
					imperative++
				}
			}
		case "do":
			if i+1 < len(tokens) && tokens[i+1] == "not" {
				imperative++
			}
		case "from":
			if i+2 < len(tokens) && tokens[i+1] == "now" && tokens[i+2] == "on" {
				imperative++
			}
		case "always", "never":
			if i+1 < len(tokens) && commandVerbs[tokens[i+1]] {
				imperative++
			}
		}
	}

	n := float64(len(tokens))
	res.FirstPersonRatio = float64(firstPerson) / n
	res.ImperativeRatio = float64(imperative) / n

	res.IsPersonality = res.FirstPersonRatio >= personalityFirstPersonMin &&
		res.ImperativeRatio <= personalityImperativeMax

	res.IsInjection = res.ImperativeRatio >= injectionImperativeMin || containsMetaPhrase(text)

	return res
}

func containsMetaPhrase(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range metaPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// tokenize lowercases and splits on whitespace, trimming surrounding
// punctuation but keeping inner apostrophes so contractions survive.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?\"'()[]{}<>*_`")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
