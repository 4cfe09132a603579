package rules

import "regexp"

// Default returns the built-in catalog. Triage-eligible rules are the
// high-signal subset cheap enough to run on every package; the rest only run
// when the deep phase is warranted.
func Default() *Catalog {
	return NewCatalog(defaultRules)
}

var defaultRules = []ThreatRule{
	// --- Prompt injection ---
	{
		ID:       "inject:ignore-instructions",
		Severity: SeverityCritical,
		Category: CategoryInjection,
		Message:  "Instruction override language targeting an AI agent",
		Pattern:  regexp.MustCompile(`(?i)\b(ignore|disregard|forget)\s+(all\s+)?(previous|prior|above|earlier)\s+(instructions?|rules?|prompts?|directives?|guidelines?)`),
		Triage:   true,
	},
	{
		ID:           "inject:role-hijack",
		Severity:     SeverityHigh,
		Category:     CategoryInjection,
		Message:      "Role reassignment phrasing attempts to redefine the agent",
		Pattern:      regexp.MustCompile(`(?i)\byou\s+are\s+(now\s+)?(a|an|no\s+longer|free|unrestricted|unfiltered)\b`),
		Triage:       true,
		Suppressible: true,
	},
	{
		ID:       "inject:new-instructions",
		Severity: SeverityHigh,
		Category: CategoryInjection,
		Message:  "Content issues replacement instructions to the reader",
		Pattern:  regexp.MustCompile(`(?i)(new\s+instructions?\s*:|from\s+now\s+on\b|your\s+new\s+(task|role|goal|persona)\b)`),
		Triage:   true,
	},
	{
		ID:       "inject:prompt-probe",
		Severity: SeverityHigh,
		Category: CategoryInjection,
		Message:  "Content asks the agent to reveal its prompt or instructions",
		Pattern:  regexp.MustCompile(`(?i)\b(reveal|show|print|repeat|display|output)\s+(me\s+)?(your|the)\s+(system\s+)?(prompt|instructions?)\b`),
		Triage:   true,
	},
	{
		ID:       "inject:meta-reference",
		Severity: SeverityMedium,
		Category: CategoryInjection,
		Message:  "Meta-referential phrasing about the agent's runtime environment",
		Pattern:  regexp.MustCompile(`(?i)(system\s+prompt|developer\s+message|tools\s+available)`),
	},
	{
		ID:           "inject:behavior-override",
		Severity:     SeverityMedium,
		Category:     CategoryInjection,
		Message:      "Unconditional behavioral directive aimed at the reader",
		Pattern:      regexp.MustCompile(`(?i)\byou\s+(must|should|will)\s+(always|never)\b`),
		Suppressible: true,
	},
	{
		ID:       "inject:hidden-delimiters",
		Severity: SeverityHigh,
		Category: CategoryInjection,
		Message:  "Chat-template delimiters used to smuggle a system turn",
		Pattern:  regexp.MustCompile(`(?i)(<\|im_start\|>|\[INST\]|BEGIN\s+HIDDEN\s+INSTRUCTIONS?|` + "```" + `\s*system\b)`),
	},
	{
		ID:       "inject:script-tag",
		Severity: SeverityMedium,
		Category: CategoryInjection,
		Message:  "Inline script tag in text content",
		Pattern:  regexp.MustCompile(`(?i)<\s*script[\s>]`),
	},

	// --- Data exfiltration ---
	{
		ID:       "exfil:send-to-url",
		Severity: SeverityCritical,
		Category: CategoryExfiltration,
		Message:  "Content instructs sending data to an external URL",
		Pattern:  regexp.MustCompile(`(?i)\b(send|post|upload|transmit|forward|exfiltrate)\s+(all\s+|the\s+|this\s+|any\s+)?(data|memory|conversation|contents?|credentials?|keys?|secrets?|information)\s+to\s+https?://`),
		Triage:   true,
	},
	{
		ID:       "exfil:suspicious-endpoint",
		Severity: SeverityHigh,
		Category: CategoryExfiltration,
		Message:  "URL path suggests a collection or exfiltration endpoint",
		Pattern:  regexp.MustCompile(`(?i)https?://[^\s"')]*(webhook|beacon|collect|exfil|steal|harvest)`),
		Triage:   true,
	},
	{
		// Bare fetch calls are everywhere in legitimate playbook content;
		// only flag when co-located with file or environment reads.
		ID:       "exfil:fetch-with-read",
		Severity: SeverityHigh,
		Category: CategoryExfiltration,
		Message:  "Network fetch co-located with file or environment access",
		Pattern:  regexp.MustCompile(`\bfetch\s*\(`),
		Context:  regexp.MustCompile(`(?i)(readFile|fs\.read|process\.env|os\.environ)`),
		Triage:   true,
	},
	{
		ID:       "exfil:env-harvest",
		Severity: SeverityMedium,
		Category: CategoryExfiltration,
		Message:  "Bulk environment-variable enumeration",
		Pattern:  regexp.MustCompile(`(?i)(printenv\b|env\s*\|\s*(curl|nc)\b|JSON\.stringify\(\s*process\.env\s*\))`),
	},
	{
		ID:       "exfil:markdown-image",
		Severity: SeverityMedium,
		Category: CategoryExfiltration,
		Message:  "Markdown image with a parameterized remote URL can leak data on render",
		Pattern:  regexp.MustCompile(`!\[[^\]]*\]\(https?://[^)\s]+\?[^)\s]+\)`),
	},

	// --- Privacy / credential leakage ---
	{
		// 64 hex chars alone is also the shape of a transaction hash; only
		// flag when key language co-occurs in the same text.
		ID:       "privacy:evm-private-key",
		Severity: SeverityHigh,
		Category: CategoryPrivacy,
		Message:  "Hex string shaped like an EVM private key next to key language",
		Pattern:  regexp.MustCompile(`\b(0x)?[0-9a-fA-F]{64}\b`),
		Context:  regexp.MustCompile(`(?i)(private|secret|signing)[\s_-]*key`),
		Triage:   true,
	},
	{
		ID:       "privacy:pem-private-key",
		Severity: SeverityCritical,
		Category: CategoryPrivacy,
		Message:  "PEM-encoded private key material",
		Pattern:  regexp.MustCompile(`-----BEGIN (RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----`),
		Triage:   true,
	},
	{
		ID:       "privacy:aws-access-key",
		Severity: SeverityHigh,
		Category: CategoryPrivacy,
		Message:  "AWS access key ID",
		Pattern:  regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
		Triage:   true,
	},
	{
		ID:       "privacy:api-token",
		Severity: SeverityHigh,
		Category: CategoryPrivacy,
		Message:  "Inline API key or token assignment",
		Pattern:  regexp.MustCompile(`(?i)(api[_-]?key|api[_-]?secret|access[_-]?token|auth[_-]?token)\s*[=:]\s*['"]?[A-Za-z0-9_\-]{16,}`),
		Triage:   true,
	},
	{
		ID:       "privacy:seed-phrase",
		Severity: SeverityMedium,
		Category: CategoryPrivacy,
		Message:  "Wallet seed or recovery phrase language",
		Pattern:  regexp.MustCompile(`(?i)\b(seed\s+phrase|recovery\s+phrase|mnemonic\s+(words?|phrase))\b`),
	},

	// --- Obfuscation ---
	{
		ID:       "obfus:base64-blob",
		Severity: SeverityMedium,
		Category: CategoryObfuscation,
		Message:  "Long base64 payload may hide encoded instructions",
		Pattern:  regexp.MustCompile(`[A-Za-z0-9+/]{80,}={0,2}`),
	},
	{
		ID:       "obfus:hex-escape",
		Severity: SeverityMedium,
		Category: CategoryObfuscation,
		Message:  "Run of hex escape sequences may hide encoded instructions",
		Pattern:  regexp.MustCompile(`(\\x[0-9a-fA-F]{2}){6,}`),
	},
	{
		ID:       "obfus:html-entities",
		Severity: SeverityLow,
		Category: CategoryObfuscation,
		Message:  "Dense HTML entity encoding in plain text",
		Pattern:  regexp.MustCompile(`(&#x?[0-9a-fA-F]{2,6};){8,}`),
	},
}
