// Package redact masks secret-shaped substrings so that flag snippets and
// audit log lines never become a leakage vector themselves.
package redact

import "regexp"

var sensitivePatterns = []*regexp.Regexp{
	// EVM private keys and anything else 64-hex-shaped; by the time a
	// snippet reaches redaction the context gate has already decided it
	// is key material, not a bare transaction hash.
	regexp.MustCompile(`\b(0x)?[0-9a-fA-F]{64}\b`),

	// PEM key material
	regexp.MustCompile(`-----BEGIN (RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----[^-]*`),

	// AWS
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	regexp.MustCompile(`(?i)(aws_secret_access_key|aws_session_token)\s*[=:]\s*['"]?[A-Za-z0-9/+=]{20,}['"]?`),

	// GitHub tokens
	regexp.MustCompile(`gh[poursa]_[A-Za-z0-9]{36}`),

	// Generic API keys and tokens
	regexp.MustCompile(`(?i)(api[_-]?key|api[_-]?secret|access[_-]?token|auth[_-]?token|secret[_-]?key)\s*[=:]\s*['"]?[A-Za-z0-9_\-]{16,}['"]?`),

	// Bearer tokens
	regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._\-]{20,}`),

	// Basic auth in URLs
	regexp.MustCompile(`https?://[^:/\s]+:[^@\s]+@`),

	// Password assignments
	regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[=:]\s*['"]?[^\s'"]{8,}['"]?`),
}

const placeholder = "[REDACTED]"

// Redact replaces every secret-shaped substring in input with a placeholder.
func Redact(input string) string {
	result := input
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, placeholder)
	}
	return result
}

// RedactAll applies Redact to each element of a string slice.
func RedactAll(items []string) []string {
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = Redact(item)
	}
	return result
}
