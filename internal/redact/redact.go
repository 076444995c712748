// Package redact scrubs sensitive values from strings before they are
// written to logs. Database errors in particular tend to echo back
// connection URLs, emails, and query fragments that should never land
// in log aggregation.
package redact

import "regexp"

// Placeholders substituted for matched sensitive values.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	TokenPlaceholder      = "[REDACTED_TOKEN]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	QueryPlaceholder      = "[REDACTED_SQL]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

var rules = []rule{
	// Connection URLs with inline credentials, e.g. postgres://user:pw@host.
	{regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`), CredentialPlaceholder + "@"},

	// password=..., password: "..." style fragments.
	{regexp.MustCompile(`(?i)(password|passwd|secret)([=:\s]['"]?)[^'"&\s]{3,}`), CredentialPlaceholder},

	// Signed JWTs (three base64url segments, header starting with {"...).
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), TokenPlaceholder},

	// Email addresses.
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), EmailPlaceholder},

	// SQL statements echoed into driver errors.
	{regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)\s[\s\w,.*()=$'"-]+(FROM|INTO|SET)[\s\w,.*()=$'"-]*`), QueryPlaceholder},
}

// String returns input with all recognized sensitive fragments replaced
// by placeholders.
func String(input string) string {
	if input == "" {
		return input
	}

	out := input
	for _, r := range rules {
		out = r.pattern.ReplaceAllString(out, r.placeholder)
	}
	return out
}

// Error returns the redacted Error() text of err, or "" for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
