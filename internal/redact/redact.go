// Package redact scrubs credentials, tokens and connection details out of
// error text before it is logged or echoed in a server-error envelope.
package redact

import "regexp"

// Placeholders substituted for each class of sensitive value.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	TokenPlaceholder      = "[REDACTED_JWT]"
	KeyPlaceholder        = "[REDACTED_KEY]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	HashPlaceholder       = "[REDACTED_HASH]"
	PathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// assignment matches key=value, or key: "value" with the value quoted, so
// prose such as "failed to hash password: ..." keeps its wording.
const assignment = `(\s*=\s*['"]?|\s*:\s*['"])`

// Rules run in order; connection strings go first so their embedded
// passwords and hosts are replaced as a unit.
var rules = []rule{
	{regexp.MustCompile(`(?i)\b(postgres(?:ql)?|sqlite|file)://[^\s'"]+`), CredentialPlaceholder},
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), TokenPlaceholder},
	{regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`), HashPlaceholder},
	{regexp.MustCompile(`(?i)(password|passwd|pwd)` + assignment + `[^'"&\s]+`), "${1}${2}" + CredentialPlaceholder},
	{regexp.MustCompile(`(?i)(secret|api[_-]?key|x-access-token)` + assignment + `[^'"&\s]+`), "${1}${2}" + KeyPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), EmailPlaceholder},
	{regexp.MustCompile(`(?:/[\w.-]+){3,}`), PathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
