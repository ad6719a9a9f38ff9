// Package sanitize filters repository-derived strings before they are
// embedded in an AI agent's context window. The commit-message filter
// is lexical pattern matching only: it is a defense-in-depth layer
// against known prompt-injection phrasings, not a guarantee that the
// content is safe to trust.
package sanitize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aki/gitctx/internal/core/redact"
)

// MaxMessageLength bounds a sanitized commit message.
const MaxMessageLength = 500

// Filtered replaces recognized injection phrasings.
const Filtered = "[FILTERED]"

var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+previous\s+instructions`),
	regexp.MustCompile(`(?i)(?:disregard|forget)\s+previous\s+instructions`),
	regexp.MustCompile(`(?i)ignore\s+the\s+above`),
	regexp.MustCompile(`(?i)ignore\s+(?:all\s+)?(?:instructions|prompts)`),
	regexp.MustCompile(`(?i)system\s+(?:prompts?|instructions)`),
	regexp.MustCompile(`(?i)you\s+are\s+now`),
	regexp.MustCompile(`(?i)act\s+as\s+an?\b`),
	regexp.MustCompile(`(?i)pretend\s+to\s+be`),
	regexp.MustCompile(`(?i)roleplay\s+as`),
}

var (
	// Special token syntaxes of common LLM chat templates.
	specialTokenRe = regexp.MustCompile(`<\|[^|]*\|>|\[INST\]|\[/INST\]|<<SYS>>|</SYS>`)
	// Bidi override characters used in visual-spoofing attacks.
	bidiOverrideRe = regexp.MustCompile("[‭‮]")
)

// CommitMessage filters prompt-injection phrasings, LLM special
// tokens, and bidi overrides out of a commit message, then truncates
// to MaxMessageLength. Idempotent: sanitizing twice yields the same
// result as once.
func CommitMessage(message string) string {
	for _, re := range injectionPatterns {
		message = re.ReplaceAllString(message, Filtered)
	}
	message = specialTokenRe.ReplaceAllString(message, "")
	message = bidiOverrideRe.ReplaceAllString(message, "")
	if len(message) > MaxMessageLength {
		// Back up to a rune boundary so the cut never produces
		// invalid UTF-8.
		cut := MaxMessageLength
		for cut > 0 && !utf8.RuneStart(message[cut]) {
			cut--
		}
		message = message[:cut]
	}
	return strings.TrimSpace(message)
}

// RemoteURL masks credentials embedded in a remote URL. URLs with no
// credential segment pass through unchanged.
func RemoteURL(url string) string {
	if url == "" {
		return url
	}
	if idx := strings.Index(url, "://"); idx >= 0 {
		rest := url[idx+3:]
		at := strings.Index(rest, "@")
		if at < 0 {
			return url
		}
		cred := rest[:at]
		if strings.Contains(cred, ":") {
			// user:pass or user:token
			return url[:idx+3] + "***:***@" + rest[at+1:]
		}
		// bare token or ssh user
		return url[:idx+3] + "***@" + rest[at+1:]
	}
	return url
}

// FilePath redacts home and temp directories from a path. Shares the
// executor's error redaction rules so a path is treated the same no
// matter which channel it travels through.
func FilePath(path string) string {
	return redact.Path(path)
}
