// Package redact strips identifying filesystem paths and embedded
// credentials from strings before they reach logs, errors, or an AI
// agent's context window.
package redact

import "regexp"

var (
	homeDirRe     = regexp.MustCompile(`(?:/Users/[^/\s:]+|/home/[^/\s:]+|[A-Za-z]:\\Users\\[^\\\s:]+)`)
	urlCredRe     = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9+.-]*://)[^/@\s]+:[^/@\s]+@`)
	tempDirRe     = regexp.MustCompile(`(?:/tmp/[^\s:]+|/var/folders/[^\s:]+|[A-Za-z]:\\(?:Temp|Windows\\Temp)\\[^\\\s:]+)`)
	tempPlacehold = "[TEMP]"
)

// Path replaces home directories with "~" and temp-directory paths
// with a fixed placeholder.
func Path(s string) string {
	s = homeDirRe.ReplaceAllString(s, "~")
	return tempDirRe.ReplaceAllString(s, tempPlacehold)
}

// Credentials masks user:password pairs embedded in URLs.
func Credentials(s string) string {
	return urlCredRe.ReplaceAllString(s, "${1}***:***@")
}

// Error applies every redaction to an error message. Applied to all
// subprocess errors before they can propagate to a caller or a log.
func Error(msg string) string {
	return Path(Credentials(msg))
}
