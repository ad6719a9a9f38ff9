// Package validate guards the security boundary in front of every git
// subprocess invocation. Each rule is a pure predicate: inputs are
// either accepted unchanged or rejected with a ValidationError, never
// silently coerced.
package validate

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	branchNameRe = regexp.MustCompile(`^[A-Za-z0-9/_.-]+$`)
	commitHashRe = regexp.MustCompile(`^[0-9a-f]+$`)
)

// shellMetachars are rejected from every subprocess argument. The
// executor never invokes a shell, so none of these could actually be
// interpreted; rejecting them anyway keeps arguments safe if they are
// ever echoed into an error message or a generated command line.
const shellMetachars = ";&|`$()<>"

// FilePath validates a repository-relative file path.
func FilePath(path string) error {
	const rule = "file-path"
	if path == "" {
		return errf(rule, "path is empty")
	}
	if strings.ContainsRune(path, 0) {
		return errf(rule, "path contains a null byte")
	}
	if filepath.IsAbs(path) {
		return errf(rule, "path must be relative: %s", path)
	}
	if strings.HasPrefix(path, "-") {
		return errf(rule, "path must not start with '-': %s", path)
	}
	if strings.Contains(filepath.ToSlash(filepath.Clean(path)), "..") {
		return errf(rule, "path must not contain '..': %s", path)
	}
	return nil
}

// BranchName validates a branch or ref name.
func BranchName(name string) error {
	const rule = "branch-name"
	if name == "" {
		return errf(rule, "branch name is empty")
	}
	if len(name) > 255 {
		return errf(rule, "branch name exceeds 255 characters")
	}
	if !branchNameRe.MatchString(name) {
		return errf(rule, "branch name contains invalid characters: %s", name)
	}
	if strings.Contains(name, "..") {
		return errf(rule, "branch name must not contain '..': %s", name)
	}
	if strings.HasSuffix(name, ".lock") {
		return errf(rule, "branch name must not end with '.lock': %s", name)
	}
	return nil
}

// CommitHash validates a full SHA-1 or SHA-256 object name.
func CommitHash(hash string) error {
	const rule = "commit-hash"
	if len(hash) != 40 && len(hash) != 64 {
		return errf(rule, "hash must be 40 or 64 characters, got %d", len(hash))
	}
	if !commitHashRe.MatchString(hash) {
		return errf(rule, "hash must be lowercase hex: %s", hash)
	}
	return nil
}

// ShortCommitHash validates an abbreviated object name.
func ShortCommitHash(hash string) error {
	const rule = "short-commit-hash"
	if len(hash) < 7 || len(hash) > 40 {
		return errf(rule, "short hash must be 7-40 characters, got %d", len(hash))
	}
	if !commitHashRe.MatchString(hash) {
		return errf(rule, "short hash must be lowercase hex: %s", hash)
	}
	return nil
}

// RemoteURL validates a git remote URL. http:// is tolerated for
// local and test use but https:// should be preferred.
func RemoteURL(url string) error {
	const rule = "remote-url"
	if url == "" {
		return errf(rule, "remote URL is empty")
	}
	allowed := []string{"https://", "ssh://", "git@", "file://", "http://"}
	for _, prefix := range allowed {
		if strings.HasPrefix(url, prefix) {
			return nil
		}
	}
	return errf(rule, "remote URL must use https, ssh, git@, or file scheme")
}

// NonNegativeInt validates a count that may be zero.
func NonNegativeInt(n int, what string) error {
	if n < 0 {
		return errf("non-negative-int", "%s must be >= 0, got %d", what, n)
	}
	return nil
}

// PositiveInt validates a limit that must be at least one.
func PositiveInt(n int, what string) error {
	if n < 1 {
		return errf("positive-int", "%s must be >= 1, got %d", what, n)
	}
	return nil
}

// Args screens a subprocess argument vector for shell metacharacters.
// Called by the executor immediately before spawning git; rejection
// here means no subprocess is ever started.
func Args(args []string) error {
	const rule = "args"
	if len(args) == 0 {
		return errf(rule, "argument list is empty")
	}
	for _, arg := range args {
		if strings.ContainsAny(arg, shellMetachars) {
			return errf(rule, "argument contains shell metacharacters: %s", arg)
		}
	}
	return nil
}
