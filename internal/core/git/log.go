package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aki/gitctx/internal/core/gitexec"
	"github.com/aki/gitctx/internal/core/validate"
)

// Log field and record delimiters: ASCII Record Separator between
// fields and Unit Separator between commits. Commit messages can
// contain any printable character, tab, or pipe, so ordinary
// delimiters would collide.
const (
	logFieldSep  = "\x1e"
	logRecordSep = "\x1f"
)

const logFieldCount = 7

// logFormat is the --pretty format: hash, short hash, author, email,
// ISO date, subject, body.
var logFormat = strings.Join([]string{
	"%H", "%h", "%an", "%ae", "%aI", "%s", "%b",
}, logFieldSep) + logRecordSep

// GetRecentCommits returns up to maxCommits entries, most recent
// first. A repository with no commits yet yields an empty slice, not
// an error.
func (o *Operations) GetRecentCommits(ctx context.Context, maxCommits int) ([]Commit, error) {
	if err := validate.PositiveInt(maxCommits, "maxCommits"); err != nil {
		return nil, err
	}

	out, err := o.run(ctx,
		"log",
		fmt.Sprintf("--max-count=%d", maxCommits),
		"--pretty=format:"+logFormat,
	)
	if err != nil {
		// An unborn branch is the valid "no commits" outcome. Any
		// other failure (not a repository, corrupt object store)
		// propagates.
		var execErr *gitexec.ExecError
		if errors.As(err, &execErr) && isUnbornBranch(execErr.Stderr) {
			return []Commit{}, nil
		}
		return nil, err
	}

	return parseCommits(out), nil
}

// isUnbornBranch matches the stderr git log emits on a branch with no
// commits yet. Newer git says "does not have any commits yet"; older
// versions say "bad default revision 'HEAD'".
func isUnbornBranch(stderr string) bool {
	return strings.Contains(stderr, "does not have any commits yet") ||
		strings.Contains(stderr, "bad default revision")
}

// parseCommits splits log output on the control-character delimiters.
// Records with fewer than the expected number of fields are malformed
// and skipped rather than failing the whole read.
func parseCommits(out string) []Commit {
	commits := []Commit{}
	for _, record := range strings.Split(out, logRecordSep) {
		record = strings.TrimLeft(record, "\n")
		if strings.TrimSpace(record) == "" {
			continue
		}
		fields := strings.Split(record, logFieldSep)
		if len(fields) < logFieldCount {
			continue
		}

		commit := Commit{
			Hash:      fields[0],
			ShortHash: fields[1],
			Author:    fields[2],
			Email:     fields[3],
			Date:      fields[4],
			Subject:   fields[5],
			Body:      strings.TrimSpace(fields[6]),
		}
		commit.Message = commit.Subject
		if commit.Body != "" {
			commit.Message = commit.Subject + "\n\n" + commit.Body
		}
		commits = append(commits, commit)
	}
	return commits
}
