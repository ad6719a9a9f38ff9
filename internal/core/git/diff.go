package git

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aki/gitctx/internal/core/validate"
)

var (
	diffHeaderRe = regexp.MustCompile(`^diff --git a/(.+) b/(.+)$`)
	hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)
	renameFromRe = regexp.MustCompile(`^rename from (.+)$`)
	renameToRe   = regexp.MustCompile(`^rename to (.+)$`)
)

// DiffOptions configures the diff reader.
type DiffOptions struct {
	// ContextLines is the number of unchanged lines surrounding each
	// hunk. Default 3 via DefaultDiffOptions.
	ContextLines int
}

// DefaultDiffOptions returns the standard diff options.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{ContextLines: 3}
}

// GetParsedDiff parses the working-tree diff into files, hunks, and
// per-file counters. An empty diff yields an empty file list.
func (o *Operations) GetParsedDiff(ctx context.Context, opts DiffOptions) (*ParsedDiff, error) {
	if err := validate.NonNegativeInt(opts.ContextLines, "contextLines"); err != nil {
		return nil, err
	}

	out, err := o.run(ctx, "diff", fmt.Sprintf("--unified=%d", opts.ContextLines))
	if err != nil {
		return nil, err
	}
	return parseDiff(out), nil
}

// GetDiffStats is the fast path for callers that only need counts: it
// uses --numstat and never materializes hunk bodies.
func (o *Operations) GetDiffStats(ctx context.Context) (*DiffStats, error) {
	out, err := o.run(ctx, "diff", "--numstat")
	if err != nil {
		return nil, err
	}
	return parseNumstat(out), nil
}

// parseDiff walks unified-diff text line by line, tracking a
// current-file and current-hunk cursor. Binary files keep an empty
// hunk list.
func parseDiff(out string) *ParsedDiff {
	diff := &ParsedDiff{Files: []DiffFile{}}
	if strings.TrimSpace(out) == "" {
		return diff
	}

	var file *DiffFile
	var hunk *DiffHunk

	flushHunk := func() {
		if file != nil && hunk != nil {
			file.Hunks = append(file.Hunks, *hunk)
		}
		hunk = nil
	}
	flushFile := func() {
		flushHunk()
		if file != nil {
			diff.Files = append(diff.Files, *file)
		}
		file = nil
	}

	for _, line := range strings.Split(out, "\n") {
		if m := diffHeaderRe.FindStringSubmatch(line); m != nil {
			flushFile()
			file = &DiffFile{
				Path:   m[2],
				Status: DiffModified,
				Hunks:  []DiffHunk{},
			}
			continue
		}
		if file == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, "new file mode"):
			file.Status = DiffAdded
			continue
		case strings.HasPrefix(line, "deleted file mode"):
			file.Status = DiffDeleted
			continue
		case strings.HasPrefix(line, "Binary files "):
			// No hunks for binary content.
			hunk = nil
			file.Hunks = []DiffHunk{}
			continue
		}
		if m := renameFromRe.FindStringSubmatch(line); m != nil {
			file.Status = DiffRenamed
			file.OldPath = m[1]
			continue
		}
		if m := renameToRe.FindStringSubmatch(line); m != nil {
			file.Status = DiffRenamed
			file.Path = m[1]
			continue
		}

		if m := hunkHeaderRe.FindStringSubmatch(line); m != nil {
			flushHunk()
			hunk = &DiffHunk{
				OldStart: atoiDefault(m[1], 1),
				OldLines: atoiDefault(m[2], 1),
				NewStart: atoiDefault(m[3], 1),
				NewLines: atoiDefault(m[4], 1),
				Lines:    []string{},
			}
			continue
		}

		if hunk == nil || line == "" {
			continue
		}
		switch line[0] {
		case '+':
			hunk.Lines = append(hunk.Lines, line)
			file.Additions++
		case '-':
			hunk.Lines = append(hunk.Lines, line)
			file.Deletions++
		case ' ':
			hunk.Lines = append(hunk.Lines, line)
		case '\\':
			// "\ No newline at end of file"
		default:
			// Anything else ends the hunk.
			flushHunk()
		}
	}
	flushFile()

	for _, f := range diff.Files {
		diff.Stats.FilesChanged++
		diff.Stats.Additions += f.Additions
		diff.Stats.Deletions += f.Deletions
	}
	return diff
}

// parseNumstat decodes `diff --numstat` output: additions, deletions,
// and path separated by tabs, with "-" for binary files.
func parseNumstat(out string) *DiffStats {
	stats := &DiffStats{}
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 3 || strings.TrimSpace(parts[2]) == "" {
			continue
		}
		stats.FilesChanged++
		stats.Additions += atoiDefault(parts[0], 0)
		stats.Deletions += atoiDefault(parts[1], 0)
	}
	return stats
}

func atoiDefault(s string, def int) int {
	if s == "" || s == "-" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
