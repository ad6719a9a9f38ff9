package ui

import (
	"fmt"
	"time"

	"github.com/aki/gitctx/internal/core/git"
)

// Print functions for consistent output

func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", SuccessIcon, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", InfoIcon, InfoStyle.Render(fmt.Sprintf(format, args...)))
}

// OutputLine prints one formatted line to stdout.
func OutputLine(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// PrintRepository displays repository information.
func PrintRepository(info *git.RepositoryInfo) {
	fmt.Printf("%s %s\n", RepoIcon, BoldStyle.Render(info.Root))
	if info.Remote != "" {
		fmt.Printf("   %s %s\n", DimStyle.Render("Remote:"), info.Remote)
	}
	state := "dirty"
	if info.IsClean {
		state = "clean"
	}
	fmt.Printf("   %s %s\n", DimStyle.Render("State:"), state)
}

// PrintBranch displays branch and tracking information.
func PrintBranch(info *git.BranchInfo) {
	fmt.Printf("%s %s\n", BranchIcon, BoldStyle.Render(info.Current))
	if !info.Tracking {
		fmt.Printf("   %s\n", DimStyle.Render("no upstream"))
		return
	}
	fmt.Printf("   %s %s %s\n",
		DimStyle.Render("Upstream:"),
		info.Upstream,
		DimStyle.Render(fmt.Sprintf("(ahead %d, behind %d)", info.CommitsAhead, info.CommitsBehind)),
	)
}

// PrintChangedFiles displays the flattened status as a table.
func PrintChangedFiles(files []git.ChangedFile) {
	if len(files) == 0 {
		Info("Working directory clean")
		return
	}

	tbl := NewTable("STATUS", "PATH")
	for _, f := range files {
		tbl.AddRow(string(f.Status), f.Path)
	}

	PrintSectionHeader(RepoIcon, "Changed files", len(files))
	tbl.Print()
	fmt.Println()
}

// PrintCommits displays recent commits as a table.
func PrintCommits(commits []git.Commit) {
	if len(commits) == 0 {
		Info("No commits found")
		return
	}

	tbl := NewTable("HASH", "AUTHOR", "DATE", "SUBJECT")
	for _, c := range commits {
		tbl.AddRow(c.ShortHash, c.Author, c.Date, c.Subject)
	}

	PrintSectionHeader(CommitIcon, "Recent commits", len(commits))
	tbl.Print()
	fmt.Println()
}

// PrintDiffStats displays aggregate diff counters.
func PrintDiffStats(stats *git.DiffStats) {
	OutputLine("%d files changed, %s, %s",
		stats.FilesChanged,
		AddedStyle.Render(fmt.Sprintf("+%d", stats.Additions)),
		RemovedStyle.Render(fmt.Sprintf("-%d", stats.Deletions)),
	)
}

// PrintDiff displays a parsed diff per file.
func PrintDiff(diff *git.ParsedDiff) {
	if len(diff.Files) == 0 {
		Info("No changes")
		return
	}

	for _, f := range diff.Files {
		name := f.Path
		if f.Status == git.DiffRenamed && f.OldPath != "" {
			name = f.OldPath + " -> " + f.Path
		}
		OutputLine("%s %s %s",
			BoldStyle.Render(name),
			DimStyle.Render(fmt.Sprintf("(%s)", f.Status)),
			DimStyle.Render(fmt.Sprintf("+%d -%d", f.Additions, f.Deletions)),
		)
		for _, h := range f.Hunks {
			OutputLine("%s", DimStyle.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
				h.OldStart, h.OldLines, h.NewStart, h.NewLines)))
			for _, line := range h.Lines {
				if line == "" {
					OutputLine("")
					continue
				}
				switch line[0] {
				case '+':
					OutputLine("%s", AddedStyle.Render(line))
				case '-':
					OutputLine("%s", RemovedStyle.Render(line))
				default:
					OutputLine("%s", line)
				}
			}
		}
	}
	fmt.Println()
	PrintDiffStats(&diff.Stats)
}

// FormatDuration formats a duration into a human-readable string
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return "< 1m"
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	} else {
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
