// Package git extracts structured repository context for AI agents.
// Each reader runs one git subcommand through the hardened executor
// and parses its porcelain or unified-diff output into a typed,
// point-in-time snapshot owned entirely by the caller.
package git

// RepositoryInfo describes the repository itself.
type RepositoryInfo struct {
	// Root is the absolute path of the working tree top level.
	Root string `json:"root"`
	// Remote is the origin URL, empty when no origin is configured.
	Remote string `json:"remote,omitempty"`
	// IsClean reports whether the porcelain status is empty.
	IsClean bool `json:"isClean"`
}

// BranchInfo describes the checked-out branch and its upstream.
type BranchInfo struct {
	// Current is the branch name, or "HEAD" in detached-HEAD state.
	Current string `json:"current"`
	// Upstream is the tracking branch, empty when not tracking.
	Upstream string `json:"upstream,omitempty"`
	// Tracking reports whether an upstream is configured. Ahead and
	// behind counts are only meaningful when true.
	Tracking      bool `json:"tracking"`
	CommitsAhead  int  `json:"commitsAhead"`
	CommitsBehind int  `json:"commitsBehind"`
}

// Status classifies working-tree paths by porcelain state. A path
// appears in at most one of Staged/Untracked, but a staged path may
// additionally appear in Deleted when its worktree copy is gone.
type Status struct {
	Staged    []string `json:"staged"`
	Modified  []string `json:"modified"`
	Untracked []string `json:"untracked"`
	Deleted   []string `json:"deleted"`
}

// Commit is one entry from the log.
type Commit struct {
	Hash      string `json:"hash"`
	ShortHash string `json:"shortHash"`
	Author    string `json:"author"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	// Message is Subject + "\n\n" + Body when a body exists.
	Message string `json:"message"`
	Subject string `json:"subject"`
	Body    string `json:"body,omitempty"`
}

// FileStatus classifies a changed file.
type FileStatus string

const (
	FileStaged    FileStatus = "staged"
	FileModified  FileStatus = "modified"
	FileUntracked FileStatus = "untracked"
	FileDeleted   FileStatus = "deleted"
)

// ChangedFile is a flattened view of Status, one entry per
// (path, category) pair.
type ChangedFile struct {
	Path   string     `json:"path"`
	Status FileStatus `json:"status"`
}

// DiffFileStatus classifies a file within a diff.
type DiffFileStatus string

const (
	DiffAdded    DiffFileStatus = "added"
	DiffModified DiffFileStatus = "modified"
	DiffDeleted  DiffFileStatus = "deleted"
	DiffRenamed  DiffFileStatus = "renamed"
)

// DiffHunk is one contiguous block of changed lines. Each line keeps
// its "+", "-", or space prefix.
type DiffHunk struct {
	OldStart int      `json:"oldStart"`
	OldLines int      `json:"oldLines"`
	NewStart int      `json:"newStart"`
	NewLines int      `json:"newLines"`
	Lines    []string `json:"lines"`
}

// DiffFile is one file's portion of a diff. Binary files have no
// hunks.
type DiffFile struct {
	Path      string         `json:"path"`
	OldPath   string         `json:"oldPath,omitempty"`
	Status    DiffFileStatus `json:"status"`
	Additions int            `json:"additions"`
	Deletions int            `json:"deletions"`
	Hunks     []DiffHunk     `json:"hunks"`
}

// DiffStats aggregates counts across a diff.
type DiffStats struct {
	FilesChanged int `json:"filesChanged"`
	Additions    int `json:"additions"`
	Deletions    int `json:"deletions"`
}

// ParsedDiff is a structured unified diff.
type ParsedDiff struct {
	Files []DiffFile `json:"files"`
	Stats DiffStats  `json:"stats"`
}

// Context is the root aggregate handed to an AI agent: a read-only
// snapshot of repository state assembled fresh on every request. The
// five reads behind it are not atomic; a concurrent writer to the
// repository can cause slight skew between, say, status and diff.
type Context struct {
	Repository    RepositoryInfo `json:"repository"`
	Branch        BranchInfo     `json:"branch"`
	Status        Status         `json:"status"`
	RecentCommits []Commit       `json:"recentCommits"`
	Diff          ParsedDiff     `json:"diff"`
	ChangedFiles  []ChangedFile  `json:"changedFiles"`
}
